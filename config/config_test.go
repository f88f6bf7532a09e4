// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/facebookgo/ensure"
	mate "github.com/heralight/logrus_mate"
)

func TestPrepareDefaults(t *testing.T) {
	ws, err := ioutil.TempDir("", "boxscript-config")
	ensure.Nil(t, err)
	defer os.RemoveAll(ws)

	c := &Config{Workspace: ws}
	ensure.Nil(t, c.Prepare())
	ensure.DeepEqual(t, c.Script.SigCacheSize, DefaultSigCacheSize)
	ensure.DeepEqual(t, c.Script.Workers, runtime.NumCPU())
	ensure.DeepEqual(t, c.Log.Level, "info")
	ensure.DeepEqual(t, c.Log.Out.Name, "stderr")
	ensure.DeepEqual(t, c.Log.Formatter.Name, "text")
}

func TestPrepareLogFile(t *testing.T) {
	ws, err := ioutil.TempDir("", "boxscript-config")
	ensure.Nil(t, err)
	defer os.RemoveAll(ws)

	c := &Config{Workspace: ws}
	c.Log.Hooks = []mate.HookConfig{
		{Name: "file", Options: map[string]interface{}{}},
		{Name: "file", Options: map[string]interface{}{"filename": "eval.log"}},
	}
	ensure.Nil(t, c.Prepare())
	ensure.DeepEqual(t, c.Log.Hooks[0].Options["filename"], filepath.Join(ws, "logs", DefaultLogFile))
	ensure.DeepEqual(t, c.Log.Hooks[1].Options["filename"], filepath.Join(ws, "logs", "eval.log"))

	_, err = os.Stat(filepath.Join(ws, "logs"))
	ensure.Nil(t, err)
}

func TestPrepareBadLogFile(t *testing.T) {
	ws, err := ioutil.TempDir("", "boxscript-config")
	ensure.Nil(t, err)
	defer os.RemoveAll(ws)

	c := &Config{Workspace: ws}
	c.Log.Hooks = []mate.HookConfig{
		{Name: "file", Options: map[string]interface{}{"filename": "a/b.log"}},
	}
	ensure.NotNil(t, c.Prepare())
}
