// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	logtypes "github.com/BOXFoundation/boxscript/log/types"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/pkg/errors"
)

////////////////////////////////////////////////////////////////
// build time variants

// Version number of the build
var Version string

// GitCommit id of source code
var GitCommit string

// GitBranch name of source code
var GitBranch string

// GoVersion used to build the binary
var GoVersion = runtime.Version()

////////////////////////////////////////////////////////////////

// default values applied by Prepare when a field is left empty.
const (
	DefaultSigCacheSize = 1000
	DefaultLogFile      = "boxscript.log"
)

// Config is a configuration data structure for the boxscript tool,
// which is read from config file or parsed from command line.
type Config struct {
	Workspace string          `mapstructure:"workspace"`
	Log       logtypes.Config `mapstructure:"log"`
	Script    script.Config   `mapstructure:"script"`
	Metrics   metrics.Config  `mapstructure:"metrics"`
}

var format = `workspace: %s
log: %v
script: %+v
metrics: %+v`

func (c Config) String() string {
	return fmt.Sprintf(format, c.Workspace, c.Log, c.Script, c.Metrics)
}

// GetLog return log config.
func (c Config) GetLog() logtypes.Config {
	return c.Log
}

// Prepare makes sure all configurations are correct, filling defaults and
// resolving relative log file names against the workspace.
func (c *Config) Prepare() error {
	ws, err := filepath.Abs(c.Workspace)
	if err != nil {
		return errors.Wrapf(err, "invalid workspace %q", c.Workspace)
	}
	c.Workspace = ws // change to abs path

	if c.Script.SigCacheSize <= 0 {
		c.Script.SigCacheSize = DefaultSigCacheSize
	}
	if c.Script.Workers <= 0 {
		c.Script.Workers = runtime.NumCPU()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Out.Name == "" {
		c.Log.Out.Name = "stderr"
	}
	if c.Log.Formatter.Name == "" {
		c.Log.Formatter.Name = "text"
	}

	// check log file configuration
	for i := range c.Log.Hooks {
		hook := &c.Log.Hooks[i]
		if hook.Name != "file" && hook.Name != "filewithformatter" { // only check file logs
			continue
		}
		if hook.Options == nil {
			hook.Options = map[string]interface{}{}
		}
		filename, ok := hook.Options["filename"]
		if !ok {
			logfile := filepath.Join(c.Workspace, "logs", DefaultLogFile)
			if err := mkDirAll(filepath.Dir(logfile)); err != nil {
				return err
			}
			hook.Options["filename"] = logfile
			continue
		}
		strV, ok := filename.(string)
		if !ok {
			return fmt.Errorf("incorrect log filename %v", filename)
		}
		if filepath.IsAbs(strV) { // abs dir
			if err := mkDirAll(filepath.Dir(strV)); err != nil {
				return err
			}
			continue
		}
		if strings.Contains(strV, "/") { // incorrect filename
			return fmt.Errorf("incorrect log filename %s", strV)
		}
		if len(strV) == 0 {
			strV = DefaultLogFile
		}
		logfile := filepath.Join(c.Workspace, "logs", strV)
		if err := mkDirAll(filepath.Dir(logfile)); err != nil {
			return err
		}
		hook.Options["filename"] = logfile
	}
	return nil
}

func mkDirAll(p string) error {
	if err := os.MkdirAll(p, 0700); err != nil {
		return errors.Wrapf(err, "failed to create %s", p)
	}
	return nil
}
