// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	log "github.com/BOXFoundation/boxscript/log/types"
)

func TestLogrusInit(t *testing.T) {
	var logger = NewLogger("test")
	if logger == nil {
		t.Fatal("Get a nil logger.")
	}
}

func TestSetLogLevel(t *testing.T) {
	var logger = NewLogger("test")

	var levels = []string{
		"debug",
		"info",
		"warning",
		"error",
	}

	for _, level := range levels {
		if !SetLogLevel(level) {
			t.Errorf("Failed to set log level %s.", level)
		}
		if logger.LogLevel() != level {
			t.Errorf("Invalid log level %s. It should be %s.", logger.LogLevel(), level)
		}
	}

	var oldLevel = logger.LogLevel()
	SetLogLevel("unknown")
	if logger.LogLevel() != oldLevel {
		t.Errorf("Invalid log level %s. It should be %s.", logger.LogLevel(), oldLevel)
	}
}

func TestWithFields(t *testing.T) {
	var logger = NewLogger("test").WithFields(log.Fields{"opcode": "OP_IF"})
	if logger == nil {
		t.Fatal("Get a nil logger.")
	}
	if logger.LogLevel() != NewLogger("test").LogLevel() {
		t.Error("Derived logger should share the level of its parent.")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("info")
	if cfg.Level != "info" || cfg.Out.Name != "stderr" || cfg.Formatter.Name != "text" {
		t.Errorf("Unexpected default config %+v", cfg)
	}
}
