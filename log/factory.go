// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package log

import (
	"sync"

	ll "github.com/BOXFoundation/boxscript/log/logrus"
	log "github.com/BOXFoundation/boxscript/log/types"
)

var (
	loggerMap   = map[string]log.Logger{}
	loggerMapMu sync.Mutex
)

// Setup loggers globally
func Setup(cfg *log.Config) {
	log.Setup(ll.LoggerName, cfg)
}

// DefaultConfig returns the configuration used when no config file is given:
// text output to stderr at the given level.
func DefaultConfig(level string) *log.Config {
	cfg := &log.Config{Level: level}
	cfg.Out.Name = "stderr"
	cfg.Formatter.Name = "text"
	return cfg
}

// NewLogger creates a new logger.
func NewLogger(tag string) log.Logger {
	newLogger := log.NewLogger(ll.LoggerName, tag)
	if newLogger != nil {
		loggerMapMu.Lock()
		loggerMap[tag] = newLogger
		loggerMapMu.Unlock()
	}
	return newLogger
}

// SetLogLevel sets all loggers log level
func SetLogLevel(newLevel string) (ok bool) {
	loggerMapMu.Lock()
	defer loggerMapMu.Unlock()

	ok = true
	for _, logger := range loggerMap {
		originLevel := logger.LogLevel()
		logger.SetLogLevel(newLevel)
		currentLevel := logger.LogLevel()
		if currentLevel != newLevel {
			logger.Infof("Error setting log level from %s to %s", originLevel, newLevel)
			ok = false
		}
	}
	return
}
