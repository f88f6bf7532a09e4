// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxDepth bounds how far up the stack the hook looks for the first frame
// outside the logging packages.
const maxDepth = 16

type sourceHook struct {
	field     string
	levels    []logrus.Level
	formatter func(file string, line int) string
}

func (hook *sourceHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *sourceHook) Fire(entry *logrus.Entry) error {
	if file, line, ok := findCaller(); ok {
		entry.Data[hook.field] = hook.formatter(file, line)
	}
	return nil
}

// NewHook creates logrus source hook which will print source filename and line number
func NewHook(levels ...logrus.Level) logrus.Hook {
	hook := sourceHook{
		field:  "source",
		levels: levels,
		formatter: func(file string, line int) string {
			return fmt.Sprintf("%s:%d", file, line)
		},
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// findCaller walks up from the hook and returns the first frame that belongs
// neither to logrus nor to the log wrapper packages.
func findCaller() (string, int, bool) {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLoggingFrame(frame.Function) {
			return shortPath(frame.File), frame.Line, frame.File != ""
		}
		if !more {
			return "", 0, false
		}
	}
}

func isLoggingFrame(function string) bool {
	return strings.Contains(function, "sirupsen/logrus") ||
		strings.Contains(function, "boxscript/log/logrus.") ||
		strings.Contains(function, "boxscript/log.")
}

// shortPath keeps the last directory and the file name.
func shortPath(file string) string {
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= 2 {
				return file[i+1:]
			}
		}
	}
	return file
}
