// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// Config for script engine configuration
type Config struct {
	ExtendedOps  bool `mapstructure:"extended_ops"`
	SigCacheSize int  `mapstructure:"sig_cache_size"`
	Workers      int  `mapstructure:"workers"`
}

// Flags returns the engine flags the configuration enables.
func (c *Config) Flags() ScriptFlags {
	flags := ScriptVerifyNone
	if c.ExtendedOps {
		flags |= ScriptVerifyExtendedOps
	}
	return flags
}
