// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/hex"
	"os"
	"strconv"

	"github.com/BOXFoundation/boxscript/config"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/jbenet/goprocess"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var logger = log.NewLogger("common")

// RootProcess is the parent of every long running task started by a
// command. It closes on interrupt.
var RootProcess = goprocess.WithSignals(os.Interrupt)

// LoadConfig reads the configuration from v, prepares the workspace and
// starts logging and metrics reporting.
func LoadConfig(v *viper.Viper) (*config.Config, error) {
	cfg := &config.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := cfg.Prepare(); err != nil {
		return nil, err
	}

	log.Setup(&cfg.Log)
	metrics.Run(&cfg.Metrics)
	logger.Debugf("Config loaded:\n%s", cfg)
	return cfg, nil
}

// DecodeHex decodes a command line hex argument, naming it on failure.
func DecodeHex(name, arg string) ([]byte, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}
	return b, nil
}

// ParseTx decodes a hex encoded transaction.
func ParseTx(arg string) (*types.Transaction, error) {
	b, err := DecodeHex("transaction", arg)
	if err != nil {
		return nil, err
	}
	tx := new(types.Transaction)
	if err := tx.Unmarshal(b); err != nil {
		return nil, errors.Wrap(err, "invalid transaction")
	}
	return tx, nil
}

// ParseIndex parses an input index of tx.
func ParseIndex(arg string, tx *types.Transaction) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrap(err, "invalid input index")
	}
	if idx < 0 || idx >= len(tx.Vin) {
		return 0, errors.Errorf("input index %d out of range, tx has %d inputs", idx, len(tx.Vin))
	}
	return idx, nil
}
