// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txcmd

import (
	"encoding/hex"
	"fmt"

	"github.com/BOXFoundation/boxscript/commands/boxscript/common"
	root "github.com/BOXFoundation/boxscript/commands/boxscript/root"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	sighashCmd := &cobra.Command{
		Use:   "sighash [hex tx] [input index] [hex script code]",
		Short: "compute the digest a signature over an input commits to",
		Args:  cobra.ExactArgs(3),
		RunE:  sighash,
	}
	sighashCmd.Flags().Uint32("hashtype", uint32(script.SigHashAll), "signature hash type, e.g. 1 for ALL, 0x81 for ALL|ANYONECANPAY")

	root.RootCmd.AddCommand(
		sighashCmd,
		&cobra.Command{
			Use:   "verify [hex tx] [input index] [hex prev scriptPubKey]",
			Short: "verify one input of a transaction",
			Args:  cobra.ExactArgs(3),
			RunE:  verify,
		},
		&cobra.Command{
			Use:   "verifytx [hex tx] [hex prev scriptPubKey]...",
			Short: "verify every input of a transaction, one previous scriptPubKey per input",
			Args:  cobra.MinimumNArgs(1),
			RunE:  verifyTx,
		},
	)
}

func sighash(cmd *cobra.Command, args []string) error {
	tx, err := common.ParseTx(args[0])
	if err != nil {
		return err
	}
	idx, err := common.ParseIndex(args[1], tx)
	if err != nil {
		return err
	}
	scriptCode, err := common.DecodeHex("script code", args[2])
	if err != nil {
		return err
	}
	hashType, _ := cmd.Flags().GetUint32("hashtype")

	hash, err := script.CalcSignatureHash(scriptCode, tx, idx, script.SigHashType(hashType))
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(hash[:]))
	return nil
}

func verify(cmd *cobra.Command, args []string) error {
	cfg, err := common.LoadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	engine, err := script.NewEngineFromConfig(&cfg.Script)
	if err != nil {
		return err
	}

	tx, err := common.ParseTx(args[0])
	if err != nil {
		return err
	}
	idx, err := common.ParseIndex(args[1], tx)
	if err != nil {
		return err
	}
	scriptPubKey, err := common.DecodeHex("scriptPubKey", args[2])
	if err != nil {
		return err
	}

	if err := engine.VerifyScript(tx.Vin[idx].ScriptSig, scriptPubKey, tx, idx); err != nil {
		fmt.Printf("input %d: invalid (%s: %v)\n", idx, script.ErrorCategory(err), err)
		return nil
	}
	fmt.Printf("input %d: valid\n", idx)
	return nil
}

func verifyTx(cmd *cobra.Command, args []string) error {
	cfg, err := common.LoadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	engine, err := script.NewEngineFromConfig(&cfg.Script)
	if err != nil {
		return err
	}

	tx, err := common.ParseTx(args[0])
	if err != nil {
		return err
	}
	prevScripts := make([]script.Script, 0, len(args)-1)
	for i, arg := range args[1:] {
		prevScript, err := common.DecodeHex(fmt.Sprintf("scriptPubKey %d", i), arg)
		if err != nil {
			return err
		}
		prevScripts = append(prevScripts, prevScript)
	}

	validator := script.NewTxValidator(common.RootProcess, engine, cfg.Script.Workers)
	defer validator.Stop()
	if err := validator.Validate(tx, prevScripts); err != nil {
		fmt.Printf("tx: invalid (%s: %v)\n", script.ErrorCategory(err), err)
		return nil
	}
	fmt.Printf("tx: %d inputs valid\n", len(tx.Vin))
	return nil
}
