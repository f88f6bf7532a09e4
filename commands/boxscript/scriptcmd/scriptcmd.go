// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptcmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BOXFoundation/boxscript/commands/boxscript/common"
	root "github.com/BOXFoundation/boxscript/commands/boxscript/root"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	evalCmd := &cobra.Command{
		Use:   "eval [hex script]",
		Short: "evaluate a script and print the final stack",
		Args:  cobra.MinimumNArgs(1),
		RunE:  eval,
	}
	evalCmd.Flags().StringSlice("stack", []string{}, "hex encoded initial stack items, bottom first")
	evalCmd.Flags().Bool("asm", false, "read the script in assembly form instead of hex")

	disasmCmd := &cobra.Command{
		Use:   "disasm [hex script]",
		Short: "disassemble a script",
		Args:  cobra.ExactArgs(1),
		RunE:  disasm,
	}

	asmCmd := &cobra.Command{
		Use:   "asm [assembly]",
		Short: "assemble a script, e.g. 'OP_DUP OP_HASH160 0x14... OP_EQUALVERIFY OP_CHECKSIG'",
		Args:  cobra.MinimumNArgs(1),
		RunE:  asm,
	}

	p2pkhCmd := &cobra.Command{
		Use:   "p2pkh [address|hex pubkey]",
		Short: "print the pay-to-pubkey-hash locking script of an address or public key",
		Args:  cobra.ExactArgs(1),
		RunE:  p2pkh,
	}

	root.RootCmd.AddCommand(evalCmd, disasmCmd, asmCmd, p2pkhCmd)
}

func parseScript(cmd *cobra.Command, args []string) (script.Script, error) {
	if isAsm, _ := cmd.Flags().GetBool("asm"); isAsm {
		return script.Assemble(strings.Join(args, " "))
	}
	return common.DecodeHex("script", args[0])
}

func eval(cmd *cobra.Command, args []string) error {
	cfg, err := common.LoadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	engine, err := script.NewEngineFromConfig(&cfg.Script)
	if err != nil {
		return err
	}

	s, err := parseScript(cmd, args)
	if err != nil {
		return err
	}
	items, _ := cmd.Flags().GetStringSlice("stack")
	operands := make([]script.Operand, 0, len(items))
	for i, item := range items {
		operand, err := common.DecodeHex(fmt.Sprintf("stack item %d", i), item)
		if err != nil {
			return err
		}
		operands = append(operands, operand)
	}
	stack := script.NewStack(operands...)

	err = engine.Evaluate(stack, s, nil, 0, 0)
	fmt.Println("stack:", stack)
	if err != nil {
		fmt.Printf("result: false (%s: %v)\n", script.ErrorCategory(err), err)
		return nil
	}
	fmt.Println("result:", stack.Size() > 0 && script.AsBool(stack.Top()))
	return nil
}

func disasm(cmd *cobra.Command, args []string) error {
	s, err := common.DecodeHex("script", args[0])
	if err != nil {
		return err
	}
	fmt.Println(script.Script(s).Disasm())
	return nil
}

func asm(cmd *cobra.Command, args []string) error {
	s, err := script.Assemble(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(s))
	return nil
}

func p2pkh(cmd *cobra.Command, args []string) error {
	addr, err := types.NewAddress(args[0])
	if err != nil {
		pubKeyBytes, hexErr := hex.DecodeString(args[0])
		if hexErr != nil {
			return err
		}
		pubKey, err := crypto.PublicKeyFromBytes(pubKeyBytes)
		if err != nil {
			return err
		}
		if addr, err = types.NewAddressFromPubKey(pubKey); err != nil {
			return err
		}
	}
	s := script.PayToPubKeyHashScript(addr.Hash160())
	fmt.Println("address:", addr)
	fmt.Println("script:", hex.EncodeToString(*s))
	fmt.Println("asm:", s.Disasm())
	return nil
}
