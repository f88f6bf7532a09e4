// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package root

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BOXFoundation/boxscript/config"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/metrics"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// root command
var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "boxscript",
	Short: "BOX script interpreter command-line interface",
	Long: `boxscript evaluates and disassembles transaction scripts and
computes and verifies transaction signature hashes.`,
	Example: `
1. evaluate a script and print the final stack
  ./boxscript eval 5253935587
2. disassemble a script
  ./boxscript disasm 76a914...88ac
3. compute the digest signed for input 0
  ./boxscript sighash <tx> 0 <script code> --hashtype 1
4. verify every input of a transaction
  ./boxscript verifytx <tx> <prev script 0> <prev script 1>
	`,
	Version: fmt.Sprintf("%s %s(%s) %s\n", config.Version, config.GitCommit, config.GitBranch, config.GoVersion),
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Debugf("Metrics: %v", metrics.Snapshot())
	},
}

var logger = log.NewLogger("cmd")

// init sets flags appropriately.
func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.boxscript.yaml)")

	RootCmd.PersistentFlags().String("workspace", "", "work directory for boxscript (default ~/.boxscript)")
	viper.BindPFlag("workspace", RootCmd.PersistentFlags().Lookup("workspace"))

	RootCmd.PersistentFlags().String("log-level", "error", "log level [debug|info|warn|error|fatal]")
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))

	RootCmd.PersistentFlags().Bool("extended", false, "enable arithmetic, hash and signature opcodes")
	viper.BindPFlag("script.extended_ops", RootCmd.PersistentFlags().Lookup("extended"))

	RootCmd.PersistentFlags().Int("workers", 0, "input verification workers (default one per CPU)")
	viper.BindPFlag("script.workers", RootCmd.PersistentFlags().Lookup("workers"))

	RootCmd.PersistentFlags().Bool("metrics", false, "report metrics to influxdb")
	viper.BindPFlag("metrics.enable", RootCmd.PersistentFlags().Lookup("metrics"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger.SetLogLevel(viper.GetString("log.level"))

	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory or current directory with name ".boxscript" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".boxscript")
	}

	viper.SetEnvPrefix("boxscript")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("workspace", path.Join(home, ".boxscript"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

////////// viper config //////////
// workspace: ~/.boxscript
// log:
//     level: debug|info|warn|error
//     hooks:
//         - name: file
//           options:
//               filename: boxscript.log
// script:
//     extended_ops: true|false
//     sig_cache_size: 1000
//     workers: 4
// metrics:
//     enable: true|false
//     host: http://localhost:8086
//     db: boxscript
//     tags: [host:local]
