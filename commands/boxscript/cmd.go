// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package boxscript

import (
	"fmt"
	"os"

	root "github.com/BOXFoundation/boxscript/commands/boxscript/root"
	_ "github.com/BOXFoundation/boxscript/commands/boxscript/scriptcmd" // init script cmd
	_ "github.com/BOXFoundation/boxscript/commands/boxscript/txcmd"     // init tx cmd
)

// Execute is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := root.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
