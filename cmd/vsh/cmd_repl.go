package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"vsh/cmd/vsh/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
}

func runREPL(cmd *cobra.Command) error {
	e, cfg, dir, err := newExecutor(nil)
	if err != nil {
		return err
	}
	r := repl.New(e, cfg, cmd.OutOrStdout())
	return r.Run(filepath.Join(dir, "history"))
}
