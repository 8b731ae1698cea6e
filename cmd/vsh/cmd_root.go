package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vsh/cmd/vsh/builtin"
	"vsh/cmd/vsh/config"
	"vsh/cmd/vsh/exec"
	"vsh/cmd/vsh/printer"
	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

var flagConfigDir string

var rootCmd = &cobra.Command{
	Use:   "vsh [pipeline]",
	Short: "Structured-object pipeline shell",
	Long: "vsh pipes typed JSON objects between builtins and Varlink peers\n" +
		"the way a Unix shell pipes lines of text between processes.\n\n" +
		"Run with no arguments to start the interactive REPL, or pass a\n" +
		"pipeline line directly for one-shot, non-interactive execution.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL(cmd)
		}
		return runOneShot(cmd, joinArgs(args))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default: auto-resolved)")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}

// joinArgs reassembles a pipeline line split into shell argv words, the way
// a one-shot invocation like `vsh echo a=1 '|' sort a` is typed.
func joinArgs(args []string) string {
	line := ""
	for i, a := range args {
		if i > 0 {
			line += " "
		}
		line += a
	}
	return line
}

// loadConfig resolves and loads vsh's config file, honoring --config-dir.
func loadConfig() (config.Config, string, error) {
	dir := flagConfigDir
	if dir == "" {
		var err error
		dir, err = config.ResolveDir()
		if err != nil {
			return config.Config{}, "", err
		}
	}
	cfg, err := config.Load(config.FilePath(dir))
	return cfg, dir, err
}

// newExecutor builds an Executor over a fresh registry with every builtin
// registered — everything a pipeline line needs to run, whether one-shot or
// interactive — and returns the loaded config and its directory alongside.
// Configured Varlink peer names are not applied to the executor or builtins.
func newExecutor(printSink func([]value.Object)) (*exec.Executor, config.Config, string, error) {
	cfg, dir, err := loadConfig()
	if err != nil {
		return nil, cfg, dir, err
	}
	reg := wire.NewRegistry()
	svc := wire.NewService(reg)
	e := exec.New(svc)
	if err := builtin.Register(reg, e.Execute, printSink); err != nil {
		return nil, cfg, dir, fmt.Errorf("registering builtins: %w", err)
	}
	return e, cfg, dir, nil
}

func runOneShot(cmd *cobra.Command, line string) error {
	e, _, _, err := newExecutor(nil)
	if err != nil {
		return err
	}
	objects, err := e.Execute(line)
	if err != nil {
		return err
	}
	return printer.WriteJSONLines(cmd.OutOrStdout(), objects)
}
