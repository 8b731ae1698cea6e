package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"vsh/cmd/vsh/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively set up the vsh config file",
	Long: "Walks through naming a first Varlink peer and saves the result to\n" +
		"the config file. Use --force to overwrite an existing one.\n\n" +
		"The config directory follows the same priority as the root command:\n" +
		"--config-dir > $VSH_CONFIG_DIR > $XDG_CONFIG_HOME/vsh > ~/.config/vsh",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dir := flagConfigDir
		if dir == "" {
			var err error
			dir, err = config.ResolveDir()
			if err != nil {
				return err
			}
		}
		path := config.FilePath(dir)

		if !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}

		cfg, err := runInitWizard()
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		return nil
	},
}

// runInitWizard prompts for a first peer alias and address with a huh form,
// returning a ready-to-save Config. An empty alias skips peer setup.
func runInitWizard() (config.Config, error) {
	var alias, address string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name a Varlink peer (blank to skip)").
				Value(&alias),
			huh.NewInput().
				Title("Peer address").
				Description("e.g. unix:/run/build.sock or tcp:localhost:9999").
				Value(&address),
		),
	)
	if err := form.Run(); err != nil {
		return config.Config{}, fmt.Errorf("running setup wizard: %w", err)
	}

	cfg := config.Config{}
	if alias != "" && address != "" {
		cfg.Peers = map[string]string{alias: address}
	}
	return cfg, nil
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}
