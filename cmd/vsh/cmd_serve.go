package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vsh/cmd/vsh/builtin"
	"vsh/cmd/vsh/exec"
	"vsh/cmd/vsh/wire"
)

var serveCmd = &cobra.Command{
	Use:   "serve <address>",
	Short: "Expose this process's builtins as a Varlink peer",
	Long: "Listens on address (\"unix:/path\" or \"tcp:host:port\") and serves\n" +
		"every registered builtin to any client speaking the wire protocol —\n" +
		"including another vsh process's `varlink` builtin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := wire.NewRegistry()
		svc := wire.NewService(reg)
		e := exec.New(svc)
		if err := builtin.Register(reg, e.Execute, nil); err != nil {
			return fmt.Errorf("registering builtins: %w", err)
		}

		srv, err := wire.Listen(args[0], svc)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", args[0], err)
		}
		defer srv.Close()
		fmt.Fprintf(os.Stderr, "serving on %s\n", srv.Addr())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		errc := make(chan error, 1)
		go func() { errc <- srv.Serve() }()

		select {
		case err := <-errc:
			return err
		case <-sig:
			return nil
		}
	},
}
