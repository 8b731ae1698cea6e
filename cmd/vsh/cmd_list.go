package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vsh/cmd/vsh/builtin"
	"vsh/cmd/vsh/exec"
	"vsh/cmd/vsh/wire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available builtins",
	RunE: func(cmd *cobra.Command, args []string) error {
		descs, err := descriptors()
		if err != nil {
			return err
		}
		printLeaves(descs)
		return nil
	},
}

// descriptors builds a fresh registry with every builtin registered, purely
// to enumerate its sh.builtin.* methods — used by both `list` and `browse`.
func descriptors() ([]wire.Descriptor, error) {
	reg := wire.NewRegistry()
	svc := wire.NewService(reg)
	e := exec.New(svc)
	if err := builtin.Register(reg, e.Execute, nil); err != nil {
		return nil, fmt.Errorf("registering builtins: %w", err)
	}
	var out []wire.Descriptor
	for _, d := range reg.List() {
		if strings.HasPrefix(d.Name, "sh.builtin.") {
			out = append(out, d)
		}
	}
	return out, nil
}

func printLeaves(descs []wire.Descriptor) {
	maxLen := 0
	for _, d := range descs {
		if n := len(d.Name); n > maxLen {
			maxLen = n
		}
	}
	for _, d := range descs {
		fmt.Printf("%-*s  %s\n", maxLen, d.Name, wire.ShortDoc(d.Doc))
	}
}
