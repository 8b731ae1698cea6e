package main

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"vsh/cmd/vsh/exec"
	"vsh/cmd/vsh/wire"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Fuzzy-pick a builtin and run it",
	Long: "Opens a fuzzy finder over every registered builtin (spec.md §4.5/§4.6\n" +
		"plus SPEC_FULL.md's Ps). Any extra arguments after the picked command\n" +
		"name are appended before the line runs, e.g.:\n\n" +
		"  vsh browse -- name=value",
	RunE: func(cmd *cobra.Command, args []string) error {
		descs, err := descriptors()
		if err != nil {
			return err
		}
		if len(descs) == 0 {
			return fmt.Errorf("no builtins registered")
		}

		idx, err := fuzzyfinder.Find(
			descs,
			func(i int) string {
				return fmt.Sprintf("%s  %s", unqualifyName(descs[i].Name), wire.ShortDoc(descs[i].Doc))
			},
			fuzzyfinder.WithPromptString("Select a builtin: "),
		)
		if err != nil {
			return err
		}

		line := unqualifyName(descs[idx].Name)
		if len(args) > 0 {
			line += " " + strings.Join(args, " ")
		}
		return runOneShot(cmd, line)
	},
}

// unqualifyName inverts exec.QualifyMethod, e.g. "sh.builtin.FilterMap" ->
// "filter_map".
func unqualifyName(qualified string) string {
	return exec.Unqualify(qualified)
}
