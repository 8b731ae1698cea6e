// Command vsh is an in-process, pipeable shell over structured JSON objects
// (SPEC_FULL.md): builtins and remote Varlink peers compose into pipelines
// the same way Unix commands do, but the unit flowing between stages is a
// typed object instead of a line of text.
package main

import "vsh/pkg/lib"

func main() {
	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}
