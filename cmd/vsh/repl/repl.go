// Package repl implements vsh's interactive line-editing loop: read a
// pipeline line, execute it, print the result, repeat. Line editing and
// history come from chzyer/readline, the same history-file-backed
// line-editor the teacher's go.mod already depends on.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"vsh/cmd/vsh/config"
	"vsh/cmd/vsh/exec"
	"vsh/cmd/vsh/printer"
)

// REPL is the interactive front-end over an Executor.
type REPL struct {
	executor *exec.Executor
	aliases  map[string]string
	out      io.Writer
}

// New builds a REPL over executor, expanding cfg's saved aliases before
// parsing each line.
func New(executor *exec.Executor, cfg config.Config, out io.Writer) *REPL {
	return &REPL{executor: executor, aliases: cfg.Aliases, out: out}
}

// Run reads lines from the terminal until EOF (Ctrl-D) or an explicit
// "exit"/"quit", executing each as a pipeline and printing its result.
func (r *REPL) Run(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "vsh> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.runOne(line); err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
	}
}

// runOne expands aliases and the ":page" directive, then executes and
// prints a single line.
func (r *REPL) runOne(line string) error {
	paged := false
	if rest, ok := strings.CutPrefix(line, ":page "); ok {
		paged = true
		line = rest
	}
	line = r.expandAlias(line)

	objects, err := r.executor.Execute(line)
	if err != nil {
		return err
	}
	if paged {
		return printer.Page(objects)
	}
	return printer.Write(r.out, objects)
}

// expandAlias replaces line with its saved alias expansion when the whole
// line names one, mirroring a shell's alias substitution: aliases only
// match a bare command name, not a prefix of a longer line.
func (r *REPL) expandAlias(line string) string {
	if expansion, ok := r.aliases[line]; ok {
		return expansion
	}
	return line
}
