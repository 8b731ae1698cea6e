// Package lang implements the POSIX-style tokenizer and pipeline-stage
// parser: a shell line becomes a flat token list, then an ordered sequence
// of (command, args) stages split on "|".
package lang

import (
	"errors"
	"fmt"
)

// ErrEmptyStage is returned when tokenization/parsing finds a leading "|",
// a trailing "|", or "||" with no command between the pipes.
var ErrEmptyStage = errors.New("empty pipeline stage")

// Stage is one command and its CLI argument tokens in a pipeline.
type Stage struct {
	Command string
	Args    []string
}

// Parse tokenizes line and groups the tokens into pipeline stages. An empty
// or whitespace-only line returns a nil stage slice and no error — callers
// treat that as a no-op.
func Parse(line string) ([]Stage, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	var stages []Stage
	var cmd string
	var args []string
	haveCmd := false

	flush := func() error {
		if !haveCmd {
			return ErrEmptyStage
		}
		stages = append(stages, Stage{Command: cmd, Args: args})
		cmd, args, haveCmd = "", nil, false
		return nil
	}

	for _, tok := range tokens {
		if tok == "|" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if !haveCmd {
			cmd, haveCmd = tok, true
			continue
		}
		args = append(args, tok)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return stages, nil
}

// unexpectedEOF reports an unterminated quote, identified by the quote rune.
func unexpectedEOF(quote rune) error {
	return fmt.Errorf("unterminated %c quote", quote)
}
