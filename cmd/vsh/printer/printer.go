// Package printer renders a stage's output Objects for the CLI (spec.md
// §6): non-interactive mode always emits JSON lines; interactive mode
// prints a table when every Object shares the same key order, falling back
// to JSON lines otherwise.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"vsh/cmd/vsh/value"
)

// WriteJSONLines writes one compact JSON line per Object to w.
func WriteJSONLines(w io.Writer, objects []value.Object) error {
	for _, o := range objects {
		data, err := json.Marshal(o)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}

// SameKeyOrder reports whether every Object in objects shares an identical
// key order — the signal interactive mode uses to decide table vs.
// JSON-lines rendering.
func SameKeyOrder(objects []value.Object) bool {
	if len(objects) == 0 {
		return false
	}
	sig := objects[0].KeySignature()
	for _, o := range objects[1:] {
		if o.KeySignature() != sig {
			return false
		}
	}
	return true
}

// Write renders objects to w the way the CLI's interactive mode does:
// a table when SameKeyOrder holds, else JSON lines. Non-interactive callers
// should use WriteJSONLines directly instead.
func Write(w io.Writer, objects []value.Object) error {
	if len(objects) == 0 {
		return nil
	}
	if !SameKeyOrder(objects) {
		return WriteJSONLines(w, objects)
	}
	_, err := fmt.Fprintln(w, RenderTable(objects))
	return err
}
