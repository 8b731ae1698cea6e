// Package builtin implements the object-algebra builtins (spec.md §4.5,
// §4.6): the ~20 sh.builtin.* methods that give the shell its vocabulary,
// plus the supplemental sh.builtin.Ps source builtin (SPEC_FULL.md).
package builtin

import (
	"iter"
	"strings"

	"vsh/cmd/vsh/value"
)

// RunLine executes a full pipeline line and returns its drained output —
// the callback `foreach` uses to recursively invoke the executor per input
// Object, injected at registration time to avoid an import cycle between
// this package and the executor that depends on it.
type RunLine func(line string) ([]value.Object, error)

// wrapObject builds the wire Parameters record for a builtin whose declared
// output is a single field named "object" (spec.md §3's unwrap rule).
func wrapObject(obj value.Object) value.Object {
	rec := value.NewObject()
	rec.Set("object", obj)
	return rec
}

// seqOf turns a materialized slice into an iter.Seq, for handlers that
// build their full output list before yielding (mirrors the Python
// original, which already knows len(entries) before it starts yielding).
func seqOf(objects []value.Object) iter.Seq[value.Object] {
	return func(yield func(value.Object) bool) {
		for _, o := range objects {
			if !yield(o) {
				return
			}
		}
	}
}

// emptySeq is the zero-object reply sequence.
func emptySeq() iter.Seq[value.Object] {
	return func(func(value.Object) bool) {}
}

// splitKV splits "key=value" on the first "=". ok is false when arg has no
// "=".
func splitKV(arg string) (key, val string, ok bool) {
	i := strings.Index(arg, "=")
	if i < 0 {
		return "", "", false
	}
	return arg[:i], arg[i+1:], true
}
