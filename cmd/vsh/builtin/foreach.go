package builtin

import (
	"iter"
	"strings"

	"vsh/cmd/vsh/interp"
	"vsh/cmd/vsh/lang"
	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const foreachDoc = `Run a sub-pipeline per input Object.

args are joined into a pipeline-line template. For each input Object,
every {field} placeholder is substituted with that field's stringified
value, shell-quoted so it round-trips through the tokenizer even if it
contains spaces or quotes; the resulting line is run recursively
through the executor, and all of its outputs are concatenated.`

func foreachDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Foreach",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          foreachDoc,
	}
}

// newForeachHandler closes over runLine, the callback that recursively
// invokes the pipeline executor — injected at registration time to avoid an
// import cycle (the executor depends on this package's Register, not the
// other way around).
func newForeachHandler(runLine RunLine) wire.Handler {
	return func(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
		if len(p.Args) == 0 {
			return nil, wire.InvalidParameter("args")
		}
		template := strings.Join(p.Args, " ")

		var out []value.Object
		for _, o := range p.Input {
			line := interp.Substitute(template, o, quoteStringify)
			results, err := runLine(line)
			if err != nil {
				rec := value.NewObjectCap(1)
				rec.Set("message", err.Error())
				return nil, &wire.HandlerError{Name: wire.ErrExecFailed, Params: rec}
			}
			for _, r := range results {
				out = append(out, wrapObject(r))
			}
		}
		return seqOf(out), nil
	}
}

// quoteStringify renders a resolved placeholder value as a single-quoted
// shell word; a missing field substitutes an empty quoted string.
func quoteStringify(v value.Value, ok bool) string {
	if !ok {
		return lang.Quote("")
	}
	return lang.Quote(value.Stringify(v))
}
