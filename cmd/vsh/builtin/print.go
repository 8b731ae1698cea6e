package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const printDoc = `Pass input through unchanged, driving a side-channel printer.

Every input Object is forwarded as output unchanged; if a presentation
sink was wired at registration, it also receives the full input list
so a REPL can render it immediately rather than waiting on the whole
pipeline's final output.`

func printDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Print",
		AcceptsInput: true,
		Doc:          printDoc,
	}
}

// newPrintHandler closes over an optional presentation sink; sink may be
// nil, in which case `print` is a plain passthrough.
func newPrintHandler(sink func([]value.Object)) wire.Handler {
	return func(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
		if sink != nil {
			sink(p.Input)
		}
		return wrapEach(p.Input), nil
	}
}
