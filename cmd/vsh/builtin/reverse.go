package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const reverseDoc = `Emit input Objects in reverse order.`

func reverseDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Reverse",
		AcceptsInput: true,
		Doc:          reverseDoc,
	}
}

func reverseHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	out := make([]value.Object, len(p.Input))
	n := len(p.Input)
	for i, o := range p.Input {
		out[n-1-i] = wrapObject(o)
	}
	return seqOf(out), nil
}
