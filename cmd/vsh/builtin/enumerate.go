package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const enumerateDoc = `Prepend a 0-based "index" key to each input Object.

Subsequent keys are preserved unchanged and in order.`

func enumerateDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Enumerate",
		AcceptsInput: true,
		Doc:          enumerateDoc,
	}
}

func enumerateHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	out := make([]value.Object, len(p.Input))
	for i, o := range p.Input {
		out[i] = wrapObject(o.WithIndexPrefix("index", int64(i)))
	}
	return seqOf(out), nil
}
