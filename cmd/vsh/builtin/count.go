package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const countDoc = `Count input Objects.

Always emits exactly one Object {count: N}, where N is the input
length (0 if input is absent). Unlike most builtins, this reply's
shape IS the Object — there is no "object" wrapper field.`

func countDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Count",
		AcceptsInput: true,
		Doc:          countDoc,
	}
}

func countHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	rec := value.NewObjectCap(1)
	rec.Set("count", int64(len(p.Input)))
	return seqOf([]value.Object{rec}), nil
}
