package builtin

import (
	"iter"
	"strconv"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const headDoc = `Emit the first N input Objects, in input order.

args[0] is the count, defaulting to 10.`

const tailDoc = `Emit the last N input Objects, in input order.

args[0] is the count, defaulting to 10.`

func headDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Head",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          headDoc,
	}
}

func tailDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Tail",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          tailDoc,
	}
}

func countArg(args []string) int {
	if len(args) == 0 {
		return 10
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 10
	}
	return n
}

func headHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	n := countArg(p.Args)
	if n > len(p.Input) {
		n = len(p.Input)
	}
	return wrapEach(p.Input[:n]), nil
}

func tailHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	n := countArg(p.Args)
	if n > len(p.Input) {
		n = len(p.Input)
	}
	return wrapEach(p.Input[len(p.Input)-n:]), nil
}

func wrapEach(objects []value.Object) iter.Seq[value.Object] {
	out := make([]value.Object, len(objects))
	for i, o := range objects {
		out[i] = wrapObject(o)
	}
	return seqOf(out)
}
