package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const echoDoc = `Build or pass through an Object.

With piped input, each input Object passes through unchanged. With no
input, build a single Object from args: "k=v" becomes a string field,
a bare "k" becomes {k: true}.`

func echoDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Echo",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          echoDoc,
	}
}

func echoHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Input) > 0 {
		out := make([]value.Object, len(p.Input))
		for i, o := range p.Input {
			out[i] = wrapObject(o)
		}
		return seqOf(out), nil
	}

	obj := value.NewObjectCap(len(p.Args))
	for _, arg := range p.Args {
		if k, v, ok := splitKV(arg); ok {
			obj.Set(k, v)
		} else {
			obj.Set(arg, true)
		}
	}
	return seqOf([]value.Object{wrapObject(obj)}), nil
}
