package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const sumDoc = `Sum a numeric field across input Objects.

args[0] is the field name. Each value is coerced by float parse;
unparseable or missing values contribute 0 — no error, by design, so
a mixed stream doesn't abort the whole pipeline. Emits {sum: N} once
(N an integer if the total is integral, else a float), even for empty
input.`

func sumDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Sum",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          sumDoc,
	}
}

func sumHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	field := p.Args[0]

	var total float64
	for _, o := range p.Input {
		v, ok := o.Get(field)
		if !ok {
			continue
		}
		f, ok := value.ParseNumber(value.Stringify(v))
		if !ok {
			continue
		}
		total += f
	}

	rec := value.NewObjectCap(1)
	if value.IsIntegral(total) {
		rec.Set("sum", int64(total))
	} else {
		rec.Set("sum", total)
	}
	return seqOf([]value.Object{rec}), nil
}
