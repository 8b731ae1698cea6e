package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const groupDoc = `Tally input Objects by a field's distinct values.

args[0] is the field. Emits one {<field>: key, count: N} Object per
distinct stringified value, in first-seen order.`

func groupDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Group",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          groupDoc,
	}
}

func groupHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	field := p.Args[0]

	counts := make(map[string]int64)
	var order []string
	for _, o := range p.Input {
		v, _ := o.Get(field)
		key := value.Stringify(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]value.Object, len(order))
	for i, key := range order {
		rec := value.NewObjectCap(2)
		rec.Set(field, key)
		rec.Set("count", counts[key])
		out[i] = rec
	}
	return seqOf(out), nil
}
