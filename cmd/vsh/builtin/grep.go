package builtin

import (
	"iter"
	"strings"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const grepDoc = `Filter input Objects by field substring match.

Args are "field=substring" pairs (plain substring match, not regex);
an arg without "=" is InvalidParameter. An input Object passes only if
every field's stringified value contains its corresponding substring.`

func grepDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Grep",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          grepDoc,
	}
}

func grepHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	type cond struct{ field, substr string }
	conds := make([]cond, 0, len(p.Args))
	for _, arg := range p.Args {
		k, v, ok := splitKV(arg)
		if !ok {
			return nil, wire.InvalidParameter("args")
		}
		conds = append(conds, cond{field: k, substr: v})
	}

	var out []value.Object
	for _, o := range p.Input {
		match := true
		for _, c := range conds {
			v, _ := o.Get(c.field)
			if !strings.Contains(value.Stringify(v), c.substr) {
				match = false
				break
			}
		}
		if match {
			out = append(out, wrapObject(o))
		}
	}
	return seqOf(out), nil
}
