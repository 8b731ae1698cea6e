package builtin

import (
	"iter"
	"strings"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const uniqDoc = `Drop duplicate input Objects, keeping input order.

If args are present, the dedup key is the tuple of those field values;
otherwise it is the canonical JSON serialization of the whole Object
(keys sorted). Emits the first occurrence of each distinct key.`

func uniqDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Uniq",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          uniqDoc,
	}
}

func uniqHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	seen := make(map[string]bool, len(p.Input))
	var out []value.Object
	for _, o := range p.Input {
		key := uniqKey(o, p.Args)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, wrapObject(o))
	}
	return seqOf(out), nil
}

func uniqKey(o value.Object, fields []string) string {
	if len(fields) == 0 {
		return o.CanonicalJSON()
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		v, _ := o.Get(f)
		parts[i] = value.Stringify(v)
	}
	return strings.Join(parts, "\x00")
}
