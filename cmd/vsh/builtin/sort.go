package builtin

import (
	"iter"
	"sort"
	"strings"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const sortDoc = `Stable sort of input Objects by field.

Args are field names, compared in order as a lexicographic key tuple;
a field prefixed with "-" sorts that field descending. Per field: if
both values parse as numbers, compare numerically; otherwise compare
stringified values. A missing value stringifies to "".`

func sortDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Sort",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          sortDoc,
	}
}

type sortKey struct {
	field string
	desc  bool
}

func parseSortKeys(args []string) []sortKey {
	keys := make([]sortKey, len(args))
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			keys[i] = sortKey{field: a[1:], desc: true}
		} else {
			keys[i] = sortKey{field: a}
		}
	}
	return keys
}

// compareField orders two stringified/parsed field values: -1, 0, or 1.
func compareField(a, b value.Value) int {
	as, bs := value.Stringify(a), value.Stringify(b)
	af, aok := value.ParseNumber(as)
	bf, bok := value.ParseNumber(bs)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(as, bs)
}

func sortHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	keys := parseSortKeys(p.Args)

	out := make([]value.Object, len(p.Input))
	copy(out, p.Input)

	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range keys {
			av, _ := out[i].Get(k.field)
			bv, _ := out[j].Get(k.field)
			c := compareField(av, bv)
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})

	wrapped := make([]value.Object, len(out))
	for i, o := range out {
		wrapped[i] = wrapObject(o)
	}
	return seqOf(wrapped), nil
}
