package builtin

import (
	"iter"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const minDoc = `Emit the input Object with the smallest field value.

args[0] is the field. Values that parse as a float sort before values
that don't (numeric-parseable values group ahead of strings). Emits
nothing for empty input.`

const maxDoc = `Emit the input Object with the largest field value.

args[0] is the field. Values that parse as a float sort before values
that don't (numeric-parseable values group ahead of strings). Emits
nothing for empty input.`

func minDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Min",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          minDoc,
	}
}

func maxDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Max",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          maxDoc,
	}
}

// minmaxKey is the (tier, numeric, text) sort key: tier 0 (numeric-
// parseable) always orders ahead of tier 1 (not numeric-parseable).
type minmaxKey struct {
	tier    int
	numeric float64
	text    string
}

func keyOf(o value.Object, field string) minmaxKey {
	v, _ := o.Get(field)
	s := value.Stringify(v)
	if f, ok := value.ParseNumber(s); ok {
		return minmaxKey{tier: 0, numeric: f}
	}
	return minmaxKey{tier: 1, text: s}
}

func (k minmaxKey) less(other minmaxKey) bool {
	if k.tier != other.tier {
		return k.tier < other.tier
	}
	if k.tier == 0 {
		return k.numeric < other.numeric
	}
	return k.text < other.text
}

func minHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	return extremum(p, func(k, best minmaxKey) bool { return k.less(best) }), nil
}

func maxHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	return extremum(p, func(k, best minmaxKey) bool { return best.less(k) }), nil
}

func extremum(p wire.Params, better func(k, best minmaxKey) bool) iter.Seq[value.Object] {
	if len(p.Input) == 0 {
		return emptySeq()
	}
	field := p.Args[0]
	winner := p.Input[0]
	best := keyOf(winner, field)
	for _, o := range p.Input[1:] {
		k := keyOf(o, field)
		if better(k, best) {
			winner, best = o, k
		}
	}
	return seqOf([]value.Object{wrapObject(winner)})
}
