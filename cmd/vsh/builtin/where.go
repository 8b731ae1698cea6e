package builtin

import (
	"iter"
	"regexp"
	"strings"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const whereDoc = `Filter input Objects by field conditions (all must hold).

Each arg parses as "field OP value", where OP is the first of
{>=, <=, !=, >, <, ~, =} found in the arg (longest operators tried
first so ">=" isn't mistaken for ">"). "=" and "!=" compare the
field's stringified value to value; "~" is a regex search on the
stringified value; "<", "<=", ">", ">=" try numeric comparison first,
falling back to string comparison. A missing field fails the
condition.`

func whereDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Where",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          whereDoc,
	}
}

// whereOps are tried longest-first at each scan position.
var whereOps = []string{">=", "<=", "!=", ">", "<", "~", "="}

type whereCond struct {
	field, op, value string
}

func parseWhereCond(arg string) (whereCond, bool) {
	for i := range arg {
		for _, op := range whereOps {
			if strings.HasPrefix(arg[i:], op) {
				return whereCond{field: arg[:i], op: op, value: arg[i+len(op):]}, true
			}
		}
	}
	return whereCond{}, false
}

func whereHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	conds := make([]whereCond, 0, len(p.Args))
	for _, arg := range p.Args {
		c, ok := parseWhereCond(arg)
		if !ok {
			return nil, wire.InvalidParameter("args")
		}
		conds = append(conds, c)
	}

	var out []value.Object
	for _, o := range p.Input {
		if whereMatches(o, conds) {
			out = append(out, wrapObject(o))
		}
	}
	return seqOf(out), nil
}

func whereMatches(o value.Object, conds []whereCond) bool {
	for _, c := range conds {
		v, ok := o.Get(c.field)
		if !ok {
			return false
		}
		if !whereCondHolds(value.Stringify(v), c.op, c.value) {
			return false
		}
	}
	return true
}

func whereCondHolds(actual, op, want string) bool {
	switch op {
	case "=":
		return actual == want
	case "!=":
		return actual != want
	case "~":
		re, err := regexp.Compile(want)
		if err != nil {
			return false
		}
		return re.FindStringIndex(actual) != nil
	case "<", "<=", ">", ">=":
		af, aok := value.ParseNumber(actual)
		wf, wok := value.ParseNumber(want)
		if aok && wok {
			switch op {
			case "<":
				return af < wf
			case "<=":
				return af <= wf
			case ">":
				return af > wf
			default:
				return af >= wf
			}
		}
		switch op {
		case "<":
			return actual < want
		case "<=":
			return actual <= want
		case ">":
			return actual > want
		default:
			return actual >= want
		}
	default:
		return false
	}
}
