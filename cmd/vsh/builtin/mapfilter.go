package builtin

import (
	"iter"

	"vsh/cmd/vsh/interp"
	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const mapDoc = `Build a new Object per input Object from field mappings.

Args are "key=template" pairs (a bare "name" means "name={name}"). For
each input Object, evaluate every mapping; if a mapping is the single-
placeholder form and the field is missing, that key is omitted from
the output rather than set to null.`

func mapDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Map",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          mapDoc,
	}
}

func mapHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	mappings := interp.ParseMappings(p.Args)

	out := make([]value.Object, 0, len(p.Input))
	for _, o := range p.Input {
		rec := value.NewObjectCap(len(mappings))
		for _, m := range mappings {
			if interp.IsRawForm(m.Template) {
				name := m.Template[1 : len(m.Template)-1]
				v, ok := interp.ResolveField(o, name)
				if !ok {
					continue
				}
				rec.Set(m.Key, v)
				continue
			}
			rec.Set(m.Key, interp.Eval(m.Template, o))
		}
		out = append(out, wrapObject(rec))
	}
	return seqOf(out), nil
}

const filterMapDoc = `Like map, but drop input Objects missing a required field.

First compute the union of all placeholder names referenced across
every mapping's template. Any input Object lacking one of those
fields is dropped entirely; surviving Objects always have every
mapped key present (no omission, since the required keys are known to
exist).`

func filterMapDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.FilterMap",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          filterMapDoc,
	}
}

func filterMapHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	mappings := interp.ParseMappings(p.Args)

	required := map[string]bool{}
	for _, m := range mappings {
		for _, f := range interp.Fields(m.Template) {
			required[f] = true
		}
	}

	out := make([]value.Object, 0, len(p.Input))
	for _, o := range p.Input {
		missing := false
		for f := range required {
			if _, ok := interp.ResolveField(o, f); !ok {
				missing = true
				break
			}
		}
		if missing {
			continue
		}
		rec := value.NewObjectCap(len(mappings))
		for _, m := range mappings {
			rec.Set(m.Key, interp.Eval(m.Template, o))
		}
		out = append(out, wrapObject(rec))
	}
	return seqOf(out), nil
}
