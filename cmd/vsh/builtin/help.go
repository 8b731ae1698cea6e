package builtin

import (
	"iter"
	"strings"
	"unicode"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const helpDoc = `Describe registered commands.

With no args, emits one Object {command, description} per registered
builtin, description being the first paragraph of its docstring. With
one arg (a command name), emits the full docstring as one Object per
line, "command" populated only on the first line.`

func helpDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:        "sh.builtin.Help",
		AcceptsArgs: true,
		Doc:         helpDoc,
	}
}

// newHelpHandler closes over the registry so it can enumerate every
// registered builtin — help is the one handler that needs to see the whole
// interface, not just its own input.
func newHelpHandler(reg *wire.Registry) wire.Handler {
	return func(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
		descs := reg.List()

		if len(p.Args) == 0 {
			var out []value.Object
			for _, d := range descs {
				if !strings.HasPrefix(d.Name, "sh.builtin.") {
					continue
				}
				rec := value.NewObjectCap(2)
				rec.Set("command", unqualify(d.Name))
				rec.Set("description", wire.ShortDoc(d.Doc))
				out = append(out, rec)
			}
			return seqOf(out), nil
		}

		want := p.Args[0]
		for _, d := range descs {
			if unqualify(d.Name) != want {
				continue
			}
			lines := strings.Split(strings.TrimRight(d.Doc, "\n"), "\n")
			out := make([]value.Object, len(lines))
			for i, line := range lines {
				rec := value.NewObjectCap(2)
				if i == 0 {
					rec.Set("command", want)
				}
				rec.Set("description", line)
				out[i] = rec
			}
			return seqOf(out), nil
		}
		return nil, wire.InvalidParameter("command")
	}
}

// unqualify maps a qualified method name to its lowercase, underscore-
// separated command spelling: "sh.builtin.FilterMap" -> "filter_map". The
// exact inverse of exec.QualifyMethod.
func unqualify(qualifiedName string) string {
	name := qualifiedName
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
