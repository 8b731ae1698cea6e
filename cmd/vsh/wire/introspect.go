package wire

import (
	"iter"
	"strings"

	"vsh/cmd/vsh/value"
)

// RegisterIntrospection adds the IntrospectMethod handler to reg, listing
// every registered method, IntrospectMethod itself included, as one reply
// Object each (spec.md §4.6:
// "[varlink] with no further non-k=v arg, it introspects the peer and
// emits one Object per discovered method"). Every vsh process that serves
// a registry calls this once, so it is itself a valid `varlink` peer.
func RegisterIntrospection(reg *Registry) error {
	handler := func(Params) (iter.Seq[value.Object], *HandlerError) {
		descs := reg.List()
		return func(yield func(value.Object) bool) {
			for _, d := range descs {
				obj := value.NewObject()
				obj.Set("interface", interfaceOf(d.Name))
				obj.Set("method", d.Name)
				obj.Set("signature", signatureOf(d))
				if !yield(obj) {
					return
				}
			}
		}, nil
	}
	return reg.Register(Descriptor{Name: IntrospectMethod}, handler)
}

func interfaceOf(qualifiedName string) string {
	if i := strings.LastIndex(qualifiedName, "."); i >= 0 {
		return qualifiedName[:i]
	}
	return qualifiedName
}

func signatureOf(d Descriptor) string {
	var fields []string
	if d.AcceptsArgs {
		fields = append(fields, "args")
	}
	fields = append(fields, d.Positional...)
	if d.AcceptsInput {
		fields = append(fields, "input")
	}
	return strings.Join(fields, ", ")
}
