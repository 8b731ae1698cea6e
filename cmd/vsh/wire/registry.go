package wire

import (
	"fmt"
	"iter"

	"vsh/cmd/vsh/value"
)

// Params is the decoded input a Handler receives: the CLI-style argument
// tokens (from the "args" field, or zipped positional fields) and the
// piped-in Objects (from the "input" field, nil if absent).
type Params struct {
	Args  []string
	Input []value.Object
}

// Handler implements one builtin's semantics. It consumes Params and
// returns a lazy sequence of wire Parameter records — for builtins whose
// declared output is a single field named "object", each yielded Object is
// already wrapped ({"object": ...}); builtins with their own named output
// schema (count, sum, help, group, ...) yield that schema directly.
//
// A non-nil *HandlerError aborts the sequence: the transport emits exactly
// one error reply frame and nothing else.
type Handler func(Params) (iter.Seq[value.Object], *HandlerError)

// Descriptor is a method's schema: its qualified name, declared input
// shape, and docstring (first paragraph is the short description used by
// `help` with no argument).
type Descriptor struct {
	// Name is the qualified method name, e.g. "sh.builtin.Sort".
	Name string

	// AcceptsArgs declares an "args" field carrying the full token list.
	// Mutually exclusive with Positional.
	AcceptsArgs bool

	// Positional declares named positional fields instead of "args"; CLI
	// tokens are zipped to these names in order (spec.md §4.3).
	Positional []string

	// AcceptsInput declares an "input" field: the prior stage's output.
	AcceptsInput bool

	// Doc is the method's documentation; its first paragraph (delimited by
	// a blank line) is the short description `help` lists with no args.
	Doc string
}

// Method pairs a Descriptor with its Handler.
type Method struct {
	Descriptor Descriptor
	Handler    Handler
}

// Registry is a process-wide, append-only table of qualified method names
// to Methods. Populated once at startup (see builtin.Register), read-only
// thereafter (spec.md §5, "Shared resources").
type Registry struct {
	order   []string
	methods map[string]*Method
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]*Method)}
}

// Register adds a method, returning an error if the qualified name is
// already registered.
func (r *Registry) Register(desc Descriptor, h Handler) error {
	if _, exists := r.methods[desc.Name]; exists {
		return fmt.Errorf("method already registered: %s", desc.Name)
	}
	r.order = append(r.order, desc.Name)
	r.methods[desc.Name] = &Method{Descriptor: desc, Handler: h}
	return nil
}

// Get returns the method registered under the given qualified name.
func (r *Registry) Get(name string) (*Method, bool) {
	m, ok := r.methods[name]
	return m, ok
}

// List returns all registered descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.order))
	for i, name := range r.order {
		out[i] = r.methods[name].Descriptor
	}
	return out
}
