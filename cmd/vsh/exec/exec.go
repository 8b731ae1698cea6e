// Package exec is the pipeline executor (spec.md §4.3): for each parsed
// stage it builds the request parameters, calls the transport, drains the
// replies into the next stage's input, and fails the whole line on the
// first handler error.
package exec

import (
	"fmt"
	"strings"
	"unicode"

	"vsh/cmd/vsh/lang"
	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

// Executor runs pipeline lines against a registered Service.
type Executor struct {
	Service *wire.Service
}

// New returns an Executor bound to svc.
func New(svc *wire.Service) *Executor {
	return &Executor{Service: svc}
}

// Execute parses line and runs its stages in order, feeding each stage's
// drained output Objects in as the next stage's input. An empty line
// returns a nil object list and no error.
func (e *Executor) Execute(line string) ([]value.Object, error) {
	stages, err := lang.Parse(line)
	if err != nil {
		return nil, err
	}
	if stages == nil {
		return nil, nil
	}

	var objects []value.Object
	for _, stage := range stages {
		objects, err = e.runStage(stage, objects)
		if err != nil {
			return nil, err
		}
	}
	return objects, nil
}

// runStage builds the request for one stage, calls the transport, and
// decodes the reply frames into the next stage's object list.
func (e *Executor) runStage(stage lang.Stage, prior []value.Object) ([]value.Object, error) {
	method := QualifyMethod(stage.Command)
	m, ok := e.Service.Registry.Get(method)
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", stage.Command)
	}
	desc := m.Descriptor

	var input []value.Object
	if desc.AcceptsInput {
		// A stage whose handler does not declare "input" silently discards
		// any prior output (spec.md §4.3) — handled here by only ever
		// forwarding `prior` when the descriptor opts in.
		input = prior
	}

	params := wire.EncodeParams(desc, stage.Args, input)
	replies := e.Service.Call(method, params)

	out := make([]value.Object, 0, len(replies))
	for _, r := range replies {
		if r.IsError() {
			return nil, &wire.CallError{Method: method, Name: r.Error, Params: r.Parameters}
		}
		out = append(out, wire.UnwrapReply(r.Parameters))
	}
	return out, nil
}

// QualifyMethod maps a lowercase, underscore-separated command name to its
// qualified sh.builtin method name: "filter_map" -> "sh.builtin.FilterMap".
func QualifyMethod(command string) string {
	parts := strings.Split(command, "_")
	var b strings.Builder
	b.WriteString("sh.builtin.")
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// Unqualify maps a qualified method name to its lowercase, underscore-
// separated command spelling: "sh.builtin.FilterMap" -> "filter_map". The
// exact inverse of QualifyMethod.
func Unqualify(qualifiedName string) string {
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
