package wire

import (
	"encoding/json"
	"strings"

	"vsh/cmd/vsh/value"
)

// Service is the request/reply transport in front of a Registry: it parses
// one request frame, dispatches to the matching handler, and serializes the
// reply frames with the `continues` flag (spec.md §4.2).
type Service struct {
	Registry *Registry
}

// NewService wraps a Registry in a Service.
func NewService(reg *Registry) *Service {
	return &Service{Registry: reg}
}

// Handle parses reqBytes as a Request frame and returns the full sequence
// of Reply frames. A zero-object handler output yields a nil slice, never a
// trailing empty frame (spec.md §4.2, "Streaming contract").
func (s *Service) Handle(reqBytes []byte) []Reply {
	var req Request
	if err := json.Unmarshal(reqBytes, &req); err != nil {
		return []Reply{{Error: ErrInvalidParameter, Parameters: ObjectParam("parameter", "request")}}
	}
	return s.Call(req.Method, req.Parameters)
}

// Call dispatches method with the given wire Parameters record directly,
// without a JSON round trip. Used by the in-process pipeline executor,
// which already holds typed values; callers reaching a real peer go through
// Handle (or Client.Call) instead, which serializes to bytes first.
func (s *Service) Call(method string, params value.Object) []Reply {
	m, ok := s.Registry.Get(method)
	if !ok {
		return []Reply{{Error: ErrMethodNotFound, Parameters: ObjectParam("method", method)}}
	}
	desc := m.Descriptor

	p, err := decodeParams(desc, params)
	if err != nil {
		return []Reply{{Error: err.Name, Parameters: err.Params}}
	}

	seq, herr := m.Handler(p)
	if herr != nil {
		return []Reply{{Error: herr.Name, Parameters: herr.Params}}
	}
	if seq == nil {
		return nil
	}

	var objects []value.Object
	for o := range seq {
		objects = append(objects, o)
	}
	if len(objects) == 0 {
		return nil
	}

	replies := make([]Reply, len(objects))
	last := len(objects) - 1
	for i, o := range objects {
		replies[i] = Reply{Parameters: o, Continues: i != last}
	}
	return replies
}

// decodeParams extracts Args/Input from the wire Parameters record
// according to the method's declared input shape (spec.md §4.2 step 2).
func decodeParams(desc Descriptor, params value.Object) (Params, *HandlerError) {
	var p Params

	if desc.AcceptsArgs {
		v, ok := params.Get("args")
		if !ok {
			return Params{}, InvalidParameter("args")
		}
		arr, _ := v.([]value.Value)
		p.Args = make([]string, len(arr))
		for i, e := range arr {
			p.Args[i] = value.Stringify(e)
		}
	} else {
		for _, name := range desc.Positional {
			if v, ok := params.Get(name); ok {
				p.Args = append(p.Args, value.Stringify(v))
			}
		}
	}

	if desc.AcceptsInput {
		if v, ok := params.Get("input"); ok {
			arr, _ := v.([]value.Value)
			p.Input = make([]value.Object, 0, len(arr))
			for _, e := range arr {
				if obj, ok := e.(value.Object); ok {
					p.Input = append(p.Input, obj)
				}
			}
		}
	}

	return p, nil
}

// EncodeParams builds the wire Parameters record an executor sends for a
// stage: "args" (if declared) carrying the CLI tokens, "input" (if declared
// and a prior stage produced output) carrying those Objects.
func EncodeParams(desc Descriptor, args []string, input []value.Object) value.Object {
	params := value.NewObject()

	if desc.AcceptsArgs {
		arr := make([]value.Value, len(args))
		for i, a := range args {
			arr[i] = a
		}
		params.Set("args", arr)
	} else {
		for i, name := range desc.Positional {
			if i < len(args) {
				params.Set(name, args[i])
			}
		}
	}

	if desc.AcceptsInput && input != nil {
		arr := make([]value.Value, len(input))
		for i, o := range input {
			arr[i] = o
		}
		params.Set("input", arr)
	}

	return params
}

// UnwrapReply applies the single-"object"-field unwrap rule (spec.md §3):
// when params has exactly one field named "object", that field's value
// becomes the stage's output Object; otherwise params itself is the Object.
func UnwrapReply(params value.Object) value.Object {
	if params.Len() == 1 && params.Keys()[0] == "object" {
		if obj, ok := params.Get("object"); ok {
			if o, ok := obj.(value.Object); ok {
				return o
			}
		}
	}
	return params
}

// ShortDoc returns the first paragraph of a docstring (blank-line
// delimited), used by `help` with no argument.
func ShortDoc(doc string) string {
	doc = strings.TrimSpace(doc)
	if i := strings.Index(doc, "\n\n"); i >= 0 {
		doc = doc[:i]
	}
	return strings.Join(strings.Fields(doc), " ")
}
