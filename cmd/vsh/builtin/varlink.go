package builtin

import (
	"iter"
	"strconv"
	"strings"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const varlinkDoc = `Call out to an external Varlink-style peer.

args[0] is the peer address. With no further non-"k=v" arg, introspect
the peer and emit one {interface, method, signature} Object per
discovered method. With a method name (dotted-qualified, or bare —
bare triggers auto-discovery by scanning introspection; ambiguous or
unknown is VarlinkMethodNotFound), call that method with either the
"k=v" args coerced to typed values (integer, else float, else
true/false, else JSON if it starts with "{" or "[", else string), or,
if input Objects were piped in, each one as its own parameter record.
All replies are collected and emitted. A connection failure is
VarlinkConnectionFailed; a remote error reply is VarlinkCallFailed.`

func varlinkDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:         "sh.builtin.Varlink",
		AcceptsArgs:  true,
		AcceptsInput: true,
		Doc:          varlinkDoc,
	}
}

func varlinkHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}
	address := p.Args[0]

	var method string
	var kvArgs []string
	for _, a := range p.Args[1:] {
		if _, _, ok := splitKV(a); ok {
			kvArgs = append(kvArgs, a)
		} else if method == "" {
			method = a
		}
	}

	client, err := wire.Dial(address)
	if err != nil {
		rec := value.NewObjectCap(2)
		rec.Set("address", address)
		rec.Set("message", err.Error())
		return nil, &wire.HandlerError{Name: wire.ErrVarlinkConnectionFailed, Params: rec}
	}
	defer client.Close()

	if method == "" {
		infos, err := client.Introspect()
		if err != nil {
			rec := value.NewObjectCap(2)
			rec.Set("address", address)
			rec.Set("message", err.Error())
			return nil, &wire.HandlerError{Name: wire.ErrVarlinkConnectionFailed, Params: rec}
		}
		out := make([]value.Object, len(infos))
		for i, info := range infos {
			rec := value.NewObjectCap(3)
			rec.Set("interface", info.Interface)
			rec.Set("method", info.Method)
			rec.Set("signature", info.Signature)
			out[i] = rec
		}
		return seqOf(out), nil
	}

	qualified, herr := resolveVarlinkMethod(client, method, address)
	if herr != nil {
		return nil, herr
	}

	var calls []value.Object
	if len(p.Input) > 0 {
		calls = p.Input
	} else {
		rec := value.NewObject()
		for _, a := range kvArgs {
			k, v, _ := splitKV(a)
			rec.Set(k, coerceVarlinkValue(v))
		}
		calls = []value.Object{rec}
	}

	var out []value.Object
	for _, params := range calls {
		replies, err := client.Call(qualified, params)
		if err != nil {
			if callErr, ok := err.(*wire.CallError); ok {
				rec := value.NewObjectCap(3)
				rec.Set("method", qualified)
				rec.Set("error", callErr.Name)
				rec.Set("parameters", callErr.Params)
				return nil, &wire.HandlerError{Name: wire.ErrVarlinkCallFailed, Params: rec}
			}
			rec := value.NewObjectCap(2)
			rec.Set("address", address)
			rec.Set("message", err.Error())
			return nil, &wire.HandlerError{Name: wire.ErrVarlinkConnectionFailed, Params: rec}
		}
		for _, r := range replies {
			out = append(out, wrapObject(wire.UnwrapReply(r)))
		}
	}
	return seqOf(out), nil
}

// resolveVarlinkMethod qualifies a bare method name by scanning
// introspection for a unique suffix match; a dotted name passes through
// unchanged.
func resolveVarlinkMethod(client *wire.Client, method, address string) (string, *wire.HandlerError) {
	if strings.Contains(method, ".") {
		return method, nil
	}

	infos, err := client.Introspect()
	if err != nil {
		rec := value.NewObjectCap(2)
		rec.Set("method", method)
		rec.Set("address", address)
		return "", &wire.HandlerError{Name: wire.ErrVarlinkMethodNotFound, Params: rec}
	}

	var match string
	for _, info := range infos {
		suffix := info.Method
		if i := strings.LastIndex(suffix, "."); i >= 0 {
			suffix = suffix[i+1:]
		}
		if suffix == method {
			if match != "" && match != info.Method {
				rec := value.NewObjectCap(2)
				rec.Set("method", method)
				rec.Set("address", address)
				return "", &wire.HandlerError{Name: wire.ErrVarlinkMethodNotFound, Params: rec}
			}
			match = info.Method
		}
	}
	if match == "" {
		rec := value.NewObjectCap(2)
		rec.Set("method", method)
		rec.Set("address", address)
		return "", &wire.HandlerError{Name: wire.ErrVarlinkMethodNotFound, Params: rec}
	}
	return match, nil
}

// coerceVarlinkValue coerces a "k=v" value token to a typed Value: integer,
// else float, else bool, else JSON (if it looks like an object/array), else
// string.
func coerceVarlinkValue(s string) value.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		if v, err := value.ParseJSON([]byte(s)); err == nil {
			return v
		}
	}
	return s
}
