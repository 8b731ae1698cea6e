// Package wire implements the interface registry and request/reply
// transport of the Varlink-style RPC fabric: a registered table of method
// descriptors and handlers, JSON request/reply framing with the `continues`
// streaming flag, and a minimal client/server for reaching (or being) an
// external Varlink-style peer.
package wire

import "vsh/cmd/vsh/value"

// Request is one call frame: the qualified method name, whether the caller
// accepts a streaming reply, and the parameter record.
type Request struct {
	Method     string       `json:"method"`
	More       bool         `json:"more"`
	Parameters value.Object `json:"parameters"`
}

// Reply is one frame of a method's response. Continues is true on every
// frame but the last; the last frame omits it (false). Error, when set,
// carries the qualified error name and Parameters carries its detail
// fields — no further replies follow an error frame.
type Reply struct {
	Parameters value.Object `json:"parameters"`
	Continues  bool         `json:"continues,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// IsError reports whether r is an error reply.
func (r Reply) IsError() bool {
	return r.Error != ""
}

// ObjectParam builds a Parameters record from alternating key/value pairs,
// the common shape for error detail objects ({parameter: name},
// {address, message}, ...).
func ObjectParam(pairs ...interface{}) value.Object {
	obj := value.NewObjectCap(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		obj.Set(key, pairs[i+1])
	}
	return obj
}
