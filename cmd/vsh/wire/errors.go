package wire

import (
	"fmt"

	"vsh/cmd/vsh/value"
)

// Known qualified error names (spec.md §6, "Known error qualified names").
const (
	ErrMethodNotFound          = "org.varlink.service.MethodNotFound"
	ErrInvalidParameter        = "org.varlink.service.InvalidParameter"
	ErrExecFailed              = "sh.builtin.ExecFailed"
	ErrInvalidJSON             = "sh.builtin.InvalidJson"
	ErrVarlinkConnectionFailed = "sh.builtin.VarlinkConnectionFailed"
	ErrVarlinkMethodNotFound   = "sh.builtin.VarlinkMethodNotFound"
	ErrVarlinkCallFailed       = "sh.builtin.VarlinkCallFailed"
)

// HandlerError is the error a handler signals instead of returning a reply
// sequence. The transport turns it into a single error reply frame; the
// executor turns that frame into a fatal *CallError.
type HandlerError struct {
	Name   string
	Params value.Object
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Params.CanonicalJSON())
}

// InvalidParameter builds the standard {parameter: name} handler error for
// a missing or malformed required argument.
func InvalidParameter(name string) *HandlerError {
	return &HandlerError{Name: ErrInvalidParameter, Params: ObjectParam("parameter", name)}
}

// CallError is the fatal pipeline error raised when a stage's handler
// signals an error (spec.md §7, level 2: "Handler error").
type CallError struct {
	Method string
	Name   string
	Params value.Object
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Method, e.Name, e.Params.CanonicalJSON())
}
