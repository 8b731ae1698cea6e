package builtin

import (
	"bytes"
	"iter"
	"os/exec"
	"strings"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const jsexecDoc = `Run an external command and parse its stdout as JSON.

args is the argv (args[0] is the program). A non-zero exit fails with
ExecFailed {command, exitcode, message}; stdout that fails to parse as
JSON fails with InvalidJson {message}. The parsed value is then
normalized to a list: a single-key Object whose only value is an array
unwraps to that array; anything else that is still not an array is
wrapped as a one-element array. Each element that is an Object is
emitted as-is; any other element is emitted as {value: element}.`

func jsexecDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:        "sh.builtin.Jsexec",
		AcceptsArgs: true,
		Doc:         jsexecDoc,
	}
}

func jsexecHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	if len(p.Args) == 0 {
		return nil, wire.InvalidParameter("args")
	}

	cmd := exec.Command(p.Args[0], p.Args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		rec := value.NewObjectCap(3)
		rec.Set("command", strings.Join(p.Args, " "))
		rec.Set("exitcode", int64(exitCode))
		rec.Set("message", strings.TrimSpace(stderr.String()))
		return nil, &wire.HandlerError{Name: wire.ErrExecFailed, Params: rec}
	}

	parsed, err := value.ParseJSON(stdout.Bytes())
	if err != nil {
		rec := value.NewObjectCap(1)
		rec.Set("message", err.Error())
		return nil, &wire.HandlerError{Name: wire.ErrInvalidJSON, Params: rec}
	}

	items := normalizeJsexecOutput(parsed)

	out := make([]value.Object, len(items))
	for i, item := range items {
		if obj, ok := item.(value.Object); ok {
			out[i] = wrapObject(obj)
		} else {
			rec := value.NewObjectCap(1)
			rec.Set("value", item)
			out[i] = wrapObject(rec)
		}
	}
	return seqOf(out), nil
}

func normalizeJsexecOutput(v value.Value) []value.Value {
	if obj, ok := v.(value.Object); ok && obj.Len() == 1 {
		only, _ := obj.Get(obj.Keys()[0])
		if arr, ok := only.([]value.Value); ok {
			return arr
		}
	}
	if arr, ok := v.([]value.Value); ok {
		return arr
	}
	return []value.Value{v}
}
