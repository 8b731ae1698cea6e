package builtin

import (
	"testing"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

func TestJsexecHandlerParsesJSONArray(t *testing.T) {
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return jsexecHandler(wire.Params{Args: []string{"echo", `[{"name":"alice"},{"name":"bob"}]`}})
	})
	if len(out) != 2 {
		t.Fatalf("got %d objects", len(out))
	}
	name, _ := out[0].Get("name")
	if name != "alice" {
		t.Fatalf("got %#v", out[0])
	}
}

func TestJsexecHandlerWrapsNonObjectElements(t *testing.T) {
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return jsexecHandler(wire.Params{Args: []string{"echo", `[1, 2, 3]`}})
	})
	if len(out) != 3 {
		t.Fatalf("got %d objects", len(out))
	}
	v, _ := out[1].Get("value")
	if v != int64(2) {
		t.Fatalf("got %#v", v)
	}
}

func TestJsexecHandlerNonZeroExitIsExecFailed(t *testing.T) {
	_, herr := jsexecHandler(wire.Params{Args: []string{"sh", "-c", "exit 3"}})
	if herr == nil || herr.Name != wire.ErrExecFailed {
		t.Fatalf("got %#v", herr)
	}
}

func TestJsexecHandlerInvalidJsonIsInvalidJson(t *testing.T) {
	_, herr := jsexecHandler(wire.Params{Args: []string{"echo", "not json"}})
	if herr == nil || herr.Name != wire.ErrInvalidJSON {
		t.Fatalf("got %#v", herr)
	}
}

func TestVarlinkHandlerIntrospectsAndCallsRemotePeer(t *testing.T) {
	reg := wire.NewRegistry()
	if err := Register(reg, func(string) ([]value.Object, error) { return nil, nil }, nil); err != nil {
		t.Fatal(err)
	}
	svc := wire.NewService(reg)
	srv, err := wire.Listen("tcp:127.0.0.1:0", svc)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()
	go srv.Serve()

	address := "tcp:" + srv.Addr().String()

	introspection := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return varlinkHandler(wire.Params{Args: []string{address}})
	})
	if len(introspection) == 0 {
		t.Fatal("expected at least one introspected method")
	}

	// Each piped Object is sent as its own parameter record, so Count is
	// called twice; neither record carries an "input" field, so each call
	// counts zero objects.
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return varlinkHandler(wire.Params{Args: []string{address, "Count"}, Input: []value.Object{
			obj("a", "1"), obj("a", "2"),
		}})
	})
	if len(out) != 2 {
		t.Fatalf("got %d objects", len(out))
	}
	for i, o := range out {
		n, _ := o.Get("count")
		if n != int64(0) {
			t.Fatalf("reply %d: got %#v", i, n)
		}
	}
}

func TestVarlinkHandlerConnectionFailure(t *testing.T) {
	_, herr := varlinkHandler(wire.Params{Args: []string{"tcp:127.0.0.1:1"}})
	if herr == nil || herr.Name != wire.ErrVarlinkConnectionFailed {
		t.Fatalf("got %#v", herr)
	}
}

func TestCoerceVarlinkValue(t *testing.T) {
	cases := map[string]value.Value{
		"42":    int64(42),
		"3.5":   3.5,
		"true":  true,
		"false": false,
		"hi":    "hi",
	}
	for in, want := range cases {
		got := coerceVarlinkValue(in)
		if got != want {
			t.Fatalf("coerceVarlinkValue(%q) = %#v, want %#v", in, got, want)
		}
	}
}
