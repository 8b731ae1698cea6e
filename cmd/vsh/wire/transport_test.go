package wire

import (
	"iter"
	"testing"

	"vsh/cmd/vsh/value"
)

func echoArgsHandler(p Params) (iter.Seq[value.Object], *HandlerError) {
	if len(p.Args) == 0 {
		return func(yield func(value.Object) bool) {}, nil
	}
	return func(yield func(value.Object) bool) {
		for _, a := range p.Args {
			obj := value.NewObject()
			obj.Set("arg", a)
			wrapped := value.NewObject()
			wrapped.Set("object", obj)
			if !yield(wrapped) {
				return
			}
		}
	}, nil
}

func newTestRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(Descriptor{Name: "sh.builtin.Echoargs", AcceptsArgs: true}, echoArgsHandler)
	return reg
}

func TestCallZeroOutputYieldsNoFrames(t *testing.T) {
	svc := NewService(newTestRegistry())
	params := EncodeParams(Descriptor{AcceptsArgs: true}, nil, nil)
	replies := svc.Call("sh.builtin.Echoargs", params)
	if replies != nil {
		t.Fatalf("expected nil replies, got %v", replies)
	}
}

func TestCallContinuesFlagOnlyOnNonFinal(t *testing.T) {
	svc := NewService(newTestRegistry())
	params := EncodeParams(Descriptor{AcceptsArgs: true}, []string{"a", "b", "c"}, nil)
	replies := svc.Call("sh.builtin.Echoargs", params)
	if len(replies) != 3 {
		t.Fatalf("expected 3 replies, got %d", len(replies))
	}
	for i, r := range replies {
		wantContinues := i != len(replies)-1
		if r.Continues != wantContinues {
			t.Errorf("reply %d: Continues = %v, want %v", i, r.Continues, wantContinues)
		}
	}
}

func TestCallMethodNotFound(t *testing.T) {
	svc := NewService(newTestRegistry())
	replies := svc.Call("sh.builtin.Nope", value.NewObject())
	if len(replies) != 1 || replies[0].Error != ErrMethodNotFound {
		t.Fatalf("got %#v", replies)
	}
}

func TestCallMissingArgsIsInvalidParameter(t *testing.T) {
	svc := NewService(newTestRegistry())
	replies := svc.Call("sh.builtin.Echoargs", value.NewObject())
	if len(replies) != 1 || replies[0].Error != ErrInvalidParameter {
		t.Fatalf("got %#v", replies)
	}
}

func TestUnwrapReplySingleObjectField(t *testing.T) {
	inner := value.NewObject()
	inner.Set("n", int64(1))
	wrapped := value.NewObject()
	wrapped.Set("object", inner)

	got := UnwrapReply(wrapped)
	if got.Len() != 1 {
		t.Fatalf("expected unwrap, got %#v", got)
	}
	v, _ := got.Get("n")
	if v != int64(1) {
		t.Fatalf("got %v", v)
	}
}

func TestUnwrapReplyPassesThroughNonObjectField(t *testing.T) {
	rec := value.NewObject()
	rec.Set("count", int64(3))
	got := UnwrapReply(rec)
	if got.Len() != 1 {
		t.Fatalf("got %#v", got)
	}
	v, _ := got.Get("count")
	if v != int64(3) {
		t.Fatalf("got %v", v)
	}
}

func TestShortDocFirstParagraph(t *testing.T) {
	doc := "Sort objects by field.\n\nFields prefixed with - sort descending."
	if got := ShortDoc(doc); got != "Sort objects by field." {
		t.Fatalf("got %q", got)
	}
}
