package interp

import (
	"reflect"
	"testing"

	"vsh/cmd/vsh/value"
)

func obj(pairs ...interface{}) value.Object {
	o := value.NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}
	return o
}

func TestEvalRawFormPreservesType(t *testing.T) {
	o := obj("a", int64(42))
	got := Eval("{a}", o)
	if got != int64(42) {
		t.Fatalf("got %#v, want int64(42)", got)
	}
}

func TestEvalRawFormMissingFieldIsNil(t *testing.T) {
	o := obj("a", int64(1))
	if got := Eval("{missing}", o); got != nil {
		t.Fatalf("got %#v, want nil", got)
	}
}

func TestEvalMixedTemplateStringifies(t *testing.T) {
	o := obj("a", int64(42))
	got := Eval("{a}b", o)
	if got != "42b" {
		t.Fatalf("got %#v, want %q", got, "42b")
	}
}

func TestEvalMissingFieldInMixedTemplateIsEmpty(t *testing.T) {
	o := obj("a", int64(1))
	got := Eval("x={missing}", o)
	if got != "x=" {
		t.Fatalf("got %#v", got)
	}
}

func TestEvalNestedField(t *testing.T) {
	inner := obj("id", "abc")
	o := obj("context", inner)
	got := Eval("{context.id}", o)
	if got != "abc" {
		t.Fatalf("got %#v", got)
	}
}

func TestEvalNoPlaceholdersUnchanged(t *testing.T) {
	if got := Eval("static text", obj()); got != "static text" {
		t.Fatalf("got %#v", got)
	}
}

func TestFields(t *testing.T) {
	got := Fields("{a} and {b} and {a}")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseMappings(t *testing.T) {
	got := ParseMappings([]string{"a", "b=c", "x=y=z"})
	want := []Mapping{
		{Key: "a", Template: "{a}"},
		{Key: "b", Template: "c"},
		{Key: "x", Template: "y=z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}
