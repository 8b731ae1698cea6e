package builtin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

var errBoom = errors.New("boom")

func obj(pairs ...any) value.Object {
	o := value.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}
	return o
}

func drain(t *testing.T, seq func() (func(func(value.Object) bool), *wire.HandlerError)) []value.Object {
	t.Helper()
	s, err := seq()
	if err != nil {
		t.Fatalf("unexpected handler error: %s", err.Name)
	}
	var out []value.Object
	if s != nil {
		for o := range s {
			out = append(out, wire.UnwrapReply(o))
		}
	}
	return out
}

func TestEchoHandlerBuildsFromArgs(t *testing.T) {
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return echoHandler(wire.Params{Args: []string{"name=alice", "admin"}})
	})
	if len(out) != 1 {
		t.Fatalf("got %d objects", len(out))
	}
	name, _ := out[0].Get("name")
	if name != "alice" {
		t.Fatalf("got %#v", out[0])
	}
	admin, _ := out[0].Get("admin")
	if admin != true {
		t.Fatalf("bare arg should be true, got %#v", admin)
	}
}

func TestEchoHandlerPassesThroughInput(t *testing.T) {
	input := []value.Object{obj("x", "1")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return echoHandler(wire.Params{Args: []string{"ignored=1"}, Input: input})
	})
	if len(out) != 1 {
		t.Fatal("expected passthrough of input")
	}
	if _, ok := out[0].Get("ignored"); ok {
		t.Fatal("args should be ignored when input is present")
	}
	if _, ok := out[0].Get("x"); !ok {
		t.Fatalf("expected input field to survive passthrough, got %#v", out[0])
	}
}

func TestGrepHandlerFiltersBySubstring(t *testing.T) {
	input := []value.Object{obj("name", "alice"), obj("name", "bob")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return grepHandler(wire.Params{Args: []string{"name=ali"}, Input: input})
	})
	if len(out) != 1 {
		t.Fatalf("got %d objects", len(out))
	}
	name, _ := out[0].Get("name")
	if name != "alice" {
		t.Fatalf("got %#v", out[0])
	}
}

func TestCountHandler(t *testing.T) {
	input := []value.Object{obj("a", "1"), obj("a", "2"), obj("a", "3")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return countHandler(wire.Params{Input: input})
	})
	if len(out) != 1 {
		t.Fatal("expected one object")
	}
	n, _ := out[0].Get("count")
	if n != int64(3) {
		t.Fatalf("got %#v", n)
	}
}

func TestSortHandlerNumericAscending(t *testing.T) {
	input := []value.Object{obj("n", int64(3)), obj("n", int64(1)), obj("n", int64(2))}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return sortHandler(wire.Params{Args: []string{"n"}, Input: input})
	})
	if len(out) != 3 {
		t.Fatalf("got %d objects", len(out))
	}
	for i, want := range []int64{1, 2, 3} {
		n, _ := out[i].Get("n")
		if n != want {
			t.Fatalf("position %d: got %#v, want %d", i, n, want)
		}
	}
}

func TestSortHandlerDescending(t *testing.T) {
	input := []value.Object{obj("n", int64(1)), obj("n", int64(3)), obj("n", int64(2))}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return sortHandler(wire.Params{Args: []string{"-n"}, Input: input})
	})
	first, _ := out[0].Get("n")
	if first != int64(3) {
		t.Fatalf("got %#v", first)
	}
}

func TestHeadAndTail(t *testing.T) {
	input := []value.Object{obj("n", int64(1)), obj("n", int64(2)), obj("n", int64(3))}

	h := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return headHandler(wire.Params{Args: []string{"2"}, Input: input})
	})
	if len(h) != 2 {
		t.Fatalf("head: got %d", len(h))
	}
	first, _ := h[0].Get("n")
	if first != int64(1) {
		t.Fatalf("head: got %#v", first)
	}

	tl := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return tailHandler(wire.Params{Args: []string{"2"}, Input: input})
	})
	if len(tl) != 2 {
		t.Fatalf("tail: got %d", len(tl))
	}
	last, _ := tl[1].Get("n")
	if last != int64(3) {
		t.Fatalf("tail: got %#v", last)
	}
}

func TestUniqDedupesByFields(t *testing.T) {
	input := []value.Object{
		obj("k", "a", "v", int64(1)),
		obj("k", "a", "v", int64(2)),
		obj("k", "b", "v", int64(3)),
	}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return uniqHandler(wire.Params{Args: []string{"k"}, Input: input})
	})
	if len(out) != 2 {
		t.Fatalf("got %d objects", len(out))
	}
}

func TestReverseHandler(t *testing.T) {
	input := []value.Object{obj("n", int64(1)), obj("n", int64(2))}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return reverseHandler(wire.Params{Input: input})
	})
	first, _ := out[0].Get("n")
	if first != int64(2) {
		t.Fatalf("got %#v", first)
	}
}

func TestSumHandler(t *testing.T) {
	input := []value.Object{obj("n", int64(1)), obj("n", int64(2)), obj("n", "not-a-number")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return sumHandler(wire.Params{Args: []string{"n"}, Input: input})
	})
	sum, _ := out[0].Get("sum")
	if sum != int64(3) {
		t.Fatalf("got %#v, want unparseable values to contribute 0", sum)
	}
}

func TestMinMaxHandlers(t *testing.T) {
	input := []value.Object{obj("n", int64(3)), obj("n", int64(1)), obj("n", int64(2))}

	mn := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return minHandler(wire.Params{Args: []string{"n"}, Input: input})
	})
	if n, _ := mn[0].Get("n"); n != int64(1) {
		t.Fatalf("min: got %#v", n)
	}

	mx := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return maxHandler(wire.Params{Args: []string{"n"}, Input: input})
	})
	if n, _ := mx[0].Get("n"); n != int64(3) {
		t.Fatalf("max: got %#v", n)
	}
}

func TestMinMaxEmptyInputEmitsNothing(t *testing.T) {
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return minHandler(wire.Params{Args: []string{"n"}})
	})
	if len(out) != 0 {
		t.Fatalf("got %d objects, want none for empty input", len(out))
	}
}

func TestWhereHandlerNumericComparison(t *testing.T) {
	input := []value.Object{obj("n", int64(1)), obj("n", int64(5)), obj("n", int64(10))}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return whereHandler(wire.Params{Args: []string{"n>=5"}, Input: input})
	})
	if len(out) != 2 {
		t.Fatalf("got %d objects", len(out))
	}
}

func TestWhereHandlerRegex(t *testing.T) {
	input := []value.Object{obj("name", "alice"), obj("name", "bob")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return whereHandler(wire.Params{Args: []string{"name~^a"}, Input: input})
	})
	if len(out) != 1 {
		t.Fatalf("got %d objects", len(out))
	}
}

func TestGroupHandlerTallies(t *testing.T) {
	input := []value.Object{
		obj("team", "a"), obj("team", "a"), obj("team", "b"),
	}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return groupHandler(wire.Params{Args: []string{"team"}, Input: input})
	})
	if len(out) != 2 {
		t.Fatalf("got %d groups", len(out))
	}
	count, _ := out[0].Get("count")
	if count != int64(2) {
		t.Fatalf("got %#v", count)
	}
}

func TestEnumerateHandlerPrependsIndex(t *testing.T) {
	input := []value.Object{obj("name", "alice"), obj("name", "bob")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return enumerateHandler(wire.Params{Input: input})
	})
	idx, _ := out[1].Get("index")
	if idx != int64(1) {
		t.Fatalf("got %#v", idx)
	}
}

func TestMapHandlerAppliesTemplate(t *testing.T) {
	input := []value.Object{obj("first", "alice", "last", "smith")}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return mapHandler(wire.Params{Args: []string{"full={first} {last}"}, Input: input})
	})
	full, _ := out[0].Get("full")
	if full != "alice smith" {
		t.Fatalf("got %#v", full)
	}
}

func TestMapHandlerRawFormPreservesType(t *testing.T) {
	input := []value.Object{obj("n", int64(42))}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return mapHandler(wire.Params{Args: []string{"n2={n}"}, Input: input})
	})
	n2, _ := out[0].Get("n2")
	if n2 != int64(42) {
		t.Fatalf("raw single-placeholder form should preserve type, got %#v", n2)
	}
}

func TestFilterMapDropsObjectsMissingFields(t *testing.T) {
	input := []value.Object{
		obj("name", "alice", "age", int64(30)),
		obj("name", "bob"),
	}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return filterMapHandler(wire.Params{Args: []string{"who={name}", "old={age}"}, Input: input})
	})
	if len(out) != 1 {
		t.Fatalf("got %d objects, want 1 (bob lacks age)", len(out))
	}
	who, _ := out[0].Get("who")
	if who != "alice" {
		t.Fatalf("got %#v", out[0])
	}
}

func TestLsHandlerListsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return lsHandler(wire.Params{Args: []string{dir}})
	})
	if len(out) != 2 {
		t.Fatalf("got %d entries", len(out))
	}
	name, _ := out[0].Get("name")
	if name != "a.txt" {
		t.Fatalf("got %#v", out[0])
	}
}

func TestLsHandlerMissingDirectoryEmitsNothing(t *testing.T) {
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return lsHandler(wire.Params{Args: []string{"/does/not/exist"}})
	})
	if len(out) != 0 {
		t.Fatalf("got %d entries, want none", len(out))
	}
}

func TestHelpHandlerListsRegisteredCommands(t *testing.T) {
	reg := wire.NewRegistry()
	if err := Register(reg, func(string) ([]value.Object, error) { return nil, nil }, nil); err != nil {
		t.Fatal(err)
	}
	h := newHelpHandler(reg)
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return h(wire.Params{Args: nil})
	})
	found := false
	for _, o := range out {
		if cmd, _ := o.Get("command"); cmd == "sort" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected sort to be listed")
	}
}

func TestForeachHandlerRunsSubPipelinePerObject(t *testing.T) {
	input := []value.Object{obj("a", "x"), obj("a", "y")}
	var seen []string
	runLine := func(line string) ([]value.Object, error) {
		seen = append(seen, line)
		return []value.Object{obj("line", line)}, nil
	}
	h := newForeachHandler(runLine)
	out := drain(t, func() (func(func(value.Object) bool), *wire.HandlerError) {
		return h(wire.Params{Args: []string{"echo", "v={a}"}, Input: input})
	})
	if len(out) != 2 {
		t.Fatalf("got %d objects", len(out))
	}
	if len(seen) != 2 {
		t.Fatalf("expected runLine called once per input object, got %d", len(seen))
	}
}

func TestForeachHandlerPropagatesSubPipelineErrors(t *testing.T) {
	input := []value.Object{obj("a", "x")}
	runLine := func(line string) ([]value.Object, error) {
		return nil, errBoom
	}
	h := newForeachHandler(runLine)
	_, herr := h(wire.Params{Args: []string{"bad"}, Input: input})
	if herr == nil {
		t.Fatal("expected a fatal handler error when the sub-pipeline fails")
	}
	if herr.Name != wire.ErrExecFailed {
		t.Fatalf("got %q", herr.Name)
	}
}
