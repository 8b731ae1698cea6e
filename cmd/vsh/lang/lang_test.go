package lang

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	got, err := Tokenize(`ls /tmp | where size>1024 | sort -size | head 5`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ls", "/tmp", "|", "where", "size>1024", "|", "sort", "-size", "|", "head", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeQuotes(t *testing.T) {
	got, err := Tokenize(`echo x="hello world" 'a b'`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"echo", "x=hello world", "a b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeBackslashEscape(t *testing.T) {
	got, err := Tokenize(`echo "a\"b"`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"echo", `a"b`}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	if _, err := Tokenize(`echo "unterminated`); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseEmptyLine(t *testing.T) {
	stages, err := Parse("   ")
	if err != nil {
		t.Fatal(err)
	}
	if stages != nil {
		t.Fatalf("expected nil stages, got %v", stages)
	}
}

func TestParseMultiStage(t *testing.T) {
	stages, err := Parse(`ls /tmp | where size>1024 | head 5`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Stage{
		{Command: "ls", Args: []string{"/tmp"}},
		{Command: "where", Args: []string{"size>1024"}},
		{Command: "head", Args: []string{"5"}},
	}
	if !reflect.DeepEqual(stages, want) {
		t.Fatalf("got %#v, want %#v", stages, want)
	}
}

func TestParseLeadingPipe(t *testing.T) {
	if _, err := Parse("| ls"); err != ErrEmptyStage {
		t.Fatalf("got %v, want ErrEmptyStage", err)
	}
}

func TestParseTrailingPipe(t *testing.T) {
	if _, err := Parse("ls |"); err != ErrEmptyStage {
		t.Fatalf("got %v, want ErrEmptyStage", err)
	}
}

func TestParseDoublePipe(t *testing.T) {
	if _, err := Parse("ls || count"); err != ErrEmptyStage {
		t.Fatalf("got %v, want ErrEmptyStage", err)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"hello", "hello world", "it's", "", "a|b"} {
		q := Quote(s)
		toks, err := Tokenize("echo " + q)
		if err != nil {
			t.Fatalf("Quote(%q) -> %q did not tokenize: %v", s, q, err)
		}
		if len(toks) != 2 || toks[1] != s {
			t.Fatalf("Quote(%q) -> %q round-tripped to %v", s, q, toks)
		}
	}
}
