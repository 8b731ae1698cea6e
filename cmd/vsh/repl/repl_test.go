package repl

import (
	"bytes"
	"strings"
	"testing"

	"vsh/cmd/vsh/builtin"
	"vsh/cmd/vsh/config"
	"vsh/cmd/vsh/exec"
	"vsh/cmd/vsh/wire"
)

func newTestREPL(t *testing.T, cfg config.Config) (*REPL, *bytes.Buffer) {
	t.Helper()
	reg := wire.NewRegistry()
	svc := wire.NewService(reg)
	e := exec.New(svc)
	if err := builtin.Register(reg, e.Execute, nil); err != nil {
		t.Fatalf("builtin.Register: %v", err)
	}
	var buf bytes.Buffer
	return New(e, cfg, &buf), &buf
}

func TestRunOneExecutesAndPrints(t *testing.T) {
	r, buf := newTestREPL(t, config.Config{})
	if err := r.runOne("echo name=alice"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "alice") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRunOneExpandsAlias(t *testing.T) {
	cfg := config.Config{Aliases: map[string]string{"greet": "echo name=alice"}}
	r, buf := newTestREPL(t, cfg)
	if err := r.runOne("greet"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "alice") {
		t.Fatalf("expected alias expansion, got %q", buf.String())
	}
}

func TestRunOnePropagatesUnknownCommandError(t *testing.T) {
	r, _ := newTestREPL(t, config.Config{})
	if err := r.runOne("nope"); err == nil {
		t.Fatal("expected an error for an unregistered command")
	}
}
