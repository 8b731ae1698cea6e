package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Peers) != 0 || len(cfg.Aliases) != 0 {
		t.Fatalf("got %#v, want zero value", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := FilePath(t.TempDir())
	want := Config{
		Peers:   map[string]string{"build": "unix:/tmp/build.sock"},
		Aliases: map[string]string{"recent": "ls | sort -name | head 5"},
	}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Peers["build"] != want.Peers["build"] {
		t.Fatalf("got %#v", got)
	}
	if got.Aliases["recent"] != want.Aliases["recent"] {
		t.Fatalf("got %#v", got)
	}
}

func TestResolvedPeersOverlaysEnv(t *testing.T) {
	cfg := Config{Peers: map[string]string{"build": "unix:/tmp/a.sock"}}
	t.Setenv(envVarlinkPeer, "build=unix:/tmp/b.sock,extra=tcp:localhost:9999")

	peers := cfg.ResolvedPeers()
	if peers["build"] != "unix:/tmp/b.sock" {
		t.Fatalf("env should win: got %#v", peers)
	}
	if peers["extra"] != "tcp:localhost:9999" {
		t.Fatalf("got %#v", peers)
	}
}
