// Package config resolves vsh's on-disk configuration: saved Varlink peer
// aliases and startup pipeline aliases, loaded from an XDG-style config
// directory the same way the teacher's devshell resolves its own config
// directory and registry paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// appName is the single source of truth for derived env var names and the
// default config directory name.
const appName = "vsh"

var (
	envConfigDir   = strings.ToUpper(appName) + "_CONFIG_DIR"
	envVarlinkPeer = strings.ToUpper(appName) + "_VARLINK_PEERS"
)

// Config is the persisted settings file: named Varlink peer addresses and
// named pipeline-line aliases expanded by the REPL before parsing.
type Config struct {
	Peers   map[string]string `yaml:"peers,omitempty"`
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// ResolveDir returns the base config directory for vsh. Priority:
// $VSH_CONFIG_DIR > $XDG_CONFIG_HOME/vsh > ~/.config/vsh.
func ResolveDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// FilePath returns the path to the config file under dir.
func FilePath(dir string) string {
	return filepath.Join(dir, "config.yml")
}

// Load reads and parses the config file at path. A missing file is not an
// error — it returns a zero-value Config, the same way a fresh install has
// no peers or aliases configured yet.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ResolvedPeers returns the configured peer aliases, overlaid with any
// comma-separated "name=address" pairs from $VSH_VARLINK_PEERS (env wins on
// conflict, the same env-overrides-file precedence the teacher's devshell
// uses for registry directories). Comma, not colon, separates entries since
// a Varlink address itself contains colons (e.g. "tcp:host:port").
func (c Config) ResolvedPeers() map[string]string {
	peers := make(map[string]string, len(c.Peers))
	for k, v := range c.Peers {
		peers[k] = v
	}
	for _, pair := range strings.Split(os.Getenv(envVarlinkPeer), ",") {
		if pair == "" {
			continue
		}
		if i := strings.Index(pair, "="); i > 0 {
			peers[pair[:i]] = pair[i+1:]
		}
	}
	return peers
}
