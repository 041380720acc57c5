// Package daemonconfig loads the YAML-layered configuration for the
// autotiling daemon, wrapping the wire-level autotile.Config (spec.md
// section 6.1) with daemon-scoped settings: which screens autotile by
// default, logging, and where persisted state lives. Grounded on
// internal/config/config.go and internal/config/loader.go.
package daemonconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/autotiled/internal/autotile"
)

// ScreenDefault configures whether a named screen starts with autotiling
// enabled. AlgorithmID is read from and written to the config file, but
// the engine runs one algorithm for every screen and does not apply it.
type ScreenDefault struct {
	Enabled     bool   `yaml:"enabled"`
	AlgorithmID string `yaml:"algorithm_id,omitempty"`
}

// DaemonConfig is the top-level YAML document for the autotiling daemon.
type DaemonConfig struct {
	LogLevel string `yaml:"log_level"`

	// StateDir holds one JSON TilingState file per screen (spec.md
	// section 6.2); defaults under XDG-style ~/.local/share.
	StateDir string `yaml:"state_dir,omitempty"`

	// Screens maps screen name -> its autotile defaults. A screen absent
	// from this map is disabled until explicitly enabled at runtime.
	Screens map[string]ScreenDefault `yaml:"screens,omitempty"`

	// Autotile carries the wire-level tiling configuration (spec.md
	// section 6.1), embedded here so first-run config files can seed it.
	Autotile autotile.Config `yaml:"autotile"`
}

// DefaultConfig returns the daemon configuration used when no config file
// exists yet.
func DefaultConfig() *DaemonConfig {
	return &DaemonConfig{
		LogLevel: "info",
		Screens:  make(map[string]ScreenDefault),
		Autotile: autotile.DefaultConfig(),
	}
}

// DefaultConfigPath mirrors internal/config/loader.go's DefaultConfigPath,
// placed under a sibling directory so the two daemons never collide.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "autotiled", "config.yaml"), nil
}

// DefaultStateDir returns the directory persisted TilingState files live
// under when StateDir is unset.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "autotiled"), nil
}

// EnabledScreens returns the set of screens that should autotile on
// startup, per the loaded config.
func (c *DaemonConfig) EnabledScreens() map[string]bool {
	out := make(map[string]bool, len(c.Screens))
	for name, sd := range c.Screens {
		out[name] = sd.Enabled
	}
	return out
}

// ResolveStateDir returns c.StateDir, falling back to DefaultStateDir.
func (c *DaemonConfig) ResolveStateDir() (string, error) {
	if c.StateDir != "" {
		return c.StateDir, nil
	}
	return DefaultStateDir()
}

// Save writes the effective configuration to the standard location,
// creating its parent directory if needed. Mirrors internal/config's
// Config.Save.
func (c *DaemonConfig) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path.
func (c *DaemonConfig) SaveTo(path string) error {
	c.Autotile.Clamp()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal daemon config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
