package daemonconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Autotile.AlgorithmID == "" {
		t.Fatalf("expected default autotile config to carry an algorithm id")
	}
}

func TestEnabledScreens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screens = map[string]ScreenDefault{
		"HDMI-1": {Enabled: true},
		"eDP-1":  {Enabled: false},
	}
	enabled := cfg.EnabledScreens()
	if !enabled["HDMI-1"] || enabled["eDP-1"] {
		t.Fatalf("unexpected enabled set: %+v", enabled)
	}
}

func TestLoadFromPathMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	res, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if res.Source.Kind != SourceDefault {
		t.Fatalf("expected SourceDefault, got %v", res.Source.Kind)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.Autotile.AlgorithmID = "bsp"
	cfg.Screens = map[string]ScreenDefault{"HDMI-1": {Enabled: true, AlgorithmID: "columns"}}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if res.Source.Kind != SourceFile || res.Source.File != path {
		t.Fatalf("unexpected source: %+v", res.Source)
	}
	if res.Config.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", res.Config.LogLevel)
	}
	if res.Config.Autotile.AlgorithmID != "bsp" {
		t.Fatalf("AlgorithmID = %q, want bsp", res.Config.Autotile.AlgorithmID)
	}
	if !res.Config.Screens["HDMI-1"].Enabled {
		t.Fatalf("expected HDMI-1 enabled after round trip")
	}
}

func TestLoadFromPathIgnoresUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("log_level: warn\nsomething_unknown: 42\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if res.Config.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", res.Config.LogLevel)
	}
}

func TestLoadClampsAutotileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("autotile:\n  splitRatio: 5.0\n  masterCount: 99\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if res.Config.Autotile.SplitRatio > 0.9 {
		t.Fatalf("expected split ratio clamped, got %v", res.Config.Autotile.SplitRatio)
	}
	if res.Config.Autotile.MasterCount > 5 {
		t.Fatalf("expected master count clamped, got %v", res.Config.Autotile.MasterCount)
	}
}
