package daemonconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceKind identifies where a loaded configuration came from.
type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// Source records provenance for a single loaded document, mirroring
// internal/config/loader.go's Source (scaled down: autotiled has no
// includes; loading fills in Kind and File and leaves Line at zero).
type Source struct {
	Kind SourceKind
	File string
	Line int
}

// LoadResult is the outcome of loading the daemon configuration.
type LoadResult struct {
	Config *DaemonConfig
	Source Source
}

// Load reads the daemon configuration from the standard location. A
// missing file is not an error: it yields the compiled-in defaults with
// Source.Kind set to SourceDefault.
func Load() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the daemon configuration from an explicit path.
func LoadFromPath(path string) (*LoadResult, error) {
	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		cfg := DefaultConfig()
		return &LoadResult{Config: cfg, Source: Source{Kind: SourceDefault}}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(false) // unknown fields are ignored, per spec.md 6.1's wire-format rule
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse yaml: %w", path, err)
	}
	cfg.Autotile.Clamp()

	return &LoadResult{
		Config: cfg,
		Source: Source{Kind: SourceFile, File: path},
	}, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
