package autotile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Persistence is spec.md section 6.2: one JSON file per screen under a
// state directory, named after the screen. Screen names containing a path
// separator, or equal to "." or "..", are rejected so a screen name can
// never escape the directory. Grounded on
// internal/workspace/storage.go's validate-name/MkdirAll/WriteFile shape.

func sanitizeScreenName(screenName string) (string, error) {
	name := strings.TrimSpace(screenName)
	if name == "" {
		return "", fmt.Errorf("screen name is required")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return "", fmt.Errorf("invalid screen name %q", screenName)
	}
	return name, nil
}

func statePath(dir, screenName string) (string, error) {
	name, err := sanitizeScreenName(screenName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".json"), nil
}

// SaveState writes s to dir/<screenName>.json, creating dir if needed.
func SaveState(dir string, s *State) error {
	if s == nil {
		return fmt.Errorf("state is nil")
	}
	path, err := statePath(dir, s.ScreenName())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := s.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode tiling state: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write state for %q: %w", s.ScreenName(), err)
	}
	return nil
}

// LoadState reads dir/<screenName>.json. A missing file is not an error:
// it returns (nil, nil) so callers fall back to a freshly defaulted State.
func LoadState(dir, screenName string) (*State, error) {
	path, err := statePath(dir, screenName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state for %q: %w", screenName, err)
	}
	return StateFromJSON(data)
}

// LoadAllStates reads every *.json file directly under dir as a TilingState,
// keyed by screen name. A missing dir is not an error.
func LoadAllStates(dir string) (map[string]*State, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*State{}, nil
		}
		return nil, fmt.Errorf("failed to list state directory: %w", err)
	}

	out := make(map[string]*State, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		st, err := StateFromJSON(data)
		if err != nil {
			continue
		}
		out[st.ScreenName()] = st
	}
	return out, nil
}
