package autotile

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := NewState("HDMI-1")
	st.AddWindow("w1", -1)
	st.AddWindow("w2", -1)
	st.SetFocused("w1")
	st.DrainChanges()

	if err := SaveState(dir, st); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	loaded, err := LoadState(dir, "HDMI-1")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected loaded state, got nil")
	}
	if loaded.Focused() != "w1" {
		t.Fatalf("expected focused w1, got %q", loaded.Focused())
	}
	if len(loaded.WindowOrder()) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(loaded.WindowOrder()))
	}
}

func TestLoadStateMissingFileReturnsNilNil(t *testing.T) {
	dir := t.TempDir()
	st, err := LoadState(dir, "nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != nil {
		t.Fatalf("expected nil state for missing file")
	}
}

func TestSaveStateRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	st := NewState("../escape")
	if err := SaveState(dir, st); err == nil {
		t.Fatalf("expected error for path-traversal screen name")
	}
}

func TestLoadAllStatesReadsEveryFile(t *testing.T) {
	dir := t.TempDir()
	a := NewState("HDMI-1")
	b := NewState("eDP-1")
	if err := SaveState(dir, a); err != nil {
		t.Fatalf("SaveState a: %v", err)
	}
	if err := SaveState(dir, b); err != nil {
		t.Fatalf("SaveState b: %v", err)
	}

	states, err := LoadAllStates(dir)
	if err != nil {
		t.Fatalf("LoadAllStates: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	if _, ok := states["HDMI-1"]; !ok {
		t.Fatalf("expected HDMI-1 in loaded states")
	}
}

func TestLoadAllStatesMissingDirIsNotError(t *testing.T) {
	states, err := LoadAllStates(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(states) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(states))
	}
}
