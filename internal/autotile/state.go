package autotile

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/1broseidon/autotiled/internal/geometry"
)

// ChangeKind enumerates the change notifications TilingState emits.
// Grounded on TilingState's Qt signals (windowCountChanged,
// windowOrderChanged, ...), replaced per spec.md's Design Notes with
// explicit event structs rather than simulated signals.
type ChangeKind int

const (
	WindowCountChanged ChangeKind = iota
	WindowOrderChanged
	MasterCountChanged
	SplitRatioChanged
	FloatingChanged
	FocusedWindowChanged
	StateChanged // umbrella, emitted once per public mutation that changed anything
)

func (k ChangeKind) String() string {
	switch k {
	case WindowCountChanged:
		return "window_count_changed"
	case WindowOrderChanged:
		return "window_order_changed"
	case MasterCountChanged:
		return "master_count_changed"
	case SplitRatioChanged:
		return "split_ratio_changed"
	case FloatingChanged:
		return "floating_changed"
	case FocusedWindowChanged:
		return "focused_window_changed"
	default:
		return "state_changed"
	}
}

// Change is a single emitted notification. WindowID and Floating are only
// meaningful for FloatingChanged.
type Change struct {
	Kind     ChangeKind
	WindowID string
	Floating bool
}

// State is the per-screen mutable tiling record (spec.md section 3/4.3).
// Not safe for concurrent use: the engine owns exactly one goroutine that
// touches any given State, per spec.md section 5's single-thread model.
type State struct {
	screenName string

	windowOrder []string
	floating    map[string]bool
	focused     string

	masterCount int
	splitRatio  float64

	lastZones []geometry.Rect

	pending []Change
}

// NewState creates the default state for a screen.
func NewState(screenName string) *State {
	return defaultState(screenName)
}

// ScreenName returns the immutable screen identifier.
func (s *State) ScreenName() string { return s.screenName }

// MasterCount returns the current clamped master-window count.
func (s *State) MasterCount() int { return s.masterCount }

// SplitRatio returns the current clamped split ratio.
func (s *State) SplitRatio() float64 { return s.splitRatio }

// Focused returns the focused window id, or "" if none.
func (s *State) Focused() string { return s.focused }

// WindowOrder returns a copy of the full tracked window order.
func (s *State) WindowOrder() []string {
	out := make([]string, len(s.windowOrder))
	copy(out, s.windowOrder)
	return out
}

// IsFloating reports whether id is marked floating.
func (s *State) IsFloating(id string) bool { return s.floating[id] }

// LastZones returns a copy of the most recently cached algorithm output.
func (s *State) LastZones() []geometry.Rect {
	out := make([]geometry.Rect, len(s.lastZones))
	copy(out, s.lastZones)
	return out
}

// SetLastZones replaces the zone cache; called by the engine after a
// successful retile.
func (s *State) SetLastZones(zones []geometry.Rect) {
	s.lastZones = append([]geometry.Rect(nil), zones...)
}

// TiledWindows returns window_order filtered by ¬floating, preserving order.
func (s *State) TiledWindows() []string {
	out := make([]string, 0, len(s.windowOrder))
	for _, id := range s.windowOrder {
		if !s.floating[id] {
			out = append(out, id)
		}
	}
	return out
}

// MasterWindows returns the first min(masterCount, |tiled|) tiled windows.
func (s *State) MasterWindows() []string {
	tiled := s.TiledWindows()
	n := s.masterCount
	if n > len(tiled) {
		n = len(tiled)
	}
	return tiled[:n]
}

// StackWindows returns the tiled windows after the master group.
func (s *State) StackWindows() []string {
	tiled := s.TiledWindows()
	n := s.masterCount
	if n > len(tiled) {
		n = len(tiled)
	}
	return tiled[n:]
}

func (s *State) indexOf(id string) int {
	for i, w := range s.windowOrder {
		if w == id {
			return i
		}
	}
	return -1
}

func (s *State) emit(kind ChangeKind, id string, floating bool) {
	s.pending = append(s.pending, Change{Kind: kind, WindowID: id, Floating: floating})
}

func (s *State) emitStateChanged() {
	s.pending = append(s.pending, Change{Kind: StateChanged})
}

// DrainChanges returns and clears the notifications queued by the most
// recent mutating calls. The engine drains this after every operation and
// forwards it to its own event sink.
func (s *State) DrainChanges() []Change {
	out := s.pending
	s.pending = nil
	return out
}

// AddWindow inserts a non-empty, not-already-present window id at pos
// (clamped; -1 means end). Returns false as a no-op for empty/duplicate ids.
func (s *State) AddWindow(id string, pos int) bool {
	if id == "" || s.indexOf(id) >= 0 {
		return false
	}
	if pos < 0 || pos > len(s.windowOrder) {
		pos = len(s.windowOrder)
	}
	s.windowOrder = append(s.windowOrder, "")
	copy(s.windowOrder[pos+1:], s.windowOrder[pos:])
	s.windowOrder[pos] = id

	s.emit(WindowCountChanged, id, false)
	s.emitStateChanged()
	return true
}

// RemoveWindow removes a present window id, clearing it from the floating
// set and from focus if it was focused.
func (s *State) RemoveWindow(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.windowOrder = append(s.windowOrder[:idx], s.windowOrder[idx+1:]...)
	delete(s.floating, id)
	if s.focused == id {
		s.focused = ""
	}
	s.emit(WindowCountChanged, id, false)
	s.emitStateChanged()
	return true
}

// MoveWindow moves the window at index from to index to.
func (s *State) MoveWindow(from, to int) bool {
	n := len(s.windowOrder)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	id := s.windowOrder[from]
	s.windowOrder = append(s.windowOrder[:from], s.windowOrder[from+1:]...)
	s.windowOrder = append(s.windowOrder[:to], append([]string{id}, s.windowOrder[to:]...)...)
	s.emit(WindowOrderChanged, "", false)
	s.emitStateChanged()
	return true
}

// SwapWindows swaps the windows at indices i and j.
func (s *State) SwapWindows(i, j int) bool {
	n := len(s.windowOrder)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}
	if i == j {
		return true
	}
	s.windowOrder[i], s.windowOrder[j] = s.windowOrder[j], s.windowOrder[i]
	s.emit(WindowOrderChanged, "", false)
	s.emitStateChanged()
	return true
}

// SwapWindowsByID swaps two windows identified by id.
func (s *State) SwapWindowsByID(a, b string) bool {
	i, j := s.indexOf(a), s.indexOf(b)
	if i < 0 || j < 0 {
		return false
	}
	return s.SwapWindows(i, j)
}

// PromoteToMaster moves id to index 0 (alias: MoveToFront).
func (s *State) PromoteToMaster(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	return s.MoveWindow(idx, 0)
}

// MoveToFront is an alias for PromoteToMaster.
func (s *State) MoveToFront(id string) bool { return s.PromoteToMaster(id) }

// InsertAfterFocused inserts a new, not-present id immediately after the
// focused window, or at the end if nothing is focused.
func (s *State) InsertAfterFocused(id string) bool {
	if id == "" || s.indexOf(id) >= 0 {
		return false
	}
	pos := len(s.windowOrder)
	if s.focused != "" {
		if fi := s.indexOf(s.focused); fi >= 0 {
			pos = fi + 1
		}
	}
	return s.AddWindow(id, pos)
}

// MoveToPosition moves a present window to a valid position.
func (s *State) MoveToPosition(id string, pos int) bool {
	idx := s.indexOf(id)
	if idx < 0 || pos < 0 || pos >= len(s.windowOrder) {
		return false
	}
	return s.MoveWindow(idx, pos)
}

// RotateWindows rotates the tiled subsequence one step, leaving floating
// windows at their absolute indices. Requires at least 2 tiled windows.
func (s *State) RotateWindows(clockwise bool) bool {
	tiledIdx := make([]int, 0, len(s.windowOrder))
	for i, id := range s.windowOrder {
		if !s.floating[id] {
			tiledIdx = append(tiledIdx, i)
		}
	}
	if len(tiledIdx) < 2 {
		return false
	}

	vals := make([]string, len(tiledIdx))
	for i, idx := range tiledIdx {
		vals[i] = s.windowOrder[idx]
	}

	if clockwise {
		last := vals[len(vals)-1]
		copy(vals[1:], vals[:len(vals)-1])
		vals[0] = last
	} else {
		first := vals[0]
		copy(vals[:len(vals)-1], vals[1:])
		vals[len(vals)-1] = first
	}

	for i, idx := range tiledIdx {
		s.windowOrder[idx] = vals[i]
	}

	s.emit(WindowOrderChanged, "", false)
	s.emitStateChanged()
	return true
}

// SetMasterCount clamps n to the absolute [1, 5] range (see DESIGN.md
// decision 1 — this deliberately does not depend on the current tiled
// count, unlike the reference implementation).
func (s *State) SetMasterCount(n int) {
	n = clampInt(n, MinMasterCount, MaxMasterCount)
	if n == s.masterCount {
		return
	}
	s.masterCount = n
	s.emit(MasterCountChanged, "", false)
	s.emitStateChanged()
}

const splitRatioEpsilon = 1e-9

// SetSplitRatio clamps r to [0.1, 0.9] and emits on change (fuzzy compare).
func (s *State) SetSplitRatio(r float64) {
	r = clampFloat(r, MinSplitRatio, MaxSplitRatio)
	if math.Abs(r-s.splitRatio) < splitRatioEpsilon {
		return
	}
	s.splitRatio = r
	s.emit(SplitRatioChanged, "", false)
	s.emitStateChanged()
}

// IncreaseSplitRatio raises the split ratio by delta.
func (s *State) IncreaseSplitRatio(delta float64) { s.SetSplitRatio(s.splitRatio + delta) }

// DecreaseSplitRatio lowers the split ratio by delta.
func (s *State) DecreaseSplitRatio(delta float64) { s.SetSplitRatio(s.splitRatio - delta) }

// SetFloating updates the floating flag for a present window id. Untracked
// ids are a no-op that returns the (false) current state.
func (s *State) SetFloating(id string, floating bool) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	if s.floating[id] == floating {
		return floating
	}
	if floating {
		s.floating[id] = true
	} else {
		delete(s.floating, id)
	}
	s.emit(FloatingChanged, id, floating)
	s.emit(WindowCountChanged, id, false)
	s.emitStateChanged()
	return floating
}

// ToggleFloating flips the floating flag for id.
func (s *State) ToggleFloating(id string) bool {
	return s.SetFloating(id, !s.floating[id])
}

// SetFocused updates the focused window. id must be empty or present;
// an untracked non-empty id is a no-op.
func (s *State) SetFocused(id string) bool {
	if id != "" && s.indexOf(id) < 0 {
		return false
	}
	if id == s.focused {
		return true
	}
	s.focused = id
	s.emit(FocusedWindowChanged, id, false)
	s.emitStateChanged()
	return true
}

// Clear resets all mutable fields to the defaults for ScreenName, emitting
// a batch of signals only if something actually changed (structural
// equality check against a freshly constructed default state, per
// spec.md's Design Notes).
func (s *State) Clear() {
	def := defaultState(s.screenName)
	if statesEqual(s, def) {
		return
	}
	s.windowOrder = nil
	s.floating = make(map[string]bool)
	s.focused = ""
	s.masterCount = 1
	s.splitRatio = 0.6
	s.lastZones = nil

	s.emit(WindowCountChanged, "", false)
	s.emit(WindowOrderChanged, "", false)
	s.emit(MasterCountChanged, "", false)
	s.emit(SplitRatioChanged, "", false)
	s.emit(FocusedWindowChanged, "", false)
	s.emitStateChanged()
}

func defaultState(screenName string) *State {
	return &State{
		screenName:  screenName,
		floating:    make(map[string]bool),
		masterCount: 1,
		splitRatio:  0.6,
	}
}

func statesEqual(a, b *State) bool {
	if a.screenName != b.screenName {
		return false
	}
	if len(a.windowOrder) != 0 || len(b.windowOrder) != 0 {
		return false
	}
	if len(a.floating) != 0 || len(b.floating) != 0 {
		return false
	}
	if a.focused != b.focused {
		return false
	}
	if a.masterCount != b.masterCount {
		return false
	}
	if math.Abs(a.splitRatio-b.splitRatio) > splitRatioEpsilon {
		return false
	}
	return true
}

// jsonState mirrors the wire format from spec.md section 6.2.
type jsonState struct {
	ScreenName      string   `json:"screenName"`
	WindowOrder     []string `json:"windowOrder"`
	FloatingWindows []string `json:"floatingWindows"`
	FocusedWindow   string   `json:"focusedWindow"`
	MasterCount     int      `json:"masterCount"`
	SplitRatio      float64  `json:"splitRatio"`
}

// ToJSON serializes the state per spec.md section 6.2.
func (s *State) ToJSON() ([]byte, error) {
	js := jsonState{
		ScreenName:      s.screenName,
		WindowOrder:     s.WindowOrder(),
		FocusedWindow:   s.focused,
		MasterCount:     s.masterCount,
		SplitRatio:      s.splitRatio,
		FloatingWindows: make([]string, 0, len(s.floating)),
	}
	for _, id := range s.windowOrder {
		if s.floating[id] {
			js.FloatingWindows = append(js.FloatingWindows, id)
		}
	}
	return json.MarshalIndent(js, "", "  ")
}

// StateFromJSON parses the TilingState wire format. Missing screenName is
// a load failure. floatingWindows entries not present in windowOrder are
// silently ignored. A focusedWindow not in windowOrder is reset to empty.
// Numeric fields are clamped.
func StateFromJSON(data []byte) (*State, error) {
	var js jsonState
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("decode tiling state: %w", err)
	}
	if js.ScreenName == "" {
		return nil, fmt.Errorf("decode tiling state: missing screenName")
	}

	s := defaultState(js.ScreenName)

	seen := make(map[string]bool, len(js.WindowOrder))
	for _, id := range js.WindowOrder {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.windowOrder = append(s.windowOrder, id)
	}

	for _, id := range js.FloatingWindows {
		if seen[id] {
			s.floating[id] = true
		}
	}

	if seen[js.FocusedWindow] {
		s.focused = js.FocusedWindow
	}

	s.masterCount = clampInt(js.MasterCount, MinMasterCount, MaxMasterCount)
	s.splitRatio = clampFloat(js.SplitRatio, MinSplitRatio, MaxSplitRatio)

	return s, nil
}
