package engine

import (
	"testing"

	"github.com/1broseidon/autotiled/internal/autotile"
	"github.com/1broseidon/autotiled/internal/autotile/algo"
	"github.com/1broseidon/autotiled/internal/geometry"
)

type fakeScreenManager struct {
	rects map[string]geometry.Rect
}

func (f *fakeScreenManager) ScreenRect(name string) (geometry.Rect, bool) {
	r, ok := f.rects[name]
	return r, ok
}

type recordingListener struct {
	tiled         map[string]geometry.Rect
	tiledOrder    []string
	tilingChanged []string
	focusRequests []string
}

func newRecordingListener() *recordingListener {
	return &recordingListener{tiled: make(map[string]geometry.Rect)}
}

func (l *recordingListener) EnabledChanged([]string)    {}
func (l *recordingListener) AlgorithmChanged(string)     {}
func (l *recordingListener) TilingChanged(screen string) { l.tilingChanged = append(l.tilingChanged, screen) }
func (l *recordingListener) WindowTiled(id string, r geometry.Rect) {
	l.tiled[id] = r
	l.tiledOrder = append(l.tiledOrder, id)
}
func (l *recordingListener) FocusWindowRequested(id string) {
	l.focusRequests = append(l.focusRequests, id)
}

func newTestEngine(screen geometry.Rect) (*Engine, *recordingListener) {
	sm := &fakeScreenManager{rects: map[string]geometry.Rect{"HDMI-1": screen}}
	listener := newRecordingListener()
	registry := algo.NewBuiltinRegistry(nil)
	e := New(Options{ScreenManager: sm, Listener: listener, Registry: registry})
	cfg := autotile.DefaultConfig()
	cfg.InnerGap = 10
	cfg.OuterGap = 10
	e.SetConfig(cfg)
	e.SetAutotileScreens(map[string]bool{"HDMI-1": true})
	listener.tiled = make(map[string]geometry.Rect)
	listener.tiledOrder = nil
	listener.tilingChanged = nil
	return e, listener
}

// S1. Single window, master-stack.
func TestScenarioS1SingleWindow(t *testing.T) {
	e, listener := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.WindowOpened("w1", "HDMI-1")

	want := geometry.Rect{X: 10, Y: 10, Width: 1900, Height: 1060}
	if listener.tiled["w1"] != want {
		t.Fatalf("w1 tiled to %+v, want %+v", listener.tiled["w1"], want)
	}
	if len(listener.tiledOrder) != 1 {
		t.Fatalf("expected exactly one window_tiled event, got %d", len(listener.tiledOrder))
	}
}

// S2. Three windows, master-stack, split=0.6, master_count=1.
func TestScenarioS2ThreeWindows(t *testing.T) {
	e, listener := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.WindowOpened("w1", "HDMI-1")
	e.WindowOpened("w2", "HDMI-1")
	e.WindowOpened("w3", "HDMI-1")

	inner := geometry.Rect{X: 10, Y: 10, Width: 1900, Height: 1060}
	if listener.tiled["w1"].Left() != inner.Left() || listener.tiled["w1"].Top() != inner.Top() {
		t.Fatalf("w1 master zone origin wrong: %+v", listener.tiled["w1"])
	}
	if listener.tiled["w2"].Left() != listener.tiled["w3"].Left() {
		t.Fatalf("w2/w3 should share the same right-column X: %+v / %+v", listener.tiled["w2"], listener.tiled["w3"])
	}
	if listener.tiled["w2"].Top() >= listener.tiled["w3"].Top() {
		t.Fatalf("expected w2 above w3 in stack order")
	}
}

// S3. Columns, four windows.
func TestScenarioS3Columns(t *testing.T) {
	e, listener := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.SetAlgorithm("columns")
	listener.tiled = make(map[string]geometry.Rect)
	listener.tiledOrder = nil

	e.WindowOpened("w1", "HDMI-1")
	e.WindowOpened("w2", "HDMI-1")
	e.WindowOpened("w3", "HDMI-1")
	e.WindowOpened("w4", "HDMI-1")

	if listener.tiled["w1"].Left() != 10 {
		t.Fatalf("first column outer gap: %+v", listener.tiled["w1"])
	}
	if listener.tiled["w4"].Right() != 1909 {
		t.Fatalf("last column outer gap: %+v", listener.tiled["w4"])
	}
}

// S4. Promote and swap.
func TestScenarioS4PromoteToMaster(t *testing.T) {
	e, listener := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.WindowOpened("w1", "HDMI-1")
	e.WindowOpened("w2", "HDMI-1")
	e.WindowOpened("w3", "HDMI-1")

	if !e.PromoteToMaster("w3") {
		t.Fatalf("PromoteToMaster should succeed")
	}

	st := e.StateForScreen("HDMI-1")
	order := st.WindowOrder()
	if order[0] != "w3" {
		t.Fatalf("expected w3 at position 0, got %v", order)
	}
	if listener.tiled["w3"].Left() != 10 || listener.tiled["w3"].Top() != 10 {
		t.Fatalf("expected w3 now at master origin, got %+v", listener.tiled["w3"])
	}
}

// S5. BSP incremental.
func TestScenarioS5BSPIncremental(t *testing.T) {
	e, _ := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.SetAlgorithm("bsp")

	e.WindowOpened("w1", "HDMI-1")
	e.WindowOpened("w2", "HDMI-1")
	e.WindowOpened("w3", "HDMI-1")

	st := e.StateForScreen("HDMI-1")
	if len(st.TiledWindows()) != 3 {
		t.Fatalf("expected 3 tiled windows")
	}

	e.WindowClosed("w2")
	if len(st.TiledWindows()) != 2 {
		t.Fatalf("expected 2 tiled windows after close")
	}
	if len(st.LastZones()) != 2 {
		t.Fatalf("expected 2 cached zones after retile, got %d", len(st.LastZones()))
	}
}

// S6. Monocle.
func TestScenarioS6Monocle(t *testing.T) {
	e, listener := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.SetAlgorithm("monocle")
	listener.tiled = make(map[string]geometry.Rect)

	e.WindowOpened("w1", "HDMI-1")
	e.WindowOpened("w2", "HDMI-1")
	e.WindowOpened("w3", "HDMI-1")

	want := geometry.Rect{X: 10, Y: 10, Width: 1900, Height: 1060}
	for _, id := range []string{"w1", "w2", "w3"} {
		if listener.tiled[id] != want {
			t.Fatalf("%s tiled to %+v, want %+v", id, listener.tiled[id], want)
		}
	}
}

func TestUnknownAlgorithmFallsBackToDefault(t *testing.T) {
	e, _ := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.SetAlgorithm("does-not-exist")
	if e.AlgorithmID() != algo.DefaultAlgorithmID {
		t.Fatalf("expected fallback to default, got %q", e.AlgorithmID())
	}
}

func TestWindowOpenedOnDisabledScreenOnlyRecordsMapping(t *testing.T) {
	sm := &fakeScreenManager{rects: map[string]geometry.Rect{"HDMI-1": {X: 0, Y: 0, Width: 1920, Height: 1080}}}
	listener := newRecordingListener()
	e := New(Options{ScreenManager: sm, Listener: listener})

	e.WindowOpened("w1", "HDMI-1")
	if len(listener.tiledOrder) != 0 {
		t.Fatalf("expected no tiling on disabled screen")
	}

	e.SetAutotileScreens(map[string]bool{"HDMI-1": true})
	e.WindowFocusChanged("w1")
	st := e.StateForScreen("HDMI-1")
	if st.Focused() != "" {
		t.Fatalf("w1 was never added to state, focus should stay unset")
	}
}

func TestFocusCycling(t *testing.T) {
	e, listener := newTestEngine(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	e.WindowOpened("w1", "HDMI-1")
	e.WindowOpened("w2", "HDMI-1")
	e.WindowOpened("w3", "HDMI-1")
	e.WindowFocusChanged("w1")

	e.FocusNext()
	if len(listener.focusRequests) != 1 || listener.focusRequests[0] != "w2" {
		t.Fatalf("expected FocusWindowRequested(w2), got %v", listener.focusRequests)
	}

	e.WindowFocusChanged("w2")
	e.FocusPrevious()
	if listener.focusRequests[len(listener.focusRequests)-1] != "w1" {
		t.Fatalf("expected FocusWindowRequested(w1), got %v", listener.focusRequests)
	}

	e.FocusMaster()
	if listener.focusRequests[len(listener.focusRequests)-1] != "w1" {
		t.Fatalf("expected FocusMaster to request w1, got %v", listener.focusRequests)
	}
}
