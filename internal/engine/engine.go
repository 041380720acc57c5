// Package engine implements AutotileEngine, the coordinator that wires
// window lifecycle events to TilingState mutation, algorithm invocation,
// gap application, and geometry-change emission. Grounded on
// AutotileEngine.h/.cpp; the control-loop shape (event in, recompute,
// emit, recover from any failure without panicking) follows
// internal/daemon/reconciler.go's Run/reconcile idiom, generalized from
// periodic polling to direct synchronous calls since spec.md section 5
// rules out any suspension point in this subsystem.
package engine

import (
	"log/slog"
	"sort"

	"github.com/1broseidon/autotiled/internal/autotile"
	"github.com/1broseidon/autotiled/internal/autotile/algo"
	"github.com/1broseidon/autotiled/internal/geometry"
)

// ScreenManager gives the available working area of a screen by name
// (panels/struts already subtracted). External collaborator, consumed
// only — never implemented by this package (spec.md section 1/6.4).
type ScreenManager interface {
	ScreenRect(screenName string) (geometry.Rect, bool)
}

// Listener receives every event the engine emits (spec.md section 6.3).
// A real applier implements WindowTiled to move windows; a demonstration
// UI might implement only the others. All methods are best-effort: the
// engine never blocks or retries on a Listener.
type Listener interface {
	EnabledChanged(screens []string)
	AlgorithmChanged(algorithmID string)
	TilingChanged(screenName string)
	WindowTiled(windowID string, rect geometry.Rect)
	FocusWindowRequested(windowID string)
}

// WindowFilter decides whether a newly opened window should be excluded
// from tiling (dialog, transient, known-excluded class, below minimum
// size). Returning true excludes the window.
type WindowFilter func(windowID string) bool

// Options configures a new Engine.
type Options struct {
	ScreenManager ScreenManager
	Listener      Listener
	Registry      *algo.Registry // nil uses algo.Global()
	Filter        WindowFilter   // nil means nothing is filtered
	Logger        *slog.Logger   // nil uses slog.Default()
}

// Engine is the coordinator described in spec.md section 4.5. It is not
// safe for concurrent use: exactly one goroutine may call its methods, the
// same single-thread invariant the BSP algorithm relies on (spec.md
// section 5).
type Engine struct {
	screenManager ScreenManager
	listener      Listener
	registry      *algo.Registry
	filter        WindowFilter
	logger        *slog.Logger

	enabled        bool
	enabledScreens map[string]bool
	algorithmID    string
	config         autotile.Config

	screens        map[string]*autotile.State
	windowToScreen map[string]string
}

// New constructs an Engine with the given collaborators and a default
// configuration.
func New(opts Options) *Engine {
	registry := opts.Registry
	if registry == nil {
		registry = algo.Global()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := autotile.DefaultConfig()

	return &Engine{
		screenManager:  opts.ScreenManager,
		listener:       opts.Listener,
		registry:       registry,
		filter:         opts.Filter,
		logger:         logger,
		enabledScreens: make(map[string]bool),
		algorithmID:    cfg.AlgorithmID,
		config:         cfg,
		screens:        make(map[string]*autotile.State),
		windowToScreen: make(map[string]string),
	}
}

// Config returns a copy of the engine's current autotile configuration.
func (e *Engine) Config() autotile.Config { return e.config }

// SetConfig replaces the engine's configuration wholesale (clamped) and
// adopts its algorithm id, then retiles enabled screens.
func (e *Engine) SetConfig(cfg autotile.Config) {
	cfg.Clamp()
	e.config = cfg
	e.SetAlgorithm(cfg.AlgorithmID)
}

// IsEnabled reports whether autotiling is enabled on any screen.
func (e *Engine) IsEnabled() bool { return e.enabled }

// EnabledScreens returns the sorted list of screens with autotile enabled.
func (e *Engine) EnabledScreens() []string {
	out := make([]string, 0, len(e.enabledScreens))
	for name, on := range e.enabledScreens {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// SetAutotileScreens replaces the enabled-screen set. Newly enabled
// screens are retiled; disabling every screen releases per-screen state
// is NOT performed here (TilingState survives per spec.md's lifecycle
// rule) — only the enabled flag changes.
func (e *Engine) SetAutotileScreens(screens map[string]bool) {
	newlyEnabled := make([]string, 0)
	for name, on := range screens {
		if on && !e.enabledScreens[name] {
			newlyEnabled = append(newlyEnabled, name)
		}
	}

	e.enabledScreens = make(map[string]bool, len(screens))
	e.enabled = false
	for name, on := range screens {
		e.enabledScreens[name] = on
		if on {
			e.enabled = true
		}
	}

	e.emitEnabledChanged()

	for _, name := range newlyEnabled {
		e.retileScreen(name)
	}
}

func (e *Engine) emitEnabledChanged() {
	if e.listener == nil {
		return
	}
	e.listener.EnabledChanged(e.EnabledScreens())
}

// SetAlgorithm validates algorithmID against the registry, falling back
// to the registry default on an unknown id, then retiles enabled screens.
func (e *Engine) SetAlgorithm(algorithmID string) {
	if !e.registry.Has(algorithmID) {
		e.logger.Warn("unknown algorithm id, falling back to default", "requested", algorithmID)
		algorithmID = e.registry.DefaultID()
	}
	e.algorithmID = algorithmID
	e.config.AlgorithmID = algorithmID
	if e.listener != nil {
		e.listener.AlgorithmChanged(algorithmID)
	}
	e.retileAll()
}

// AlgorithmID returns the currently selected algorithm id.
func (e *Engine) AlgorithmID() string { return e.algorithmID }

// StateForScreen returns the TilingState for screenName, creating it
// lazily on first mention (spec.md section 3's lifecycle rule).
func (e *Engine) StateForScreen(screenName string) *autotile.State {
	st, ok := e.screens[screenName]
	if !ok {
		st = autotile.NewState(screenName)
		st.SetMasterCount(e.config.MasterCount)
		st.SetSplitRatio(e.config.SplitRatio)
		st.DrainChanges()
		e.screens[screenName] = st
	}
	return st
}

func (e *Engine) shouldTileWindow(id string) bool {
	if e.filter == nil {
		return true
	}
	return !e.filter(id)
}

// WindowOpened handles a newly tracked window (spec.md section 4.5's
// control flow for window-opened).
func (e *Engine) WindowOpened(windowID, screenName string) {
	if windowID == "" || screenName == "" {
		return
	}
	e.windowToScreen[windowID] = screenName

	if !e.enabledScreens[screenName] {
		return
	}
	if !e.shouldTileWindow(windowID) {
		return
	}

	st := e.StateForScreen(screenName)
	switch e.config.InsertPosition {
	case autotile.InsertAfterFocused:
		st.InsertAfterFocused(windowID)
	case autotile.InsertAsMaster:
		st.AddWindow(windowID, -1)
		st.PromoteToMaster(windowID)
	default:
		st.AddWindow(windowID, -1)
	}
	st.DrainChanges()

	e.retileScreen(screenName)
}

// WindowClosed handles window removal, mirroring WindowOpened.
func (e *Engine) WindowClosed(windowID string) {
	screenName, ok := e.windowToScreen[windowID]
	if !ok {
		return
	}
	delete(e.windowToScreen, windowID)

	st, ok := e.screens[screenName]
	if !ok {
		return
	}
	st.RemoveWindow(windowID)
	st.DrainChanges()

	if e.enabledScreens[screenName] {
		e.retileScreen(screenName)
	}
}

// WindowFocusChanged records the focused window on its screen. Never
// triggers a retile (focus never mutates layout, per spec.md 4.5).
func (e *Engine) WindowFocusChanged(windowID string) {
	screenName, ok := e.windowToScreen[windowID]
	if !ok {
		return
	}
	st, ok := e.screens[screenName]
	if !ok {
		return
	}
	st.SetFocused(windowID)
	st.DrainChanges()
}

// ScreenGeometryChanged forces a retile of screenName if autotile is
// enabled there.
func (e *Engine) ScreenGeometryChanged(screenName string) {
	if e.enabledScreens[screenName] {
		e.retileScreen(screenName)
	}
}

// Retile force-recomputes one screen, or every enabled screen if
// screenName is empty.
func (e *Engine) Retile(screenName string) {
	if screenName == "" {
		e.retileAll()
		return
	}
	e.retileScreen(screenName)
}

func (e *Engine) retileAll() {
	for _, name := range e.EnabledScreens() {
		e.retileScreen(name)
	}
}

// retileScreen recomputes and emits geometry for one screen. Any failure
// (missing geometry, missing algorithm, bad algorithm output) aborts just
// this retile, preserving the previous last_zones, per spec.md section 7.
func (e *Engine) retileScreen(screenName string) {
	if e.screenManager == nil {
		e.logger.Warn("retile skipped: no screen manager configured", "screen", screenName)
		return
	}
	screenRect, ok := e.screenManager.ScreenRect(screenName)
	if !ok || !screenRect.Valid() {
		e.logger.Warn("retile skipped: no valid screen geometry", "screen", screenName)
		return
	}

	algorithm, ok := e.registry.Algorithm(e.algorithmID)
	if !ok {
		e.logger.Warn("retile skipped: no algorithm selected", "screen", screenName, "algorithm", e.algorithmID)
		return
	}

	st := e.StateForScreen(screenName)
	tiled := st.TiledWindows()

	zones := algorithm.CalculateZones(len(tiled), screenRect, st)
	if !validZones(zones, len(tiled), screenRect) {
		e.logger.Warn("retile aborted: algorithm postcondition violated",
			"screen", screenName, "algorithm", e.algorithmID, "window_count", len(tiled))
		return
	}

	autotile.ApplyGaps(zones, screenRect, e.config.InnerGap, e.config.OuterGap)
	st.SetLastZones(zones)

	if e.listener != nil {
		for i, id := range tiled {
			e.listener.WindowTiled(id, zones[i])
		}
		e.listener.TilingChanged(screenName)
	}
}

// validZones checks the algorithm postconditions cheaply enough to run on
// every retile: correct count, non-degenerate, within screen bounds.
// Exact-tiling/disjointness is a property enforced by construction and
// tested at the algorithm level (spec.md section 8), not re-verified here.
func validZones(zones []geometry.Rect, wantCount int, screen geometry.Rect) bool {
	if len(zones) != wantCount {
		return false
	}
	for _, z := range zones {
		if !z.Valid() || !screen.Contains(z) {
			return false
		}
	}
	return true
}
