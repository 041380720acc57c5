package x11bridge

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/autotiled/internal/geometry"
)

// windowExcludedTypes mirrors IsNormalWindow's rejection list: windows of
// these EWMH types are never candidates for tiling.
var windowExcludedTypes = map[string]bool{
	"_NET_WM_WINDOW_TYPE_DESKTOP":      true,
	"_NET_WM_WINDOW_TYPE_DOCK":        true,
	"_NET_WM_WINDOW_TYPE_SPLASH":      true,
	"_NET_WM_WINDOW_TYPE_NOTIFICATION": true,
}

// Applier implements engine.Listener by issuing EWMH move/resize
// requests, grounded on Connection.MoveResizeWindow's "EWMH first, raw
// XConfigureWindow fallback" approach.
type Applier struct {
	conn    *Connection
	byID    map[string]xproto.Window
	logger  *slog.Logger
}

// NewApplier builds an Applier backed by conn. byID maps the engine's
// opaque window ids (stringified X window ids, in this bridge) back to
// the xproto.Window the EWMH calls need.
func NewApplier(conn *Connection, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{conn: conn, byID: make(map[string]xproto.Window), logger: logger}
}

// Track registers the X window id behind a given engine window id string.
func (a *Applier) Track(windowID string, win xproto.Window) {
	a.byID[windowID] = win
}

// Untrack forgets a window id, called on WindowClosed.
func (a *Applier) Untrack(windowID string) {
	delete(a.byID, windowID)
}

func (a *Applier) EnabledChanged(screens []string) {
	a.logger.Debug("autotile enabled screens changed", "screens", screens)
}

func (a *Applier) AlgorithmChanged(algorithmID string) {
	a.logger.Debug("autotile algorithm changed", "algorithm", algorithmID)
}

func (a *Applier) TilingChanged(screenName string) {
	a.logger.Debug("screen retiled", "screen", screenName)
}

// WindowTiled moves and resizes the X window behind windowID to rect.
func (a *Applier) WindowTiled(windowID string, rect geometry.Rect) {
	win, ok := a.byID[windowID]
	if !ok {
		a.logger.Warn("window_tiled for untracked window", "window", windowID)
		return
	}
	a.moveResize(win, rect)
}

// FocusWindowRequested asks the window manager to focus the window
// behind windowID via EWMH's active-window request.
func (a *Applier) FocusWindowRequested(windowID string) {
	win, ok := a.byID[windowID]
	if !ok {
		return
	}
	if err := ewmh.ActiveWindowReq(a.conn.XUtil, win); err != nil {
		a.logger.Warn("focus request failed", "window", windowID, "error", err)
	}
}

func (a *Applier) moveResize(win xproto.Window, rect geometry.Rect) {
	a.unmaximize(win)

	if err := ewmh.MoveresizeWindow(a.conn.XUtil, win, rect.X, rect.Y, rect.Width, rect.Height); err != nil {
		xwindow.New(a.conn.XUtil, win).MoveResize(rect.X, rect.Y, rect.Width, rect.Height)
	}
}

func (a *Applier) unmaximize(win xproto.Window) {
	states, err := ewmh.WmStateGet(a.conn.XUtil, win)
	if err != nil {
		return
	}
	hasMaxH, hasMaxV := containsType(states, "_NET_WM_STATE_MAXIMIZED_HORZ"), containsType(states, "_NET_WM_STATE_MAXIMIZED_VERT")
	if hasMaxH {
		ewmh.WmStateReq(a.conn.XUtil, win, 0, "_NET_WM_STATE_MAXIMIZED_HORZ")
	}
	if hasMaxV {
		ewmh.WmStateReq(a.conn.XUtil, win, 0, "_NET_WM_STATE_MAXIMIZED_VERT")
	}
}

// IsTileable reports whether win should participate in autotiling, per
// IsNormalWindow's type-based filter.
func IsTileable(xu *xgbutil.XUtil, win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(xu, win)
	if err != nil {
		return true
	}
	for _, t := range types {
		if windowExcludedTypes[t] {
			return false
		}
	}
	return true
}
