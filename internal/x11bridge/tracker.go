package x11bridge

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
)

// EngineEvents is the subset of *engine.Engine the tracker drives;
// narrowed to an interface so it can be exercised without a live display.
type EngineEvents interface {
	WindowOpened(windowID, screenName string)
	WindowClosed(windowID string)
	WindowFocusChanged(windowID string)
}

// WindowTracker listens for X11 window lifecycle events and relays them
// to the engine, pairing each X window id with the screen it currently
// sits on, via xevent.Connect callback registration for Map/Destroy/
// PropertyNotify events.
type WindowTracker struct {
	conn    *Connection
	screens *ScreenManager
	engine  EngineEvents
	applier *Applier
	logger  *slog.Logger
}

// NewWindowTracker builds a tracker wired to eng and applier.
func NewWindowTracker(conn *Connection, screens *ScreenManager, eng EngineEvents, applier *Applier, logger *slog.Logger) *WindowTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &WindowTracker{conn: conn, screens: screens, engine: eng, applier: applier, logger: logger}
}

// Attach registers the tracker's handlers on the connection's event loop.
// Must be called before Connection.EventLoop.
func (t *WindowTracker) Attach() {
	xevent.MapNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MapNotifyEvent) {
		t.HandleWindowMapped(ev.Window)
	}).Connect(t.conn.XUtil, t.conn.Root)

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		t.HandleWindowDestroyed(ev.Window)
	}).Connect(t.conn.XUtil, t.conn.Root)

	activeWindowAtom, err := xproto.InternAtom(t.conn.XUtil.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		t.logger.Warn("failed to intern _NET_ACTIVE_WINDOW, focus tracking disabled", "error", err)
		return
	}

	xevent.PropertyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		if ev.Atom == activeWindowAtom.Atom {
			t.HandleActiveWindowChanged()
		}
	}).Connect(t.conn.XUtil, t.conn.Root)
}

// windowID renders an xproto.Window as the engine's opaque string id.
func windowID(win xproto.Window) string {
	return fmt.Sprintf("0x%x", uint32(win))
}

// HandleWindowMapped is called when a new top-level window appears. It
// filters non-tileable windows, determines the window's screen, and
// forwards WindowOpened.
func (t *WindowTracker) HandleWindowMapped(win xproto.Window) {
	if !IsTileable(t.conn.XUtil, win) {
		return
	}
	id := windowID(win)
	t.applier.Track(id, win)

	screenName := t.screenForWindow(win)
	if screenName == "" {
		t.logger.Warn("mapped window has no resolvable screen", "window", id)
		return
	}
	t.engine.WindowOpened(id, screenName)
}

// HandleWindowDestroyed is called when a tracked window disappears.
func (t *WindowTracker) HandleWindowDestroyed(win xproto.Window) {
	id := windowID(win)
	t.applier.Untrack(id)
	t.engine.WindowClosed(id)
}

// HandleActiveWindowChanged is called on _NET_ACTIVE_WINDOW property
// changes on the root window.
func (t *WindowTracker) HandleActiveWindowChanged() {
	win, err := ewmh.ActiveWindowGet(t.conn.XUtil)
	if err != nil || win == 0 {
		return
	}
	t.engine.WindowFocusChanged(windowID(win))
}

// screenForWindow locates which monitor currently contains win's center
// point, mirroring findMonitorForWindow.
func (t *WindowTracker) screenForWindow(win xproto.Window) string {
	geom, err := xproto.GetGeometry(t.conn.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return ""
	}
	translate, err := xproto.TranslateCoordinates(t.conn.XUtil.Conn(), win, t.conn.Root, 0, 0).Reply()
	if err != nil {
		return ""
	}

	centerX := int(translate.DstX) + int(geom.Width)/2
	centerY := int(translate.DstY) + int(geom.Height)/2

	monitors, err := t.screens.Monitors()
	if err != nil {
		return ""
	}
	for _, m := range monitors {
		if centerX >= m.Rect.X && centerX < m.Rect.X+m.Rect.Width &&
			centerY >= m.Rect.Y && centerY < m.Rect.Y+m.Rect.Height {
			return m.Name
		}
	}
	return ""
}
