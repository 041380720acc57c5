// Package x11bridge adapts the autotiling core to a live X11 session: it
// implements engine.ScreenManager over XRandR and engine.Listener over
// EWMH move/resize requests, and tracks window lifecycle via the X event
// stream. Grounded on internal/x11/connection.go, monitors.go, windows.go.
package x11bridge

import (
	"log/slog"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgb/xproto"
)

// Connection owns the X11 connection and root window, exactly as
// internal/x11's Connection does.
type Connection struct {
	XUtil  *xgbutil.XUtil
	Root   xproto.Window
	logger *slog.Logger
}

// NewConnection establishes a connection to the X11 server.
func NewConnection(logger *slog.Logger) (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Connection{XUtil: xu, Root: xu.RootWin(), logger: logger}, nil
}

// EventLoop runs the blocking X11 event loop; call after registering the
// WindowTracker's event handlers.
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Close disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
