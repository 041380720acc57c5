package x11bridge

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/autotiled/internal/geometry"
)

// Monitor is a physical display discovered via XRandR, named so the
// engine can address it as a screen name.
type Monitor struct {
	ID     int
	Name   string
	Rect   geometry.Rect
}

// ScreenManager implements engine.ScreenManager by querying XRandR CRTCs
// on demand and subtracting dock/panel struts, the way
// Connection.GetActiveMonitor does for the focused monitor — generalized
// here to every named monitor, not just the active one.
type ScreenManager struct {
	conn *Connection
}

// NewScreenManager wraps conn as an engine.ScreenManager.
func NewScreenManager(conn *Connection) *ScreenManager {
	return &ScreenManager{conn: conn}
}

// ScreenRect implements engine.ScreenManager.
func (s *ScreenManager) ScreenRect(screenName string) (geometry.Rect, bool) {
	monitors, err := s.Monitors()
	if err != nil {
		s.conn.logger.Warn("screen rect lookup failed", "screen", screenName, "error", err)
		return geometry.Rect{}, false
	}
	for _, m := range monitors {
		if m.Name == screenName {
			return m.Rect, true
		}
	}
	return geometry.Rect{}, false
}

// Monitors retrieves all active monitors using XRandR, with the screen's
// usable work area (struts subtracted) per monitor.
func (s *ScreenManager) Monitors() ([]Monitor, error) {
	conn := s.conn
	if err := randr.Init(conn.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(conn.XUtil.Conn(), conn.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(conn.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("monitor-%d", i)
		if outputInfo, err := randr.GetOutputInfo(conn.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		rect := geometry.Rect{X: int(crtcInfo.X), Y: int(crtcInfo.Y), Width: int(crtcInfo.Width), Height: int(crtcInfo.Height)}
		monitors = append(monitors, Monitor{ID: i, Name: name, Rect: applyStruts(conn, rect)})
	}

	return monitors, nil
}

// applyStruts shrinks rect by every EWMH dock strut that overlaps it,
// operating on a geometry.Rect rather than per-field monitor bounds.
func applyStruts(conn *Connection, rect geometry.Rect) geometry.Rect {
	rootGeom, err := xproto.GetGeometry(conn.XUtil.Conn(), xproto.Drawable(conn.Root)).Reply()
	if err != nil {
		return rect
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(conn.XUtil)
	if err != nil {
		return rect
	}

	var left, right, top, bottom int
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(conn.XUtil, windowID)
		if err != nil {
			continue
		}
		if !containsType(types, "_NET_WM_WINDOW_TYPE_DOCK") {
			continue
		}

		sp, err := ewmh.WmStrutPartialGet(conn.XUtil, windowID)
		if err != nil {
			if s, err := ewmh.WmStrutGet(conn.XUtil, windowID); err == nil {
				sp = &ewmh.WmStrutPartial{
					Left: s.Left, Right: s.Right, Top: s.Top, Bottom: s.Bottom,
					LeftEndY: uint(rootHeight - 1), RightEndY: uint(rootHeight - 1),
					TopEndX: uint(rootWidth - 1), BottomEndX: uint(rootWidth - 1),
				}
			} else {
				continue
			}
		}

		l, r, t, b := strutOverlap(rect, rootWidth, rootHeight, sp)
		left, right, top, bottom = maxInt(left, l), maxInt(right, r), maxInt(top, t), maxInt(bottom, b)
	}

	return shrinkByStruts(rect, left, right, top, bottom)
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// strutOverlap returns the left/right/top/bottom inset a single strut
// contributes to rect, zero where the strut band doesn't intersect it.
func strutOverlap(rect geometry.Rect, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial) (left, right, top, bottom int) {
	x1, y1, x2, y2 := rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height

	if sp.Top > 0 {
		bx1, by1, bx2, by2 := int(sp.TopStartX), 0, int(sp.TopEndX)+1, int(sp.Top)
		if h := overlapHeight(x1, y1, x2, y2, bx1, by1, bx2, by2); h > 0 {
			top = h
		}
	}
	if sp.Bottom > 0 {
		bx1, by2, bx2 := int(sp.BottomStartX), rootHeight, int(sp.BottomEndX)+1
		by1 := rootHeight - int(sp.Bottom)
		if h := overlapHeight(x1, y1, x2, y2, bx1, by1, bx2, by2); h > 0 {
			bottom = h
		}
	}
	if sp.Left > 0 {
		bx1, bx2 := 0, int(sp.Left)
		by1, by2 := int(sp.LeftStartY), int(sp.LeftEndY)+1
		if w := overlapWidth(x1, y1, x2, y2, bx1, by1, bx2, by2); w > 0 {
			left = w
		}
	}
	if sp.Right > 0 {
		bx2 := rootWidth
		bx1 := rootWidth - int(sp.Right)
		by1, by2 := int(sp.RightStartY), int(sp.RightEndY)+1
		if w := overlapWidth(x1, y1, x2, y2, bx1, by1, bx2, by2); w > 0 {
			right = w
		}
	}
	return left, right, top, bottom
}

func overlapHeight(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) int {
	x1, y1 := maxInt(ax1, bx1), maxInt(ay1, by1)
	x2, y2 := minInt(ax2, bx2), minInt(ay2, by2)
	if x2 <= x1 || y2 <= y1 {
		return 0
	}
	return y2 - y1
}

func overlapWidth(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) int {
	x1, y1 := maxInt(ax1, bx1), maxInt(ay1, by1)
	x2, y2 := minInt(ax2, bx2), minInt(ay2, by2)
	if x2 <= x1 || y2 <= y1 {
		return 0
	}
	return x2 - x1
}

func shrinkByStruts(rect geometry.Rect, left, right, top, bottom int) geometry.Rect {
	out := geometry.Rect{
		X:      rect.X + left,
		Y:      rect.Y + top,
		Width:  rect.Width - left - right,
		Height: rect.Height - top - bottom,
	}
	if out.Width < 1 {
		out.Width = 1
	}
	if out.Height < 1 {
		out.Height = 1
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
