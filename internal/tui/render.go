package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/autotiled/internal/geometry"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	tabBarStyle = lipgloss.NewStyle().MarginBottom(1)

	tabGap = lipgloss.NewStyle().Background(lipgloss.Color("235")).SetString(" ")

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	masterLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// renderStatusBar summarizes the active screen's algorithm, master count,
// split ratio, and focused window.
func renderStatusBar(screen, algorithmID string, snap ScreenSnapshot, width int) string {
	parts := []string{fmt.Sprintf("screen:%s", screen), fmt.Sprintf("algorithm:%s", algorithmID)}
	parts = append(parts, fmt.Sprintf("master:%d", snap.MasterCount))
	parts = append(parts, fmt.Sprintf("ratio:%.2f", snap.SplitRatio))
	if snap.Focused != "" {
		parts = append(parts, "focused:"+snap.Focused)
	}
	return statusBarStyle.Width(width).Render(strings.Join(parts, "  "))
}

// renderTabBar renders one tab per screen, highlighting the active one.
func renderTabBar(screens []string, active int, width int) string {
	if len(screens) == 0 {
		return tabBarStyle.Width(width).Render(inactiveTabStyle.Render("no screens"))
	}
	tabs := make([]string, len(screens))
	for i, name := range screens {
		if i == active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(tabs, tabGap.Render())...)
	return tabBarStyle.Width(width).Render(row)
}

func intersperse(items []string, sep string) []string {
	if len(items) <= 1 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

// renderHelpBar renders the bottom keybinding reference.
func renderHelpBar(width int) string {
	help := "tab/h/l: screen  j/k: focus  m: promote  +/-: ratio  i/d: master count  r: retile  q: quit"
	return helpBarStyle.Width(width).Render(help)
}

// renderFloorPlan draws the screen's last computed zones as an ASCII floor
// plan, scaling screen-space rects into a width×height character canvas.
// Grounded on renderASCIIPreview/drawTile/drawBorder, generalized from a
// layout-config preview to the engine's live zone output and adding
// master/focused highlighting the config preview has no concept of.
func renderFloorPlan(snap ScreenSnapshot, width, height int) string {
	if width < 5 || height < 3 {
		return emptyCanvas(width, height)
	}
	canvas := newCanvas(width, height)

	screen := snap.ScreenRect
	if !screen.Valid() {
		screen = geometry.Rect{Width: 1, Height: 1}
		for _, z := range snap.LastZones {
			screen = boundingBox(screen, z)
		}
	}
	if screen.Width == 0 || screen.Height == 0 {
		drawBorder(canvas, width, height)
		return canvasToString(canvas)
	}

	for i, zone := range snap.LastZones {
		drawZone(canvas, zone, screen, width, height, fmt.Sprintf("%d", i+1))
	}

	drawBorder(canvas, width, height)
	return canvasToString(canvas) + "\n" + renderLegend(snap)
}

// renderLegend labels master and focused windows by their zone number,
// since the plain-rune canvas cannot carry per-cell color.
func renderLegend(snap ScreenSnapshot) string {
	tiled := tiledOrder(snap)
	var masters []string
	for i, id := range tiled {
		if i < snap.MasterCount {
			masters = append(masters, fmt.Sprintf("%d:%s", i+1, id))
		}
	}
	focusedIdx := -1
	for i, id := range tiled {
		if id == snap.Focused {
			focusedIdx = i
		}
	}

	parts := make([]string, 0, 2)
	if len(masters) > 0 {
		parts = append(parts, masterLabelStyle.Render("master: "+strings.Join(masters, ", ")))
	}
	if focusedIdx >= 0 {
		parts = append(parts, focusedLabelStyle.Render(fmt.Sprintf("focused: %d:%s", focusedIdx+1, snap.Focused)))
	}
	return strings.Join(parts, "  ")
}

// tiledOrder returns WindowOrder filtered by ¬floating, matching the order
// the engine assigns zones in.
func tiledOrder(snap ScreenSnapshot) []string {
	out := make([]string, 0, len(snap.WindowOrder))
	for _, id := range snap.WindowOrder {
		if !snap.Floating[id] {
			out = append(out, id)
		}
	}
	return out
}

func boundingBox(acc, z geometry.Rect) geometry.Rect {
	if z.Right() > acc.Width-1 {
		acc.Width = z.Right() + 1
	}
	if z.Bottom() > acc.Height-1 {
		acc.Height = z.Bottom() + 1
	}
	return acc
}

func newCanvas(width, height int) [][]rune {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	return canvas
}

func canvasToString(canvas [][]rune) string {
	lines := make([]string, len(canvas))
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func emptyCanvas(width, height int) string {
	if height < 1 {
		height = 1
	}
	if width < 0 {
		width = 0
	}
	return strings.Join(make([]string, height), "\n")
}

func drawZone(canvas [][]rune, zone, screen geometry.Rect, canvasW, canvasH int, label string) {
	x1 := zone.X * canvasW / screen.Width
	y1 := zone.Y * canvasH / screen.Height
	x2 := (zone.X + zone.Width) * canvasW / screen.Width
	y2 := (zone.Y + zone.Height) * canvasH / screen.Height

	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		setCell(canvas, x, y1, '─', canvasW, canvasH)
		setCell(canvas, x, y2, '─', canvasW, canvasH)
	}
	for y := y1; y <= y2; y++ {
		setCell(canvas, x1, y, '│', canvasW, canvasH)
		setCell(canvas, x2, y, '│', canvasW, canvasH)
	}
	setCell(canvas, x1, y1, '┌', canvasW, canvasH)
	setCell(canvas, x2, y1, '┐', canvasW, canvasH)
	setCell(canvas, x1, y2, '└', canvasW, canvasH)
	setCell(canvas, x2, y2, '┘', canvasW, canvasH)

	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	startX := centerX - len(label)/2
	for i, r := range label {
		setCell(canvas, startX+i, centerY, r, canvasW, canvasH)
	}
}

func setCell(canvas [][]rune, x, y int, r rune, width, height int) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	canvas[y][x] = r
}

func drawBorder(canvas [][]rune, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}
