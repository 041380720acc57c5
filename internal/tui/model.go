// Package tui is a live bubbletea viewer of the autotile engine's per-screen
// tiling state: window order, master/stack split, and the last computed
// zones drawn as an ASCII floor plan. Grounded on internal/tui/app.go's
// model/Init/Update/View shape and internal/tui/tabs.go's status/tab/help
// bar rendering, generalized from a config editor to a read-mostly state
// viewer (command keys mutate the engine directly, there is no separate
// save/apply step).
package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/autotiled/internal/geometry"
)

// ScreenSnapshot is a point-in-time view of one screen's tiling state.
type ScreenSnapshot struct {
	WindowOrder []string
	Floating    map[string]bool
	Focused     string
	MasterCount int
	SplitRatio  float64
	LastZones   []geometry.Rect
	ScreenRect  geometry.Rect
}

// StateProvider is the subset of the engine the viewer reads. Narrowed to
// an interface so the model can be driven by a fake in tests.
type StateProvider interface {
	Screens() []string
	AlgorithmID() string
	Snapshot(screenName string) ScreenSnapshot
}

// EngineCommands is the subset of engine mutators reachable from the
// viewer's keybindings.
type EngineCommands interface {
	PromoteToMaster(windowID string) bool
	FocusNext()
	FocusPrevious()
	IncreaseMasterRatio(delta float64)
	DecreaseMasterRatio(delta float64)
	IncreaseMasterCount()
	DecreaseMasterCount()
	Retile(screenName string)
}

const refreshInterval = 500 * time.Millisecond

type tickMsg time.Time

type model struct {
	provider StateProvider
	commands EngineCommands

	screens      []string
	activeScreen int
	snapshot     ScreenSnapshot
	algorithmID  string

	width, height int
}

// New builds the viewer's root model.
func New(provider StateProvider, commands EngineCommands) tea.Model {
	m := model{provider: provider, commands: commands}
	m.refresh()
	return m
}

// Run starts the bubbletea program, blocking until the user quits.
func Run(provider StateProvider, commands EngineCommands) error {
	p := tea.NewProgram(New(provider, commands), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) refresh() {
	m.screens = append([]string(nil), m.provider.Screens()...)
	sort.Strings(m.screens)
	m.algorithmID = m.provider.AlgorithmID()
	if m.activeScreen >= len(m.screens) {
		m.activeScreen = 0
	}
	if len(m.screens) > 0 {
		m.snapshot = m.provider.Snapshot(m.screens[m.activeScreen])
	} else {
		m.snapshot = ScreenSnapshot{}
	}
}

func (m model) currentScreen() string {
	if len(m.screens) == 0 {
		return ""
	}
	return m.screens[m.activeScreen]
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "right", "l":
		if len(m.screens) > 0 {
			m.activeScreen = (m.activeScreen + 1) % len(m.screens)
			m.refresh()
		}
		return m, nil

	case "shift+tab", "left", "h":
		if len(m.screens) > 0 {
			m.activeScreen = (m.activeScreen - 1 + len(m.screens)) % len(m.screens)
			m.refresh()
		}
		return m, nil

	case "j":
		if m.commands != nil {
			m.commands.FocusNext()
			m.refresh()
		}
		return m, nil

	case "k":
		if m.commands != nil {
			m.commands.FocusPrevious()
			m.refresh()
		}
		return m, nil

	case "m":
		if m.commands != nil && m.snapshot.Focused != "" {
			m.commands.PromoteToMaster(m.snapshot.Focused)
			m.refresh()
		}
		return m, nil

	case "+", "=":
		if m.commands != nil {
			m.commands.IncreaseMasterRatio(0.05)
			m.refresh()
		}
		return m, nil

	case "-", "_":
		if m.commands != nil {
			m.commands.DecreaseMasterRatio(0.05)
			m.refresh()
		}
		return m, nil

	case "i":
		if m.commands != nil {
			m.commands.IncreaseMasterCount()
			m.refresh()
		}
		return m, nil

	case "d":
		if m.commands != nil {
			m.commands.DecreaseMasterCount()
			m.refresh()
		}
		return m, nil

	case "r":
		if m.commands != nil {
			m.commands.Retile(m.currentScreen())
			m.refresh()
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := renderStatusBar(m.currentScreen(), m.algorithmID, m.snapshot, m.width)
	tabBar := renderTabBar(m.screens, m.activeScreen, m.width)
	helpBar := renderHelpBar(m.width)

	usedHeight := lipgloss.Height(statusBar) + lipgloss.Height(tabBar) + lipgloss.Height(helpBar)
	contentHeight := m.height - usedHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	content := renderFloorPlan(m.snapshot, m.width, contentHeight)

	return lipgloss.JoinVertical(lipgloss.Left, statusBar, tabBar, content, helpBar)
}
