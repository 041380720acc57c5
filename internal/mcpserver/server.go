// Package mcpserver exposes the autotiling engine as an MCP tool surface,
// letting an assistant inspect and drive layout the same way a hotkey or
// the TUI would. Grounded on internal/mcp/server.go's Server/NewServer/Run
// shape and AddTool registration idiom; the tmux-agent-orchestration tool
// set is swapped for engine introspection/control tools.
package mcpserver

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/autotiled/internal/autotile"
)

const (
	ServerName    = "autotiled"
	ServerVersion = "0.1.0"
)

// Engine is the subset of *engine.Engine the MCP server drives, narrowed to
// an interface so handlers can be exercised with a fake in tests.
type Engine interface {
	Retile(screenName string)
	EnabledScreens() []string
	SetAutotileScreens(screens map[string]bool)
	SetAlgorithm(algorithmID string)
	AlgorithmID() string
	PromoteToMaster(id string) bool
	SwapWindows(a, b string) bool
	IncreaseMasterRatio(delta float64)
	DecreaseMasterRatio(delta float64)
	IncreaseMasterCount()
	DecreaseMasterCount()
	Config() autotile.Config
	StateForScreen(screenName string) *autotile.State
}

// Server is the MCP server for autotile engine control.
type Server struct {
	mcpServer *mcpsdk.Server
	engine    Engine
	logger    *slog.Logger
}

// NewServer builds an MCP server wrapping eng. logger may be nil.
func NewServer(eng Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: eng, logger: logger}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "retile",
		Description: "Force the autotile engine to recompute and apply window geometry for one screen, or every enabled screen if none is given.",
	}, s.handleRetile)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_algorithm",
		Description: "Switch the active tiling algorithm (e.g. master-stack, columns, rows, monocle, three-column, fibonacci, bsp) and retile every enabled screen.",
	}, s.handleSetAlgorithm)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_autotile_screens",
		Description: "Replace the set of screens autotile is enabled on. Newly enabled screens are retiled immediately.",
	}, s.handleSetAutotileScreens)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "promote_to_master",
		Description: "Move a window into the master position on its screen and retile.",
	}, s.handlePromoteToMaster)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "swap_windows",
		Description: "Swap the positions of two windows on the same screen and retile.",
	}, s.handleSwapWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "adjust_master_ratio",
		Description: "Add delta (positive or negative) to the master/stack split ratio across every tracked screen.",
	}, s.handleAdjustRatio)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "adjust_master_count",
		Description: "Adjust the master window count by +1 or -1 across every tracked screen.",
	}, s.handleAdjustMasterCount)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_screen_state",
		Description: "Return the current tiling state for one screen: window order, floating windows, focused window, master count, and split ratio.",
	}, s.handleGetScreenState)
}

