package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/autotiled/internal/engine"
	"github.com/1broseidon/autotiled/internal/mcpserver"
	"github.com/1broseidon/autotiled/internal/x11bridge"
)

func runMCP(args []string) int {
	if len(args) == 0 || args[0] != "serve" {
		fmt.Fprintln(os.Stderr, "Usage: autotiled mcp serve")
		return 2
	}
	return runMCPServe(args[1:])
}

// runMCPServe connects to X11 and serves the MCP tool surface on stdio,
// standalone (without the blocking daemon event loop driving it from a
// separate process — see runDaemon's --mcp flag for that combination).
func runMCPServe(args []string) int {
	fs := flag.NewFlagSet("mcp serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/autotiled/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	result, err := loadDaemonConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		return 1
	}
	cfg := result.Config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	conn, err := x11bridge.NewConnection(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to X11:", err)
		return 1
	}
	defer conn.Close()

	screens := x11bridge.NewScreenManager(conn)
	applier := x11bridge.NewApplier(conn, logger)
	eng := engine.New(engine.Options{ScreenManager: screens, Listener: applier, Logger: logger})
	eng.SetConfig(cfg.Autotile)
	eng.SetAutotileScreens(cfg.EnabledScreens())

	tracker := x11bridge.NewWindowTracker(conn, screens, eng, applier, logger)
	tracker.Attach()
	go conn.EventLoop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	srv := mcpserver.NewServer(eng, logger)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
