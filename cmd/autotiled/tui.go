package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/1broseidon/autotiled/internal/engine"
	"github.com/1broseidon/autotiled/internal/tui"
	"github.com/1broseidon/autotiled/internal/x11bridge"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
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

	viewer := newEngineViewer(eng, screens)
	if err := tui.Run(viewer, viewer); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
