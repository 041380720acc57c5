package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/autotiled/internal/autotile"
	"github.com/1broseidon/autotiled/internal/daemonconfig"
	"github.com/1broseidon/autotiled/internal/engine"
	"github.com/1broseidon/autotiled/internal/mcpserver"
	"github.com/1broseidon/autotiled/internal/x11bridge"
)

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/autotiled/config.yaml)")
	mcpStdio := fs.Bool("mcp", false, "Also serve the MCP tool surface on stdio")
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
	logger.Info("configuration loaded", "source", result.Source.Kind, "algorithm", cfg.Autotile.AlgorithmID)

	conn, err := x11bridge.NewConnection(logger)
	if err != nil {
		logger.Error("failed to connect to X11", "error", err)
		return 1
	}
	defer conn.Close()

	screens := x11bridge.NewScreenManager(conn)
	applier := x11bridge.NewApplier(conn, logger)

	eng := engine.New(engine.Options{
		ScreenManager: screens,
		Listener:      applier,
		Logger:        logger,
	})
	eng.SetConfig(cfg.Autotile)

	stateDir, err := cfg.ResolveStateDir()
	if err != nil {
		logger.Warn("could not resolve state directory, persistence disabled", "error", err)
	} else {
		restorePersistedStates(eng, stateDir, logger)
	}

	tracker := x11bridge.NewWindowTracker(conn, screens, eng, applier, logger)
	tracker.Attach()

	eng.SetAutotileScreens(cfg.EnabledScreens())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		if stateDir != "" {
			persistAllStates(eng, stateDir, logger)
		}
		cancel()
		conn.Close()
	}()

	if *mcpStdio {
		srv := mcpserver.NewServer(eng, logger)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Warn("mcp server exited", "error", err)
			}
		}()
	}

	logger.Info("autotiled daemon started")
	conn.EventLoop()
	return 0
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// restorePersistedStates loads any TilingState files left over from a prior
// run so a daemon restart doesn't reshuffle window order, per spec.md
// section 6.2's persistence rule.
func restorePersistedStates(eng *engine.Engine, stateDir string, logger *slog.Logger) {
	states, err := autotile.LoadAllStates(stateDir)
	if err != nil {
		logger.Warn("failed to load persisted tiling state", "error", err)
		return
	}
	for name, st := range states {
		live := eng.StateForScreen(name)
		for _, id := range st.WindowOrder() {
			live.AddWindow(id, -1)
			if st.IsFloating(id) {
				live.SetFloating(id, true)
			}
		}
		live.SetMasterCount(st.MasterCount())
		live.SetSplitRatio(st.SplitRatio())
		live.DrainChanges()
	}
}

func persistAllStates(eng *engine.Engine, stateDir string, logger *slog.Logger) {
	for _, name := range eng.EnabledScreens() {
		st := eng.StateForScreen(name)
		if err := autotile.SaveState(stateDir, st); err != nil {
			logger.Warn("failed to persist tiling state", "screen", name, "error", err)
		}
	}
}
