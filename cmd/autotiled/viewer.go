package main

import (
	"github.com/1broseidon/autotiled/internal/engine"
	"github.com/1broseidon/autotiled/internal/tui"
	"github.com/1broseidon/autotiled/internal/x11bridge"
)

// engineViewer adapts *engine.Engine and the live screen manager to
// tui.StateProvider. Engine's focus/ratio/master-count/retile methods
// already satisfy tui.EngineCommands by embedding.
type engineViewer struct {
	*engine.Engine
	screens *x11bridge.ScreenManager
}

func newEngineViewer(eng *engine.Engine, screens *x11bridge.ScreenManager) *engineViewer {
	return &engineViewer{Engine: eng, screens: screens}
}

func (v *engineViewer) Screens() []string {
	monitors, err := v.screens.Monitors()
	if err != nil {
		return v.EnabledScreens()
	}
	names := make([]string, len(monitors))
	for i, m := range monitors {
		names[i] = m.Name
	}
	return names
}

func (v *engineViewer) Snapshot(screenName string) tui.ScreenSnapshot {
	st := v.StateForScreen(screenName)
	rect, _ := v.screens.ScreenRect(screenName)

	floating := make(map[string]bool)
	for _, id := range st.WindowOrder() {
		if st.IsFloating(id) {
			floating[id] = true
		}
	}

	return tui.ScreenSnapshot{
		WindowOrder: st.WindowOrder(),
		Floating:    floating,
		Focused:     st.Focused(),
		MasterCount: st.MasterCount(),
		SplitRatio:  st.SplitRatio(),
		LastZones:   st.LastZones(),
		ScreenRect:  rect,
	}
}
