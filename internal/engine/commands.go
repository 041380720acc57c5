package engine

import "github.com/1broseidon/autotiled/internal/autotile"

// Manual operations and focus/ratio/count commands from spec.md section
// 4.5. Supplemented per SPEC_FULL.md section 12: the focus commands are
// fully implemented here rather than left TODO-stubbed as in the
// reference implementation, since spec.md already commits to their
// intended behavior.

// SwapWindows swaps two windows on the same screen and retiles it.
func (e *Engine) SwapWindows(a, b string) bool {
	screenA, ok := e.windowToScreen[a]
	if !ok {
		return false
	}
	screenB, ok := e.windowToScreen[b]
	if !ok || screenA != screenB {
		return false
	}
	st, ok := e.screens[screenA]
	if !ok {
		return false
	}
	ok = st.SwapWindowsByID(a, b)
	st.DrainChanges()
	if ok && e.enabledScreens[screenA] {
		e.retileScreen(screenA)
	}
	return ok
}

// PromoteToMaster moves a window to the master position and retiles.
func (e *Engine) PromoteToMaster(id string) bool {
	screenName, ok := e.windowToScreen[id]
	if !ok {
		return false
	}
	st, ok := e.screens[screenName]
	if !ok {
		return false
	}
	ok = st.PromoteToMaster(id)
	st.DrainChanges()
	if ok && e.enabledScreens[screenName] {
		e.retileScreen(screenName)
	}
	return ok
}

// DemoteFromMaster moves a window from the master area to the end of the
// stack area and retiles. For algorithms without a master concept this
// still moves the window to the end of the order, mirroring PromoteToMaster's
// "move to first position" symmetry.
func (e *Engine) DemoteFromMaster(id string) bool {
	screenName, ok := e.windowToScreen[id]
	if !ok {
		return false
	}
	st, ok := e.screens[screenName]
	if !ok {
		return false
	}
	tiled := st.TiledWindows()
	last := -1
	for i, w := range tiled {
		if w == id {
			last = i
		}
	}
	if last < 0 {
		return false
	}
	order := st.WindowOrder()
	fromIdx := -1
	for i, w := range order {
		if w == id {
			fromIdx = i
			break
		}
	}
	if fromIdx < 0 {
		return false
	}
	ok = st.MoveWindow(fromIdx, len(order)-1)
	st.DrainChanges()
	if ok && e.enabledScreens[screenName] {
		e.retileScreen(screenName)
	}
	return ok
}

func (e *Engine) tiledWindowsForFocusedScreen() (tiled []string, screenName string) {
	for name, st := range e.screens {
		if st.Focused() == "" {
			continue
		}
		if !e.enabledScreens[name] {
			continue
		}
		return st.TiledWindows(), name
	}
	return nil, ""
}

func (e *Engine) requestFocus(id string) {
	if e.listener != nil {
		e.listener.FocusWindowRequested(id)
	}
}

// FocusNext cycles forward through the focused screen's tiled windows.
func (e *Engine) FocusNext() {
	tiled, screenName := e.tiledWindowsForFocusedScreen()
	if len(tiled) == 0 {
		return
	}
	st := e.screens[screenName]
	cur := indexOfString(tiled, st.Focused())
	next := (cur + 1) % len(tiled)
	e.requestFocus(tiled[next])
}

// FocusPrevious cycles backward through the focused screen's tiled windows.
func (e *Engine) FocusPrevious() {
	tiled, screenName := e.tiledWindowsForFocusedScreen()
	if len(tiled) == 0 {
		return
	}
	st := e.screens[screenName]
	cur := indexOfString(tiled, st.Focused())
	prev := (cur - 1 + len(tiled)) % len(tiled)
	e.requestFocus(tiled[prev])
}

// FocusMaster focuses the first (master) tiled window on the focused screen.
func (e *Engine) FocusMaster() {
	tiled, _ := e.tiledWindowsForFocusedScreen()
	if len(tiled) == 0 {
		return
	}
	e.requestFocus(tiled[0])
}

func indexOfString(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// applyToAllStates runs op against every per-screen state, then retiles
// every enabled screen (ratio/count adjustments are global, per spec.md
// 4.5: "design decision: global ratio, not per-screen-per-algorithm").
func (e *Engine) applyToAllStates(op func(*autotile.State)) {
	for _, st := range e.screens {
		op(st)
		st.DrainChanges()
	}
	e.retileAll()
}

// IncreaseMasterRatio raises the split ratio on every tracked screen by delta.
func (e *Engine) IncreaseMasterRatio(delta float64) {
	e.config.SplitRatio = clampRatio(e.config.SplitRatio + delta)
	e.applyToAllStates(func(st *autotile.State) { st.IncreaseSplitRatio(delta) })
}

// DecreaseMasterRatio lowers the split ratio on every tracked screen by delta.
func (e *Engine) DecreaseMasterRatio(delta float64) {
	e.config.SplitRatio = clampRatio(e.config.SplitRatio - delta)
	e.applyToAllStates(func(st *autotile.State) { st.DecreaseSplitRatio(delta) })
}

// IncreaseMasterCount raises the master count on every tracked screen by one.
func (e *Engine) IncreaseMasterCount() {
	e.config.MasterCount = clampCount(e.config.MasterCount + 1)
	e.applyToAllStates(func(st *autotile.State) { st.SetMasterCount(st.MasterCount() + 1) })
}

// DecreaseMasterCount lowers the master count on every tracked screen by one.
func (e *Engine) DecreaseMasterCount() {
	e.config.MasterCount = clampCount(e.config.MasterCount - 1)
	e.applyToAllStates(func(st *autotile.State) { st.SetMasterCount(st.MasterCount() - 1) })
}

func clampRatio(r float64) float64 {
	if r < 0.1 {
		return 0.1
	}
	if r > 0.9 {
		return 0.9
	}
	return r
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}
