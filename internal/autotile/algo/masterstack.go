package algo

import "github.com/1broseidon/autotiled/internal/geometry"

// MasterStack reproduces the classical dwm layout: up to masterCount
// master rows on the left column occupying splitRatio*width, remaining
// windows stack as rows on the right. Grounded on
// algorithms/MasterStackAlgorithm.cpp.
type MasterStack struct{ baseInfo }

// NewMasterStack constructs the master-stack algorithm.
func NewMasterStack() *MasterStack {
	return &MasterStack{baseInfo{
		id:          "master-stack",
		name:        "Master + Stack",
		description: "Large master area with stacked secondary windows",
		icon:        "view-split-left-right",
	}}
}

func (MasterStack) SupportsMasterCount() bool  { return true }
func (MasterStack) SupportsSplitRatio() bool   { return true }
func (MasterStack) DefaultSplitRatio() float64 { return 0.6 }
func (MasterStack) MasterZoneIndex() int       { return 0 }

func (a MasterStack) CalculateZones(windowCount int, screen geometry.Rect, state StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		return nil
	}
	if windowCount == 1 {
		return []geometry.Rect{screen}
	}

	masterCount := clamp(state.MasterCount(), 1, windowCount)
	stackCount := windowCount - masterCount
	splitRatio := clampF(state.SplitRatio(), 0.1, 0.9)

	var masterWidth, stackWidth int
	if stackCount == 0 {
		masterWidth = screen.Width
		stackWidth = 0
	} else {
		masterWidth = int(float64(screen.Width) * splitRatio)
		stackWidth = screen.Width - masterWidth
	}

	zones := make([]geometry.Rect, 0, windowCount)
	masterHeights := geometry.DistributeEvenly(screen.Height, masterCount)
	zones = append(zones, geometry.StackRects(screen.X, screen.Y, masterWidth, masterHeights)...)

	if stackCount > 0 {
		stackHeights := geometry.DistributeEvenly(screen.Height, stackCount)
		zones = append(zones, geometry.StackRects(screen.X+masterWidth, screen.Y, stackWidth, stackHeights)...)
	}

	return zones
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
