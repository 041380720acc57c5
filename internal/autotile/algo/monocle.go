package algo

import "github.com/1broseidon/autotiled/internal/geometry"

// Monocle gives every window the identical full-screen rectangle;
// stacking/visibility is a renderer concern the algorithm does not
// decide. Grounded on algorithms/MonocleAlgorithm.cpp.
type Monocle struct{ baseInfo }

func NewMonocle() *Monocle {
	return &Monocle{baseInfo{
		id:          "monocle",
		name:        "Monocle",
		description: "Single full-screen window at a time",
		icon:        "view-fullscreen",
	}}
}

func (a Monocle) CalculateZones(windowCount int, screen geometry.Rect, _ StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		return nil
	}
	zones := make([]geometry.Rect, windowCount)
	for i := range zones {
		zones[i] = screen
	}
	return zones
}
