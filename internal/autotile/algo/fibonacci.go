package algo

import "github.com/1broseidon/autotiled/internal/geometry"

type splitDirection int

const (
	dirRight splitDirection = iota
	dirDown
	dirLeft
	dirUp
)

func (d splitDirection) next() splitDirection {
	switch d {
	case dirRight:
		return dirDown
	case dirDown:
		return dirLeft
	case dirLeft:
		return dirUp
	default:
		return dirRight
	}
}

// Fibonacci peels off a shrinking region along a rotating direction,
// producing a monotonically-shrinking spiral. Only the first split uses
// the user split_ratio; every later split uses 0.5 (DESIGN.md decision 5
// — spec.md 4.1.6 normalizes away from the reference's "splitRatio for
// every split"). Grounded on algorithms/FibonacciAlgorithm.cpp.
type Fibonacci struct{ baseInfo }

func NewFibonacci() *Fibonacci {
	return &Fibonacci{baseInfo{
		id:          "fibonacci",
		name:        "Fibonacci",
		description: "Spiral subdivision inspired by golden ratio",
		icon:        "shape-spiral",
	}}
}

func (Fibonacci) SupportsSplitRatio() bool   { return true }
func (Fibonacci) DefaultSplitRatio() float64 { return 0.618 }

func (a Fibonacci) CalculateZones(windowCount int, screen geometry.Rect, state StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		return nil
	}
	if windowCount == 1 {
		return []geometry.Rect{screen}
	}

	firstRatio := clampF(state.SplitRatio(), 0.1, 0.9)

	zones := make([]geometry.Rect, 0, windowCount)
	remaining := screen
	direction := dirRight

	for i := 0; i < windowCount; i++ {
		if i == windowCount-1 {
			zones = append(zones, remaining)
			break
		}

		ratio := 0.5
		if i == 0 {
			ratio = firstRatio
		}

		var windowZone geometry.Rect
		switch direction {
		case dirRight:
			splitX := remaining.X + int(float64(remaining.Width)*ratio)
			windowZone = geometry.Rect{X: remaining.X, Y: remaining.Y, Width: splitX - remaining.X, Height: remaining.Height}
			remaining = geometry.Rect{X: splitX, Y: remaining.Y, Width: remaining.Right() - splitX + 1, Height: remaining.Height}
		case dirDown:
			splitY := remaining.Y + int(float64(remaining.Height)*ratio)
			windowZone = geometry.Rect{X: remaining.X, Y: remaining.Y, Width: remaining.Width, Height: splitY - remaining.Y}
			remaining = geometry.Rect{X: remaining.X, Y: splitY, Width: remaining.Width, Height: remaining.Bottom() - splitY + 1}
		case dirLeft:
			splitX := remaining.X + int(float64(remaining.Width)*(1.0-ratio))
			windowZone = geometry.Rect{X: splitX, Y: remaining.Y, Width: remaining.Right() - splitX + 1, Height: remaining.Height}
			remaining = geometry.Rect{X: remaining.X, Y: remaining.Y, Width: splitX - remaining.X, Height: remaining.Height}
		case dirUp:
			splitY := remaining.Y + int(float64(remaining.Height)*(1.0-ratio))
			windowZone = geometry.Rect{X: remaining.X, Y: splitY, Width: remaining.Width, Height: remaining.Bottom() - splitY + 1}
			remaining = geometry.Rect{X: remaining.X, Y: remaining.Y, Width: remaining.Width, Height: splitY - remaining.Y}
		}

		zones = append(zones, windowZone)
		direction = direction.next()
	}

	return zones
}
