package algo

import "github.com/1broseidon/autotiled/internal/geometry"

// ThreeColumn centers a master column and alternates remaining windows
// left/right. On an odd stack count the left column gets the extra
// window (DESIGN.md decision 3). Grounded on
// algorithms/ThreeColumnAlgorithm.cpp.
type ThreeColumn struct{ baseInfo }

func NewThreeColumn() *ThreeColumn {
	return &ThreeColumn{baseInfo{
		id:          "three-column",
		name:        "Three Column",
		description: "Center master with side columns",
		icon:        "view-column-three",
	}}
}

func (ThreeColumn) SupportsSplitRatio() bool   { return true }
func (ThreeColumn) DefaultSplitRatio() float64 { return 0.5 }
func (ThreeColumn) MasterZoneIndex() int       { return 0 }

func (a ThreeColumn) CalculateZones(windowCount int, screen geometry.Rect, state StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		return nil
	}
	if windowCount == 1 {
		return []geometry.Rect{screen}
	}
	if windowCount == 2 {
		halfWidth := screen.Width / 2
		return []geometry.Rect{
			{X: screen.X, Y: screen.Y, Width: halfWidth, Height: screen.Height},
			{X: screen.X + halfWidth, Y: screen.Y, Width: screen.Width - halfWidth, Height: screen.Height},
		}
	}

	centerRatio := clampF(state.SplitRatio(), 0.1, 0.9)
	sideRatio := (1.0 - centerRatio) / 2.0

	leftWidth := int(float64(screen.Width) * sideRatio)
	centerWidth := int(float64(screen.Width) * centerRatio)
	rightWidth := screen.Width - leftWidth - centerWidth

	leftX := screen.X
	centerX := screen.X + leftWidth
	rightX := screen.X + leftWidth + centerWidth

	stackCount := windowCount - 1
	leftCount := (stackCount + 1) / 2
	rightCount := stackCount - leftCount

	var leftHeights, rightHeights []int
	if leftCount > 0 {
		leftHeights = geometry.DistributeEvenly(screen.Height, leftCount)
	}
	if rightCount > 0 {
		rightHeights = geometry.DistributeEvenly(screen.Height, rightCount)
	}

	zones := make([]geometry.Rect, 0, windowCount)
	zones = append(zones, geometry.Rect{X: centerX, Y: screen.Y, Width: centerWidth, Height: screen.Height})

	leftIdx, rightIdx := 0, 0
	leftY, rightY := screen.Y, screen.Y

	for i := 0; i < stackCount; i++ {
		switch {
		case i%2 == 0 && leftIdx < leftCount:
			zones = append(zones, geometry.Rect{X: leftX, Y: leftY, Width: leftWidth, Height: leftHeights[leftIdx]})
			leftY += leftHeights[leftIdx]
			leftIdx++
		case rightIdx < rightCount:
			zones = append(zones, geometry.Rect{X: rightX, Y: rightY, Width: rightWidth, Height: rightHeights[rightIdx]})
			rightY += rightHeights[rightIdx]
			rightIdx++
		case leftIdx < leftCount:
			zones = append(zones, geometry.Rect{X: leftX, Y: leftY, Width: leftWidth, Height: leftHeights[leftIdx]})
			leftY += leftHeights[leftIdx]
			leftIdx++
		}
	}

	return zones
}
