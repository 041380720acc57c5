package autotile

import "github.com/1broseidon/autotiled/internal/geometry"

// Gap bounds and thresholds, mirroring the reference implementation's
// constants (MinGap/MaxGap/MinZoneSizePx/GapEdgeThresholdPx).
const (
	MinGap             = 0
	MaxGap             = 50
	MinZoneSizePx      = 100
	GapEdgeThresholdPx = 2
)

func clampGap(v int) int {
	if v < MinGap {
		return MinGap
	}
	if v > MaxGap {
		return MaxGap
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ApplyGaps shrinks zones in place so that edges touching the screen
// boundary get outerGap and adjacent zones split innerGap evenly, with
// deterministic odd-pixel distribution (ceiling to left/top, floor to
// right/bottom). Grounded on TilingAlgorithm::applyGaps in the reference
// implementation.
func ApplyGaps(zones []geometry.Rect, screen geometry.Rect, innerGap, outerGap int) {
	if len(zones) == 0 {
		return
	}

	innerGap = clampGap(innerGap)
	outerGap = clampGap(outerGap)

	screenLeft := screen.Left()
	screenTop := screen.Top()
	screenRight := screen.Right()
	screenBottom := screen.Bottom()

	if len(zones) == 1 {
		z := &zones[0]
		left := z.Left() + outerGap
		top := z.Top() + outerGap
		right := z.Right() - outerGap
		bottom := z.Bottom() - outerGap

		width := right - left + 1
		if width < MinZoneSizePx {
			center := left + width/2
			left = max(screenLeft+outerGap, center-MinZoneSizePx/2)
			right = min(screenRight-outerGap, left+MinZoneSizePx-1)
		}
		height := bottom - top + 1
		if height < MinZoneSizePx {
			center := top + height/2
			top = max(screenTop+outerGap, center-MinZoneSizePx/2)
			bottom = min(screenBottom-outerGap, top+MinZoneSizePx-1)
		}

		z.X = left
		z.Y = top
		z.Width = right - left + 1
		z.Height = bottom - top + 1
		return
	}

	halfInnerFloor := innerGap / 2
	halfInnerCeil := innerGap - halfInnerFloor

	for i := range zones {
		z := &zones[i]
		origLeft, origTop, origRight, origBottom := z.Left(), z.Top(), z.Right(), z.Bottom()

		left := origLeft
		top := origTop
		right := origRight
		bottom := origBottom

		if abs(left-screenLeft) <= GapEdgeThresholdPx {
			left = screenLeft + outerGap
		} else {
			left += halfInnerCeil
		}

		if abs(top-screenTop) <= GapEdgeThresholdPx {
			top = screenTop + outerGap
		} else {
			top += halfInnerCeil
		}

		if abs(right-screenRight) <= GapEdgeThresholdPx {
			right = screenRight - outerGap
		} else {
			right -= halfInnerFloor
		}

		if abs(bottom-screenBottom) <= GapEdgeThresholdPx {
			bottom = screenBottom - outerGap
		} else {
			bottom -= halfInnerFloor
		}

		if right <= left {
			origWidth := origRight - origLeft + 1
			center := origLeft + origWidth/2
			left = max(origLeft, center-MinZoneSizePx/2)
			right = min(origRight, left+MinZoneSizePx-1)
		}
		if bottom <= top {
			origHeight := origBottom - origTop + 1
			center := origTop + origHeight/2
			top = max(origTop, center-MinZoneSizePx/2)
			bottom = min(origBottom, top+MinZoneSizePx-1)
		}

		z.X = left
		z.Y = top
		z.Width = right - left + 1
		z.Height = bottom - top + 1
	}
}
