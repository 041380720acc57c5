package algo

import "github.com/1broseidon/autotiled/internal/geometry"

// Columns lays out N equal-width strips spanning full height, the
// remainder absorbed by distributeEvenly so the union is exact. Grounded
// on algorithms/ColumnsAlgorithm.cpp.
type Columns struct{ baseInfo }

func NewColumns() *Columns {
	return &Columns{baseInfo{
		id:          "columns",
		name:        "Columns",
		description: "Equal-width vertical columns",
		icon:        "view-split-left-right",
	}}
}

func (a Columns) CalculateZones(windowCount int, screen geometry.Rect, _ StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		return nil
	}
	if windowCount == 1 {
		return []geometry.Rect{screen}
	}
	widths := geometry.DistributeEvenly(screen.Width, windowCount)
	return geometry.RowRects(screen.X, screen.Y, screen.Height, widths)
}

// Rows lays out N equal-height strips spanning full width. Grounded on
// algorithms/RowsAlgorithm.cpp.
type Rows struct{ baseInfo }

func NewRows() *Rows {
	return &Rows{baseInfo{
		id:          "rows",
		name:        "Rows",
		description: "Equal-height horizontal rows",
		icon:        "view-split-top-bottom",
	}}
}

func (a Rows) CalculateZones(windowCount int, screen geometry.Rect, _ StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		return nil
	}
	if windowCount == 1 {
		return []geometry.Rect{screen}
	}
	heights := geometry.DistributeEvenly(screen.Height, windowCount)
	return geometry.StackRects(screen.X, screen.Y, screen.Width, heights)
}
