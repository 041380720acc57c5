package autotile

import (
	"testing"

	"github.com/1broseidon/autotiled/internal/geometry"
)

func TestApplyGapsSingleZone(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	zones := []geometry.Rect{screen}
	ApplyGaps(zones, screen, 10, 10)

	want := geometry.Rect{X: 10, Y: 10, Width: 1900, Height: 1060}
	if zones[0] != want {
		t.Fatalf("got %+v, want %+v", zones[0], want)
	}
}

func TestApplyGapsSingleZoneMinimumSize(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	// A tiny zone near the corner should re-center to the 100px minimum.
	zones := []geometry.Rect{{X: 0, Y: 0, Width: 20, Height: 20}}
	ApplyGaps(zones, screen, 10, 10)

	if zones[0].Width < MinZoneSizePx || zones[0].Height < MinZoneSizePx {
		t.Fatalf("zone below minimum size: %+v", zones[0])
	}
}

func TestApplyGapsColumnsExactGap(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	widths := geometry.DistributeEvenly(1920, 4)
	zones := geometry.RowRects(0, 0, 1080, widths)
	ApplyGaps(zones, screen, 10, 10)

	if zones[0].Left() != screen.Left()+10 {
		t.Fatalf("left column outer gap wrong: %+v", zones[0])
	}
	last := zones[len(zones)-1]
	if last.Right() != screen.Right()-10 {
		t.Fatalf("right column outer gap wrong: %+v", last)
	}

	for i := 0; i < len(zones)-1; i++ {
		gap := zones[i+1].Left() - zones[i].Right() - 1
		if gap != 10 {
			t.Fatalf("inner gap between zone %d and %d = %d, want 10", i, i+1, gap)
		}
	}
}

func TestApplyGapsClampsGapValues(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	zones := []geometry.Rect{screen}
	ApplyGaps(zones, screen, 1000, -5)

	// innerGap irrelevant for a single zone; outerGap clamps to 0.
	if zones[0].X != 0 || zones[0].Y != 0 {
		t.Fatalf("expected outer gap clamped to 0, got %+v", zones[0])
	}
}

func TestApplyGapsNoZones(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	var zones []geometry.Rect
	ApplyGaps(zones, screen, 10, 10) // must not panic
}
