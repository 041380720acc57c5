package x11bridge

import (
	"testing"

	"github.com/1broseidon/autotiled/internal/geometry"
)

func TestShrinkByStruts(t *testing.T) {
	rect := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	got := shrinkByStruts(rect, 0, 0, 27, 0)
	want := geometry.Rect{X: 0, Y: 27, Width: 1920, Height: 1053}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestShrinkByStrutsClampsToMinimumSize(t *testing.T) {
	rect := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	got := shrinkByStruts(rect, 20, 0, 0, 0)
	if got.Width < 1 {
		t.Fatalf("expected width clamped to >= 1, got %d", got.Width)
	}
}

func TestOverlapHeightAndWidth(t *testing.T) {
	if h := overlapHeight(0, 0, 1920, 1080, 0, 0, 1920, 27); h != 27 {
		t.Fatalf("overlapHeight = %d, want 27", h)
	}
	if h := overlapHeight(0, 0, 1920, 1080, 0, 1080, 1920, 1100); h != 0 {
		t.Fatalf("expected no overlap below the rect, got %d", h)
	}
	if w := overlapWidth(0, 0, 1920, 1080, 0, 0, 50, 1080); w != 50 {
		t.Fatalf("overlapWidth = %d, want 50", w)
	}
}

func TestContainsType(t *testing.T) {
	types := []string{"_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DOCK"}
	if !containsType(types, "_NET_WM_WINDOW_TYPE_DOCK") {
		t.Fatalf("expected dock type found")
	}
	if containsType(types, "_NET_WM_WINDOW_TYPE_SPLASH") {
		t.Fatalf("expected splash type not found")
	}
}
