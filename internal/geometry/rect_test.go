package geometry

import "testing"

func TestDistributeEvenly(t *testing.T) {
	cases := []struct {
		total, count int
		want         []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{10, 3, []int{4, 3, 3}},
		{0, 3, nil},
		{10, 0, nil},
	}
	for _, c := range cases {
		got := DistributeEvenly(c.total, c.count)
		if len(got) != len(c.want) {
			t.Fatalf("DistributeEvenly(%d,%d) = %v, want %v", c.total, c.count, got, c.want)
		}
		sum := 0
		for i, v := range got {
			if v != c.want[i] {
				t.Fatalf("DistributeEvenly(%d,%d)[%d] = %d, want %d", c.total, c.count, i, v, c.want[i])
			}
			sum += v
		}
		if len(c.want) > 0 && sum != c.total {
			t.Fatalf("DistributeEvenly(%d,%d) sums to %d, want %d", c.total, c.count, sum, c.total)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Right() != 109 {
		t.Fatalf("Right() = %d, want 109", r.Right())
	}
	if r.Bottom() != 69 {
		t.Fatalf("Bottom() = %d, want 69", r.Bottom())
	}
	if r.Area() != 5000 {
		t.Fatalf("Area() = %d, want 5000", r.Area())
	}
	if !r.Valid() {
		t.Fatalf("expected valid rect")
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	inner := Rect{X: 10, Y: 10, Width: 50, Height: 50}
	if !outer.Contains(inner) {
		t.Fatalf("expected outer to contain inner")
	}
	outside := Rect{X: 90, Y: 90, Width: 50, Height: 50}
	if outer.Contains(outside) {
		t.Fatalf("expected outer to not contain outside")
	}
}

func TestStackAndRowRects(t *testing.T) {
	heights := DistributeEvenly(100, 3)
	stacked := StackRects(0, 0, 20, heights)
	if len(stacked) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(stacked))
	}
	totalHeight := 0
	for _, r := range stacked {
		totalHeight += r.Height
		if r.Width != 20 {
			t.Fatalf("expected width 20, got %d", r.Width)
		}
	}
	if totalHeight != 100 {
		t.Fatalf("expected total height 100, got %d", totalHeight)
	}

	widths := DistributeEvenly(100, 4)
	rowed := RowRects(0, 0, 30, widths)
	totalWidth := 0
	for _, r := range rowed {
		totalWidth += r.Width
	}
	if totalWidth != 100 {
		t.Fatalf("expected total width 100, got %d", totalWidth)
	}
}
