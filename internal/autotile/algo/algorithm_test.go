package algo

import (
	"testing"

	"github.com/1broseidon/autotiled/internal/geometry"
)

type fakeState struct {
	splitRatio  float64
	masterCount int
}

func (f fakeState) SplitRatio() float64 { return f.splitRatio }
func (f fakeState) MasterCount() int    { return f.masterCount }

func allAlgorithms() []Algorithm {
	return []Algorithm{
		NewMasterStack(),
		NewColumns(),
		NewRows(),
		NewMonocle(),
		NewThreeColumn(),
		NewFibonacci(),
		NewBSP(),
	}
}

// TestUniversalProperties exercises spec.md section 8's universal
// algorithm properties across every algorithm and a representative set of
// (N, split_ratio, master_count) combinations.
func TestUniversalProperties(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	counts := []int{0, 1, 2, 3, 4, 5, 8, 20}
	ratios := []float64{0.1, 0.5, 0.618, 0.9}
	masters := []int{0, 1, 2, 5, 10}

	for _, alg := range allAlgorithms() {
		for _, n := range counts {
			for _, ratio := range ratios {
				for _, mc := range masters {
					state := fakeState{splitRatio: ratio, masterCount: mc}
					zones := alg.CalculateZones(n, screen, state)

					if len(zones) != n {
						t.Fatalf("%s: N=%d ratio=%v mc=%d: got %d zones, want %d", alg.ID(), n, ratio, mc, len(zones), n)
					}
					if n == 0 {
						continue
					}

					area := 0
					for _, z := range zones {
						if !z.Valid() {
							t.Fatalf("%s: N=%d: degenerate zone %+v", alg.ID(), n, z)
						}
						if !screen.Contains(z) {
							t.Fatalf("%s: N=%d: zone %+v escapes screen %+v", alg.ID(), n, z, screen)
						}
						area += z.Area()
					}
					// Monocle deliberately gives every window the identical
					// full-screen rect (spec.md 4.1.3); the exact-tiling/
					// area-sum property only holds for the other algorithms.
					if alg.ID() != "monocle" && area != screen.Area() {
						t.Fatalf("%s: N=%d ratio=%v mc=%d: zone area sum %d != screen area %d", alg.ID(), n, ratio, mc, area, screen.Area())
					}

					if n == 1 && zones[0] != screen {
						t.Fatalf("%s: N=1 must equal screen, got %+v", alg.ID(), zones[0])
					}
				}
			}
		}
	}
}

func TestPairwiseDisjoint(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	state := fakeState{splitRatio: 0.6, masterCount: 1}
	for _, alg := range allAlgorithms() {
		if alg.ID() == "monocle" {
			continue // identical overlapping rects by design, spec.md 4.1.3
		}
		zones := alg.CalculateZones(5, screen, state)
		for i := 0; i < len(zones); i++ {
			for j := i + 1; j < len(zones); j++ {
				if overlaps(zones[i], zones[j]) {
					t.Fatalf("%s: zones %d and %d overlap: %+v / %+v", alg.ID(), i, j, zones[i], zones[j])
				}
			}
		}
	}
}

func overlaps(a, b geometry.Rect) bool {
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

func TestThreeColumnNEqualsTwo(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 500}
	state := fakeState{splitRatio: 0.6, masterCount: 1}
	zones := NewThreeColumn().CalculateZones(2, screen, state)

	want0 := geometry.Rect{X: 0, Y: 0, Width: 500, Height: 500}
	want1 := geometry.Rect{X: 500, Y: 0, Width: 500, Height: 500}
	if zones[0] != want0 || zones[1] != want1 {
		t.Fatalf("got %+v / %+v, want %+v / %+v", zones[0], zones[1], want0, want1)
	}
}

func TestMasterStackNEqualsFour(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	state := fakeState{splitRatio: 0.6, masterCount: 1}
	zones := NewMasterStack().CalculateZones(4, screen, state)

	wantMasterWidth := int(1920 * 0.6)
	if zones[0].Width != wantMasterWidth {
		t.Fatalf("master width = %d, want %d", zones[0].Width, wantMasterWidth)
	}
	for i := 1; i < 4; i++ {
		if zones[i].X != wantMasterWidth {
			t.Fatalf("stack zone %d X = %d, want %d", i, zones[i].X, wantMasterWidth)
		}
	}
	// Three equal-height rows in the stack column.
	h0 := zones[1].Height
	for i := 2; i < 4; i++ {
		if abs(zones[i].Height-h0) > 1 {
			t.Fatalf("stack rows not equal height: %+v", zones[1:])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestFibonacciMonotoneArea(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	state := fakeState{splitRatio: 0.618, masterCount: 1}
	zones := NewFibonacci().CalculateZones(8, screen, state)

	for i := 0; i < len(zones)-1; i++ {
		if zones[i+1].Area() > zones[i].Area()+1 {
			t.Fatalf("area not monotone shrinking at %d: %+v -> %+v", i, zones[i], zones[i+1])
		}
	}
}

func TestBSPIncrementalStability(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	state := fakeState{splitRatio: 0.5, masterCount: 1}

	bsp := NewBSP()
	bsp.CalculateZones(1, screen, state)
	bsp.CalculateZones(2, screen, state)
	zonesIncremental := bsp.CalculateZones(3, screen, state)

	fresh := NewBSP()
	zonesFresh := fresh.CalculateZones(3, screen, state)

	if len(zonesIncremental) != len(zonesFresh) {
		t.Fatalf("leaf count mismatch: %d vs %d", len(zonesIncremental), len(zonesFresh))
	}
	for i := range zonesFresh {
		if zonesIncremental[i] != zonesFresh[i] {
			t.Fatalf("zone %d differs: incremental %+v vs fresh %+v", i, zonesIncremental[i], zonesFresh[i])
		}
	}
}

func TestBSPShrinkReducesLeafCount(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	state := fakeState{splitRatio: 0.5, masterCount: 1}

	bsp := NewBSP()
	bsp.CalculateZones(1, screen, state)
	bsp.CalculateZones(2, screen, state)
	zones3 := bsp.CalculateZones(3, screen, state)
	if len(zones3) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(zones3))
	}

	zones2 := bsp.CalculateZones(2, screen, state)
	if len(zones2) != 2 {
		t.Fatalf("expected 2 leaves after shrink, got %d", len(zones2))
	}
}

func TestBSPZeroWindowsResets(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	state := fakeState{splitRatio: 0.5, masterCount: 1}

	bsp := NewBSP()
	bsp.CalculateZones(3, screen, state)
	zones := bsp.CalculateZones(0, screen, state)
	if len(zones) != 0 {
		t.Fatalf("expected no zones for N=0, got %d", len(zones))
	}
	// A fresh build for N=1 after the reset should just be the screen.
	zones1 := bsp.CalculateZones(1, screen, state)
	if len(zones1) != 1 || zones1[0] != screen {
		t.Fatalf("expected single screen-sized zone, got %+v", zones1)
	}
}
