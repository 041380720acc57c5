package algo

import "github.com/1broseidon/autotiled/internal/geometry"

// bspNode is one node of the persistent BSP tree, stored by index in an
// arena owned by the BSP algorithm instance. Modeled as arena+indices per
// spec.md's Design Notes, replacing the reference implementation's
// unique_ptr-owned children plus non-owning parent back-pointer.
type bspNode struct {
	splitRatio      float64
	splitHorizontal bool // true = top/bottom, false = left/right
	geometry        geometry.Rect
	first, second   int // arena indices, -1 if this is a leaf
	parent          int // arena index, -1 if root
}

func (n *bspNode) isLeaf() bool { return n.first < 0 && n.second < 0 }

// BSP is the only stateful algorithm: it maintains a persistent binary
// split tree across calls to CalculateZones so that adding or removing one
// window only disturbs the most recently touched leaf's neighbourhood.
//
// Not safe for concurrent calls on the same instance (spec.md 4.1/5): the
// engine must only ever call CalculateZones on a given *BSP from its one
// control thread. Grounded on algorithms/BSPAlgorithm.h's persistent-tree
// design (DESIGN.md decision 4 — NOT the simpler from-scratch partition()
// found in BSPAlgorithm.cpp).
type BSP struct {
	baseInfo

	arena     []bspNode
	root      int // -1 when empty
	leafCount int
}

// NewBSP constructs a BSP algorithm instance with an empty tree.
func NewBSP() *BSP {
	return &BSP{
		baseInfo: baseInfo{
			id:          "bsp",
			name:        "Binary Space Partitioning",
			description: "Persistent binary split tree, bspwm/dwindle style",
			icon:        "view-grid",
		},
		root: -1,
	}
}

func (BSP) SupportsSplitRatio() bool   { return true }
func (BSP) DefaultSplitRatio() float64 { return 0.5 }

// CalculateZones reconciles the persistent tree to windowCount leaves,
// recomputes every node's geometry top-down from screen, and returns the
// leaves in stable tree order. See spec.md 4.1.5 for the full contract.
func (a *BSP) CalculateZones(windowCount int, screen geometry.Rect, state StateView) []geometry.Rect {
	if windowCount <= 0 || !screen.Valid() {
		a.reset()
		return nil
	}

	defaultRatio := 0.5
	a.ensureTreeSize(windowCount, defaultRatio, screen)

	if a.root < 0 {
		return nil
	}

	stateRatio := clampF(state.SplitRatio(), 0.1, 0.9)
	a.applyGeometry(a.root, screen, stateRatio)

	zones := make([]geometry.Rect, 0, windowCount)
	a.collectLeaves(a.root, &zones)
	return zones
}

func (a *BSP) reset() {
	a.arena = nil
	a.root = -1
	a.leafCount = 0
}

func (a *BSP) newNode(n bspNode) int {
	a.arena = append(a.arena, n)
	return len(a.arena) - 1
}

// ensureTreeSize grows or shrinks the tree one leaf at a time to reach
// windowCount leaves; a jump of more than one leaf rebuilds from scratch
// (DESIGN.md decision 2).
func (a *BSP) ensureTreeSize(windowCount int, defaultRatio float64, refRect geometry.Rect) {
	if a.root < 0 {
		a.buildTree(windowCount, defaultRatio, refRect)
		return
	}

	current := a.countLeaves(a.root)
	diff := windowCount - current
	switch {
	case diff == 0:
		return
	case diff > 1 || diff < -1:
		a.buildTree(windowCount, defaultRatio, refRect)
	case diff == 1:
		a.growTree(defaultRatio)
	case diff == -1:
		a.shrinkTree()
	}
}

// buildTree discards the current tree and builds a balanced tree with
// exactly windowCount leaves from scratch.
func (a *BSP) buildTree(windowCount int, defaultRatio float64, refRect geometry.Rect) {
	a.arena = make([]bspNode, 0, windowCount*2)
	a.root = a.buildSubtree(-1, refRect, windowCount, defaultRatio)
	a.leafCount = windowCount
}

func (a *BSP) buildSubtree(parent int, rect geometry.Rect, n int, defaultRatio float64) int {
	if n <= 1 {
		return a.newNode(bspNode{geometry: rect, first: -1, second: -1, parent: parent})
	}

	firstCount := (n + 1) / 2
	secondCount := n - firstCount
	horizontal := chooseSplitDirection(rect)

	idx := a.newNode(bspNode{
		splitRatio:      defaultRatio,
		splitHorizontal: horizontal,
		geometry:        rect,
		parent:          parent,
	})

	rect1, rect2 := splitRect(rect, horizontal, defaultRatio)
	a.arena[idx].first = a.buildSubtree(idx, rect1, firstCount, defaultRatio)
	a.arena[idx].second = a.buildSubtree(idx, rect2, secondCount, defaultRatio)
	return idx
}

// growTree splits the largest leaf (or, before any geometry has been
// assigned, the deepest-rightmost leaf) into two new leaves.
func (a *BSP) growTree(defaultRatio float64) bool {
	if a.root < 0 {
		return false
	}
	target := a.largestLeaf(a.root)
	if target < 0 {
		return false
	}

	rect := a.arena[target].geometry
	horizontal := chooseSplitDirection(rect)

	a.arena[target].splitHorizontal = horizontal
	a.arena[target].splitRatio = defaultRatio

	first := a.newNode(bspNode{geometry: rect, first: -1, second: -1, parent: target})
	second := a.newNode(bspNode{geometry: rect, first: -1, second: -1, parent: target})
	a.arena[target].first = first
	a.arena[target].second = second
	a.leafCount++
	return true
}

// shrinkTree removes the deepest-rightmost leaf, promoting its sibling
// into the parent's slot.
func (a *BSP) shrinkTree() bool {
	if a.root < 0 {
		return false
	}
	leaf := a.deepestLeaf(a.root)
	if leaf < 0 {
		return false
	}
	parent := a.arena[leaf].parent
	if parent < 0 {
		// Single-leaf tree: nothing to shrink to below N=1, caller should
		// not request this, but stay defensive.
		return false
	}

	var sibling int
	if a.arena[parent].first == leaf {
		sibling = a.arena[parent].second
	} else {
		sibling = a.arena[parent].first
	}

	grandparent := a.arena[parent].parent
	a.arena[sibling].parent = grandparent

	if grandparent < 0 {
		a.root = sibling
	} else if a.arena[grandparent].first == parent {
		a.arena[grandparent].first = sibling
	} else {
		a.arena[grandparent].second = sibling
	}

	a.leafCount--
	return true
}

// applyGeometry recomputes every node's rect top-down, overriding all
// internal split ratios with stateRatio uniformly (spec.md 4.1.5 step 2:
// "the slider is a uniform knob, not per-node").
func (a *BSP) applyGeometry(idx int, rect geometry.Rect, stateRatio float64) {
	a.arena[idx].geometry = rect
	node := a.arena[idx]
	if node.isLeaf() {
		return
	}
	rect1, rect2 := splitRect(rect, node.splitHorizontal, stateRatio)
	a.applyGeometry(node.first, rect1, stateRatio)
	a.applyGeometry(node.second, rect2, stateRatio)
}

// collectLeaves walks the tree left-to-right, top-to-bottom (first then
// second child), a stable order across single-step reconciliations.
func (a *BSP) collectLeaves(idx int, out *[]geometry.Rect) {
	node := a.arena[idx]
	if node.isLeaf() {
		*out = append(*out, node.geometry)
		return
	}
	a.collectLeaves(node.first, out)
	a.collectLeaves(node.second, out)
}

func (a *BSP) countLeaves(idx int) int {
	node := a.arena[idx]
	if node.isLeaf() {
		return 1
	}
	return a.countLeaves(node.first) + a.countLeaves(node.second)
}

// largestLeaf returns the leaf with the largest area, tie-broken
// deepest-leftmost. Falls back to deepestLeaf when no geometry has been
// assigned yet (first build pass, all-zero rects).
func (a *BSP) largestLeaf(idx int) int {
	best := -1
	var bestArea, bestDepth int
	var walk func(int, int)
	walk = func(i, depth int) {
		node := a.arena[i]
		if node.isLeaf() {
			area := node.geometry.Area()
			if best < 0 || area > bestArea || (area == bestArea && depth > bestDepth) {
				best = i
				bestArea = area
				bestDepth = depth
			}
			return
		}
		walk(node.first, depth+1)
		walk(node.second, depth+1)
	}
	walk(idx, 0)
	if best >= 0 && bestArea > 0 {
		return best
	}
	return a.deepestLeaf(idx)
}

// deepestLeaf returns the deepest leaf under idx; among leaves of equal
// depth it returns the rightmost one.
func (a *BSP) deepestLeaf(idx int) int {
	best, bestDepth := -1, -1
	var walk func(int, int)
	walk = func(i, depth int) {
		node := a.arena[i]
		if node.isLeaf() {
			if depth >= bestDepth {
				best = i
				bestDepth = depth
			}
			return
		}
		walk(node.first, depth+1)
		walk(node.second, depth+1)
	}
	walk(idx, 0)
	return best
}

// chooseSplitDirection splits perpendicular to the longest axis; on a
// square tie, vertical (left/right), per spec.md 4.1.5.
func chooseSplitDirection(rect geometry.Rect) bool {
	return rect.Height > rect.Width
}

// splitRect divides rect by direction and ratio, the first return value
// being the top/left portion.
func splitRect(rect geometry.Rect, horizontal bool, ratio float64) (geometry.Rect, geometry.Rect) {
	if horizontal {
		splitY := rect.Y + int(float64(rect.Height)*ratio)
		first := geometry.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: splitY - rect.Y}
		second := geometry.Rect{X: rect.X, Y: splitY, Width: rect.Width, Height: rect.Bottom() - splitY + 1}
		return first, second
	}
	splitX := rect.X + int(float64(rect.Width)*ratio)
	first := geometry.Rect{X: rect.X, Y: rect.Y, Width: splitX - rect.X, Height: rect.Height}
	second := geometry.Rect{X: splitX, Y: rect.Y, Width: rect.Right() - splitX + 1, Height: rect.Height}
	return first, second
}
