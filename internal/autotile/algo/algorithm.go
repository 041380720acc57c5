// Package algo implements the pluggable tiling-algorithm registry: the
// Algorithm interface, its seven built-in implementations, and the
// process-wide registry that maps algorithm ids to instances.
package algo

import "github.com/1broseidon/autotiled/internal/geometry"

// StateView is the read-only view of a screen's tiling state that an
// algorithm consumes. Algorithms must not mutate anything reachable
// through this interface. *autotile.State satisfies it directly.
type StateView interface {
	SplitRatio() float64
	MasterCount() int
}

// Algorithm computes window zone rectangles for a screen. Every
// implementation must satisfy the contract in spec.md section 4.1:
// exactly windowCount rectangles, tiling screen exactly, non-degenerate,
// disjoint interiors, N==1 returns screen verbatim. Stateless
// implementations are safe for concurrent calls; BSP is not (spec.md
// section 4.1.5/5) and must only ever be driven from the engine's single
// control thread.
type Algorithm interface {
	ID() string
	Name() string
	Description() string
	IconName() string

	SupportsMasterCount() bool
	SupportsSplitRatio() bool
	DefaultSplitRatio() float64
	MinimumWindows() int

	// MasterZoneIndex is -1 when the algorithm has no master concept.
	MasterZoneIndex() int

	CalculateZones(windowCount int, screen geometry.Rect, state StateView) []geometry.Rect
}

// baseInfo centralizes the identity fields shared by every algorithm, the
// way TilingAlgorithm's default-method bodies do in the reference base
// class (name/description/icon/minimumWindows/defaultSplitRatio/flags).
type baseInfo struct {
	id          string
	name        string
	description string
	icon        string
}

func (b baseInfo) ID() string          { return b.id }
func (b baseInfo) Name() string        { return b.name }
func (b baseInfo) Description() string { return b.description }
func (b baseInfo) IconName() string    { return b.icon }

func (baseInfo) SupportsMasterCount() bool  { return false }
func (baseInfo) SupportsSplitRatio() bool   { return false }
func (baseInfo) DefaultSplitRatio() float64 { return 0.6 }
func (baseInfo) MinimumWindows() int        { return 1 }
func (baseInfo) MasterZoneIndex() int       { return -1 }
