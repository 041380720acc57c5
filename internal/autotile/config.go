package autotile

import (
	"encoding/json"
	"fmt"
)

// InsertPosition controls where a newly opened window lands in a
// TilingState's window order. Grounded on AutotileConfig::InsertPosition
// and its string (de)serialization helpers in the reference source.
type InsertPosition int

const (
	InsertEnd InsertPosition = iota
	InsertAfterFocused
	InsertAsMaster
)

func (p InsertPosition) String() string {
	switch p {
	case InsertAfterFocused:
		return "after-focused"
	case InsertAsMaster:
		return "as-master"
	default:
		return "end"
	}
}

// ParseInsertPosition parses the wire strings used by AutotileConfig JSON.
// Unknown values fall back to InsertEnd so unrecognized persisted config
// degrades gracefully instead of failing to load.
func ParseInsertPosition(s string) InsertPosition {
	switch s {
	case "after-focused":
		return InsertAfterFocused
	case "as-master":
		return InsertAsMaster
	default:
		return InsertEnd
	}
}

func (p InsertPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *InsertPosition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	*p = ParseInsertPosition(s)
	return nil
}

// Range bounds shared across split-ratio and master-count fields.
const (
	MinSplitRatio = 0.1
	MaxSplitRatio = 0.9

	MinMasterCount = 1
	MaxMasterCount = 5
)

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Config is the AutotileConfig value type: user-configurable autotiling
// behavior. Grounded on AutotileConfig.h/.cpp for the field list, ranges,
// and JSON key names (spec.md section 3 and 6.1).
type Config struct {
	AlgorithmID string `json:"algorithmId" yaml:"algorithmId"`

	SplitRatio  float64 `json:"splitRatio" yaml:"splitRatio"`
	MasterCount int     `json:"masterCount" yaml:"masterCount"`

	InnerGap int `json:"innerGap" yaml:"innerGap"`
	OuterGap int `json:"outerGap" yaml:"outerGap"`

	InsertPosition InsertPosition `json:"insertPosition" yaml:"insertPosition"`

	FocusFollowsMouse bool `json:"focusFollowsMouse" yaml:"focusFollowsMouse"`
	FocusNewWindows   bool `json:"focusNewWindows" yaml:"focusNewWindows"`

	ShowActiveBorder  bool   `json:"showActiveBorder" yaml:"showActiveBorder"`
	ActiveBorderWidth int    `json:"activeBorderWidth" yaml:"activeBorderWidth"`
	ActiveBorderColor string `json:"activeBorderColor" yaml:"activeBorderColor"`

	MonocleHideOthers bool `json:"monocleHideOthers" yaml:"monocleHideOthers"`
	MonocleShowTabs   bool `json:"monocleShowTabs" yaml:"monocleShowTabs"`

	SmartGaps          bool `json:"smartGaps" yaml:"smartGaps"`
	RespectMinimumSize bool `json:"respectMinimumSize" yaml:"respectMinimumSize"`
}

// DefaultConfig returns the default AutotileConfig. ActiveBorderColor has
// no KDE KColorScheme equivalent in this stack (see DESIGN.md); it is a
// plain literal default instead of a desktop-theme query.
func DefaultConfig() Config {
	return Config{
		AlgorithmID:       "master-stack",
		SplitRatio:        0.6,
		MasterCount:       1,
		InnerGap:          8,
		OuterGap:          8,
		InsertPosition:    InsertEnd,
		FocusFollowsMouse: false,
		FocusNewWindows:   true,
		ShowActiveBorder:  true,
		ActiveBorderWidth: 2,
		ActiveBorderColor: "#FF3DAEE9",
		MonocleHideOthers: true,
		MonocleShowTabs:   false,
		SmartGaps:         true,
		RespectMinimumSize: true,
	}
}

// Clamp normalizes every numeric field to its declared range in place.
func (c *Config) Clamp() {
	if c.AlgorithmID == "" {
		c.AlgorithmID = "master-stack"
	}
	c.SplitRatio = clampFloat(c.SplitRatio, MinSplitRatio, MaxSplitRatio)
	c.MasterCount = clampInt(c.MasterCount, MinMasterCount, MaxMasterCount)
	c.InnerGap = clampInt(c.InnerGap, MinGap, MaxGap)
	c.OuterGap = clampInt(c.OuterGap, MinGap, MaxGap)
	if c.ActiveBorderWidth < 0 {
		c.ActiveBorderWidth = 0
	}
}

// ConfigFromJSON parses AutotileConfig JSON per spec.md section 6.1:
// missing fields inherit defaults, unknown fields are ignored, numeric
// fields are clamped on read.
func ConfigFromJSON(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode autotile config: %w", err)
	}
	cfg.Clamp()
	return cfg, nil
}

// ToJSON serializes the config using the wire field names from section 6.1.
func (c Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
