package mcpserver

// RetileInput is the input for the retile tool.
type RetileInput struct {
	Screen string `json:"screen,omitempty" jsonschema:"Screen name to retile. Omit to retile every enabled screen."`
}

// RetileOutput is the output for the retile tool.
type RetileOutput struct {
	Screens []string `json:"screens"`
}

// SetAlgorithmInput is the input for the set_algorithm tool.
type SetAlgorithmInput struct {
	AlgorithmID string `json:"algorithm_id" jsonschema:"required,One of the registered algorithm ids (e.g. master-stack, columns, rows, monocle, three-column, fibonacci, bsp)"`
}

// SetAlgorithmOutput is the output for the set_algorithm tool.
type SetAlgorithmOutput struct {
	AlgorithmID string `json:"algorithm_id"`
}

// SetAutotileScreensInput is the input for the set_autotile_screens tool.
type SetAutotileScreensInput struct {
	Screens map[string]bool `json:"screens" jsonschema:"required,Screen name -> enabled"`
}

// SetAutotileScreensOutput is the output for the set_autotile_screens tool.
type SetAutotileScreensOutput struct {
	EnabledScreens []string `json:"enabled_screens"`
}

// PromoteToMasterInput is the input for the promote_to_master tool.
type PromoteToMasterInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Opaque window id as known to the engine"`
}

// PromoteToMasterOutput is the output for the promote_to_master tool.
type PromoteToMasterOutput struct {
	Promoted bool `json:"promoted"`
}

// SwapWindowsInput is the input for the swap_windows tool.
type SwapWindowsInput struct {
	WindowA string `json:"window_a" jsonschema:"required"`
	WindowB string `json:"window_b" jsonschema:"required"`
}

// SwapWindowsOutput is the output for the swap_windows tool.
type SwapWindowsOutput struct {
	Swapped bool `json:"swapped"`
}

// AdjustRatioInput is the input for the adjust_master_ratio tool.
type AdjustRatioInput struct {
	Delta float64 `json:"delta" jsonschema:"required,Amount to add to the split ratio; negative shrinks the master zone"`
}

// AdjustRatioOutput is the output for the adjust_master_ratio tool.
type AdjustRatioOutput struct {
	SplitRatio float64 `json:"split_ratio"`
}

// AdjustMasterCountInput is the input for the adjust_master_count tool.
type AdjustMasterCountInput struct {
	Delta int `json:"delta" jsonschema:"required,+1 or -1, applied to every tracked screen's master count"`
}

// AdjustMasterCountOutput is the output for the adjust_master_count tool.
type AdjustMasterCountOutput struct {
	MasterCount int `json:"master_count"`
}

// ScreenStateInput is the input for the get_screen_state tool.
type ScreenStateInput struct {
	Screen string `json:"screen" jsonschema:"required,Screen name to inspect"`
}

// ScreenStateOutput is the output for the get_screen_state tool.
type ScreenStateOutput struct {
	Screen      string   `json:"screen"`
	AlgorithmID string   `json:"algorithm_id"`
	WindowOrder []string `json:"window_order"`
	Floating    []string `json:"floating"`
	Focused     string   `json:"focused"`
	MasterCount int      `json:"master_count"`
	SplitRatio  float64  `json:"split_ratio"`
}
