package autotile

import "testing"

func TestConfigFromJSONDefaultsAndClamp(t *testing.T) {
	data := []byte(`{"splitRatio": 5.0, "masterCount": 99, "innerGap": -3, "insertPosition": "after-focused"}`)
	cfg, err := ConfigFromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SplitRatio != MaxSplitRatio {
		t.Fatalf("splitRatio = %v, want clamped to %v", cfg.SplitRatio, MaxSplitRatio)
	}
	if cfg.MasterCount != MaxMasterCount {
		t.Fatalf("masterCount = %v, want clamped to %v", cfg.MasterCount, MaxMasterCount)
	}
	if cfg.InnerGap != MinGap {
		t.Fatalf("innerGap = %v, want clamped to %v", cfg.InnerGap, MinGap)
	}
	if cfg.InsertPosition != InsertAfterFocused {
		t.Fatalf("insertPosition = %v, want after-focused", cfg.InsertPosition)
	}
	// Fields absent from the JSON must inherit defaults.
	if cfg.OuterGap != DefaultConfig().OuterGap {
		t.Fatalf("outerGap = %v, want default %v", cfg.OuterGap, DefaultConfig().OuterGap)
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlgorithmID = "bsp"
	cfg.InsertPosition = InsertAsMaster

	data, err := cfg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := ConfigFromJSON(data)
	if err != nil {
		t.Fatalf("ConfigFromJSON: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, cfg)
	}
}

func TestConfigFromJSONUnknownFieldsIgnored(t *testing.T) {
	data := []byte(`{"algorithmId": "columns", "somethingUnknown": 42}`)
	cfg, err := ConfigFromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AlgorithmID != "columns" {
		t.Fatalf("algorithmId = %v, want columns", cfg.AlgorithmID)
	}
}

func TestInsertPositionJSON(t *testing.T) {
	for _, p := range []InsertPosition{InsertEnd, InsertAfterFocused, InsertAsMaster} {
		data, err := p.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON: %v", err)
		}
		var got InsertPosition
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON: %v", err)
		}
		if got != p {
			t.Fatalf("round trip: got %v, want %v", got, p)
		}
	}
}
