package mcpserver

import (
	"context"
	"fmt"
	"sort"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleRetile(_ context.Context, _ *mcpsdk.CallToolRequest, args RetileInput) (*mcpsdk.CallToolResult, RetileOutput, error) {
	s.engine.Retile(args.Screen)

	screens := []string{args.Screen}
	if args.Screen == "" {
		screens = s.engine.EnabledScreens()
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("retiled %d screen(s)", len(screens))}},
	}, RetileOutput{Screens: screens}, nil
}

func (s *Server) handleSetAlgorithm(_ context.Context, _ *mcpsdk.CallToolRequest, args SetAlgorithmInput) (*mcpsdk.CallToolResult, SetAlgorithmOutput, error) {
	s.engine.SetAlgorithm(args.AlgorithmID)
	id := s.engine.AlgorithmID()
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("algorithm set to %s", id)}},
	}, SetAlgorithmOutput{AlgorithmID: id}, nil
}

func (s *Server) handleSetAutotileScreens(_ context.Context, _ *mcpsdk.CallToolRequest, args SetAutotileScreensInput) (*mcpsdk.CallToolResult, SetAutotileScreensOutput, error) {
	if len(args.Screens) == 0 {
		return nil, SetAutotileScreensOutput{}, fmt.Errorf("screens must not be empty")
	}
	s.engine.SetAutotileScreens(args.Screens)
	enabled := s.engine.EnabledScreens()
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("%d screen(s) enabled", len(enabled))}},
	}, SetAutotileScreensOutput{EnabledScreens: enabled}, nil
}

func (s *Server) handlePromoteToMaster(_ context.Context, _ *mcpsdk.CallToolRequest, args PromoteToMasterInput) (*mcpsdk.CallToolResult, PromoteToMasterOutput, error) {
	ok := s.engine.PromoteToMaster(args.WindowID)
	if !ok {
		return nil, PromoteToMasterOutput{}, fmt.Errorf("window %q is not tracked", args.WindowID)
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("%s promoted to master", args.WindowID)}},
	}, PromoteToMasterOutput{Promoted: true}, nil
}

func (s *Server) handleSwapWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args SwapWindowsInput) (*mcpsdk.CallToolResult, SwapWindowsOutput, error) {
	ok := s.engine.SwapWindows(args.WindowA, args.WindowB)
	if !ok {
		return nil, SwapWindowsOutput{}, fmt.Errorf("%s and %s are not both tracked on the same screen", args.WindowA, args.WindowB)
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("swapped %s and %s", args.WindowA, args.WindowB)}},
	}, SwapWindowsOutput{Swapped: true}, nil
}

func (s *Server) handleAdjustRatio(_ context.Context, _ *mcpsdk.CallToolRequest, args AdjustRatioInput) (*mcpsdk.CallToolResult, AdjustRatioOutput, error) {
	if args.Delta >= 0 {
		s.engine.IncreaseMasterRatio(args.Delta)
	} else {
		s.engine.DecreaseMasterRatio(-args.Delta)
	}
	ratio := s.engine.Config().SplitRatio
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("split ratio now %.2f", ratio)}},
	}, AdjustRatioOutput{SplitRatio: ratio}, nil
}

func (s *Server) handleAdjustMasterCount(_ context.Context, _ *mcpsdk.CallToolRequest, args AdjustMasterCountInput) (*mcpsdk.CallToolResult, AdjustMasterCountOutput, error) {
	switch {
	case args.Delta > 0:
		s.engine.IncreaseMasterCount()
	case args.Delta < 0:
		s.engine.DecreaseMasterCount()
	}
	count := s.engine.Config().MasterCount
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("master count now %d", count)}},
	}, AdjustMasterCountOutput{MasterCount: count}, nil
}

func (s *Server) handleGetScreenState(_ context.Context, _ *mcpsdk.CallToolRequest, args ScreenStateInput) (*mcpsdk.CallToolResult, ScreenStateOutput, error) {
	if args.Screen == "" {
		return nil, ScreenStateOutput{}, fmt.Errorf("screen is required")
	}
	st := s.engine.StateForScreen(args.Screen)

	floating := make([]string, 0)
	for _, id := range st.WindowOrder() {
		if st.IsFloating(id) {
			floating = append(floating, id)
		}
	}
	sort.Strings(floating)

	out := ScreenStateOutput{
		Screen:      args.Screen,
		AlgorithmID: s.engine.AlgorithmID(),
		WindowOrder: st.WindowOrder(),
		Floating:    floating,
		Focused:     st.Focused(),
		MasterCount: st.MasterCount(),
		SplitRatio:  st.SplitRatio(),
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("screen %s: %d window(s)", args.Screen, len(out.WindowOrder))}},
	}, out, nil
}
