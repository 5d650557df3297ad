package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wmctl/internal/platform"
	"github.com/1broseidon/wmctl/internal/tiling"
	"github.com/1broseidon/wmctl/internal/wmctrl"
)

func windowInfo(w platform.Window) WindowInfo {
	return WindowInfo{
		ID:      w.ID,
		Desktop: w.Desktop,
		Sticky:  w.Sticky(),
		PID:     w.PID,
		Class:   w.Class,
		Host:    w.Host,
		Title:   w.Title,
		X:       w.Bounds.X,
		Y:       w.Bounds.Y,
		Width:   w.Bounds.Width,
		Height:  w.Bounds.Height,
	}
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	classNeedle := strings.ToLower(args.Class)
	titleNeedle := strings.ToLower(args.Title)

	out := ListWindowsOutput{Windows: []WindowInfo{}}
	for _, w := range windows {
		if args.Desktop != nil && w.Desktop != *args.Desktop && !w.Sticky() {
			continue
		}
		if classNeedle != "" && !strings.Contains(strings.ToLower(w.Class), classNeedle) {
			continue
		}
		if titleNeedle != "" && !strings.Contains(strings.ToLower(w.Title), titleNeedle) {
			continue
		}
		out.Windows = append(out.Windows, windowInfo(w))
	}

	s.logger.Debug("list_windows", "total", len(windows), "matched", len(out.Windows))
	return nil, out, nil
}

func (s *Server) handleListDesktops(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListDesktopsInput) (*mcpsdk.CallToolResult, ListDesktopsOutput, error) {
	desktops, err := s.backend.Desktops()
	if err != nil {
		return nil, ListDesktopsOutput{}, err
	}

	out := ListDesktopsOutput{Desktops: make([]DesktopInfo, 0, len(desktops))}
	for _, d := range desktops {
		out.Desktops = append(out.Desktops, DesktopInfo{
			Number:  d.Number,
			Current: d.Current,
			Title:   d.Title,
			Width:   d.Bounds.Width,
			Height:  d.Bounds.Height,
		})
	}
	return nil, out, nil
}

func (s *Server) handleActivateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ActivateWindowInput) (*mcpsdk.CallToolResult, ActivateWindowOutput, error) {
	if args.WindowID == "" {
		return nil, ActivateWindowOutput{}, fmt.Errorf("window_id is required")
	}
	if err := s.backend.Activate(args.WindowID); err != nil {
		return nil, ActivateWindowOutput{}, err
	}
	s.logger.Debug("activate_window", "window", args.WindowID)
	return nil, ActivateWindowOutput{WindowID: args.WindowID}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	if args.WindowID == "" {
		return nil, CloseWindowOutput{}, fmt.Errorf("window_id is required")
	}
	if err := s.backend.Close(args.WindowID); err != nil {
		return nil, CloseWindowOutput{}, err
	}
	s.logger.Debug("close_window", "window", args.WindowID)
	return nil, CloseWindowOutput{WindowID: args.WindowID, Closed: true}, nil
}

func (s *Server) handleMoveResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveResizeWindowInput) (*mcpsdk.CallToolResult, MoveResizeWindowOutput, error) {
	if args.WindowID == "" {
		return nil, MoveResizeWindowOutput{}, fmt.Errorf("window_id is required")
	}
	if args.Width <= 0 || args.Height <= 0 {
		return nil, MoveResizeWindowOutput{}, fmt.Errorf("width and height must be positive, got %dx%d", args.Width, args.Height)
	}
	bounds := platform.Rect{X: args.X, Y: args.Y, Width: args.Width, Height: args.Height}
	if err := s.backend.MoveResize(args.WindowID, bounds); err != nil {
		return nil, MoveResizeWindowOutput{}, err
	}
	s.logger.Debug("move_resize_window", "window", args.WindowID, "bounds", bounds)
	return nil, MoveResizeWindowOutput{WindowID: args.WindowID}, nil
}

func (s *Server) handleSetWindowState(_ context.Context, _ *mcpsdk.CallToolRequest, args SetWindowStateInput) (*mcpsdk.CallToolResult, SetWindowStateOutput, error) {
	if args.WindowID == "" {
		return nil, SetWindowStateOutput{}, fmt.Errorf("window_id is required")
	}
	action, err := wmctrl.ParseAction(args.Action)
	if err != nil {
		return nil, SetWindowStateOutput{}, err
	}
	props := make([]wmctrl.Property, 0, len(args.Properties))
	for _, p := range args.Properties {
		prop, err := wmctrl.ParseProperty(p)
		if err != nil {
			return nil, SetWindowStateOutput{}, err
		}
		props = append(props, prop)
	}
	state := wmctrl.State{Action: action, Properties: props}
	if err := state.Validate(); err != nil {
		return nil, SetWindowStateOutput{}, err
	}
	if err := s.backend.ChangeState(args.WindowID, state); err != nil {
		return nil, SetWindowStateOutput{}, err
	}
	s.logger.Debug("set_window_state", "window", args.WindowID, "state", state.String())
	return nil, SetWindowStateOutput{WindowID: args.WindowID, State: state.String()}, nil
}

func (s *Server) handleRenameWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args RenameWindowInput) (*mcpsdk.CallToolResult, RenameWindowOutput, error) {
	if args.WindowID == "" {
		return nil, RenameWindowOutput{}, fmt.Errorf("window_id is required")
	}
	if args.Title == "" {
		return nil, RenameWindowOutput{}, fmt.Errorf("title is required")
	}
	if err := s.backend.SetTitle(args.WindowID, args.Title); err != nil {
		return nil, RenameWindowOutput{}, err
	}
	return nil, RenameWindowOutput{WindowID: args.WindowID, Title: args.Title}, nil
}

func (s *Server) handleMoveWindowToDesktop(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowToDesktopInput) (*mcpsdk.CallToolResult, MoveWindowToDesktopOutput, error) {
	if args.WindowID == "" {
		return nil, MoveWindowToDesktopOutput{}, fmt.Errorf("window_id is required")
	}
	if args.Desktop < -1 {
		return nil, MoveWindowToDesktopOutput{}, fmt.Errorf("invalid desktop %d", args.Desktop)
	}
	if err := s.backend.MoveToDesktop(args.WindowID, args.Desktop); err != nil {
		return nil, MoveWindowToDesktopOutput{}, err
	}
	s.logger.Debug("move_window_to_desktop", "window", args.WindowID, "desktop", args.Desktop)
	return nil, MoveWindowToDesktopOutput{WindowID: args.WindowID, Desktop: args.Desktop}, nil
}

func (s *Server) handleSwitchDesktop(_ context.Context, _ *mcpsdk.CallToolRequest, args SwitchDesktopInput) (*mcpsdk.CallToolResult, SwitchDesktopOutput, error) {
	if args.Desktop < 0 {
		return nil, SwitchDesktopOutput{}, fmt.Errorf("invalid desktop %d", args.Desktop)
	}
	if err := s.backend.SwitchDesktop(args.Desktop); err != nil {
		return nil, SwitchDesktopOutput{}, err
	}
	return nil, SwitchDesktopOutput{Desktop: args.Desktop}, nil
}

func (s *Server) handleApplyLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args ApplyLayoutInput) (*mcpsdk.CallToolResult, ApplyLayoutOutput, error) {
	layout, err := s.config.GetLayout(args.Layout)
	if err != nil {
		available := s.config.LayoutNames()
		return nil, ApplyLayoutOutput{}, fmt.Errorf("unknown layout %q; available: %v", args.Layout, available)
	}

	windows, err := tiling.SelectWindows(s.backend, args.Class, args.Title)
	if err != nil {
		return nil, ApplyLayoutOutput{}, err
	}
	if len(windows) == 0 {
		return nil, ApplyLayoutOutput{}, fmt.Errorf("no windows match on the current desktop")
	}

	if err := tiling.Apply(s.backend, &layout, s.config.Gap(), windows); err != nil {
		return nil, ApplyLayoutOutput{}, err
	}

	s.logger.Info("apply_layout", "layout", args.Layout, "windows", len(windows))
	return nil, ApplyLayoutOutput{Layout: args.Layout, WindowsTiled: len(windows)}, nil
}
