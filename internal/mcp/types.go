package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Class   string `json:"class,omitempty" jsonschema:"Case-insensitive substring filter on the window class (e.g. firefox)"`
	Title   string `json:"title,omitempty" jsonschema:"Case-insensitive substring filter on the window title"`
	Desktop *int   `json:"desktop,omitempty" jsonschema:"Only return windows on this desktop number. Sticky windows (desktop -1) are always included."`
}

// WindowInfo describes a single managed window.
type WindowInfo struct {
	ID      string `json:"id"`
	Desktop int    `json:"desktop"`
	Sticky  bool   `json:"sticky"`
	PID     int    `json:"pid,omitempty"`
	Class   string `json:"class,omitempty"`
	Host    string `json:"host,omitempty"`
	Title   string `json:"title"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// ListDesktopsInput is the input for the list_desktops tool.
type ListDesktopsInput struct{}

// DesktopInfo describes a single virtual desktop.
type DesktopInfo struct {
	Number  int    `json:"number"`
	Current bool   `json:"current"`
	Title   string `json:"title,omitempty"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// ListDesktopsOutput is the output for the list_desktops tool.
type ListDesktopsOutput struct {
	Desktops []DesktopInfo `json:"desktops"`
}

// ActivateWindowInput is the input for the activate_window tool.
type ActivateWindowInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Window id as reported by list_windows (e.g. 0x04e00004)"`
}

// ActivateWindowOutput is the output for the activate_window tool.
type ActivateWindowOutput struct {
	WindowID string `json:"window_id"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Window id to close gracefully"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	WindowID string `json:"window_id"`
	Closed   bool   `json:"closed"`
}

// MoveResizeWindowInput is the input for the move_resize_window tool.
type MoveResizeWindowInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Window id to move/resize"`
	X        int    `json:"x" jsonschema:"required,Target x coordinate"`
	Y        int    `json:"y" jsonschema:"required,Target y coordinate"`
	Width    int    `json:"width" jsonschema:"required,Target width in pixels"`
	Height   int    `json:"height" jsonschema:"required,Target height in pixels"`
}

// MoveResizeWindowOutput is the output for the move_resize_window tool.
type MoveResizeWindowOutput struct {
	WindowID string `json:"window_id"`
}

// SetWindowStateInput is the input for the set_window_state tool.
type SetWindowStateInput struct {
	WindowID   string   `json:"window_id" jsonschema:"required,Window id to change state on"`
	Action     string   `json:"action" jsonschema:"required,One of add, remove, toggle"`
	Properties []string `json:"properties" jsonschema:"required,One or two state properties (e.g. maximized_vert, fullscreen, above, hidden)"`
}

// SetWindowStateOutput is the output for the set_window_state tool.
type SetWindowStateOutput struct {
	WindowID string `json:"window_id"`
	State    string `json:"state"`
}

// RenameWindowInput is the input for the rename_window tool.
type RenameWindowInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Window id to retitle"`
	Title    string `json:"title" jsonschema:"required,New window title"`
}

// RenameWindowOutput is the output for the rename_window tool.
type RenameWindowOutput struct {
	WindowID string `json:"window_id"`
	Title    string `json:"title"`
}

// MoveWindowToDesktopInput is the input for the move_window_to_desktop tool.
type MoveWindowToDesktopInput struct {
	WindowID string `json:"window_id" jsonschema:"required,Window id to move"`
	Desktop  int    `json:"desktop" jsonschema:"required,Target desktop number, or -1 to make the window sticky"`
}

// MoveWindowToDesktopOutput is the output for the move_window_to_desktop tool.
type MoveWindowToDesktopOutput struct {
	WindowID string `json:"window_id"`
	Desktop  int    `json:"desktop"`
}

// SwitchDesktopInput is the input for the switch_desktop tool.
type SwitchDesktopInput struct {
	Desktop int `json:"desktop" jsonschema:"required,Desktop number to switch to"`
}

// SwitchDesktopOutput is the output for the switch_desktop tool.
type SwitchDesktopOutput struct {
	Desktop int `json:"desktop"`
}

// ApplyLayoutInput is the input for the apply_layout tool.
type ApplyLayoutInput struct {
	Layout string `json:"layout" jsonschema:"required,Layout name from config (e.g. grid, columns, master-stack)"`
	Class  string `json:"class,omitempty" jsonschema:"Only tile windows whose class contains this substring"`
	Title  string `json:"title,omitempty" jsonschema:"Only tile windows whose title contains this substring"`
}

// ApplyLayoutOutput is the output for the apply_layout tool.
type ApplyLayoutOutput struct {
	Layout       string `json:"layout"`
	WindowsTiled int    `json:"windows_tiled"`
}
