package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/platform"
	"github.com/1broseidon/wmctl/internal/wmctrl"
)

type call struct {
	op   string
	args []any
}

type fakeBackend struct {
	windows  []platform.Window
	desktops []platform.Desktop
	current  int
	err      error
	calls    []call
}

func (f *fakeBackend) record(op string, args ...any) {
	f.calls = append(f.calls, call{op: op, args: args})
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) {
	f.record("ListWindows")
	return f.windows, f.err
}

func (f *fakeBackend) Desktops() ([]platform.Desktop, error) {
	f.record("Desktops")
	return f.desktops, f.err
}

func (f *fakeBackend) CurrentDesktop() (int, error) {
	f.record("CurrentDesktop")
	return f.current, f.err
}

func (f *fakeBackend) MoveResize(windowID string, bounds platform.Rect) error {
	f.record("MoveResize", windowID, bounds)
	return f.err
}

func (f *fakeBackend) Activate(windowID string) error {
	f.record("Activate", windowID)
	return f.err
}

func (f *fakeBackend) Raise(windowID string) error {
	f.record("Raise", windowID)
	return f.err
}

func (f *fakeBackend) Close(windowID string) error {
	f.record("Close", windowID)
	return f.err
}

func (f *fakeBackend) SetTitle(windowID, title string) error {
	f.record("SetTitle", windowID, title)
	return f.err
}

func (f *fakeBackend) ChangeState(windowID string, state wmctrl.State) error {
	f.record("ChangeState", windowID, state.String())
	return f.err
}

func (f *fakeBackend) MoveToDesktop(windowID string, desktop int) error {
	f.record("MoveToDesktop", windowID, desktop)
	return f.err
}

func (f *fakeBackend) SwitchDesktop(desktop int) error {
	f.record("SwitchDesktop", desktop)
	return f.err
}

func (f *fakeBackend) lastCall(t *testing.T) call {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatal("no backend calls recorded")
	}
	return f.calls[len(f.calls)-1]
}

func newTestServer(t *testing.T, b *fakeBackend) *Server {
	t.Helper()
	return NewServer(&config.Config{}, b, nil)
}

func testWindows() []platform.Window {
	return []platform.Window{
		{
			ID: "0x03a00003", Desktop: -1, PID: 1200,
			Class: "xfce4-panel.Xfce4-panel", Title: "panel",
			Bounds: platform.Rect{Y: 1052, Width: 1920, Height: 28},
		},
		{
			ID: "0x04e00004", Desktop: 0, PID: 9031,
			Class: "Navigator.firefox", Title: "Issue tracker - Firefox",
			Bounds: platform.Rect{X: 10, Y: 52, Width: 1200, Height: 800},
		},
		{
			ID: "0x05200002", Desktop: 1, PID: 9400,
			Class: "gnome-terminal.Gnome-terminal", Title: "shell",
			Bounds: platform.Rect{X: 0, Y: 28, Width: 800, Height: 600},
		},
	}
}

func TestListWindows(t *testing.T) {
	b := &fakeBackend{windows: testWindows()}
	s := newTestServer(t, b)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows err=%v", err)
	}
	if len(out.Windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(out.Windows))
	}
	if !out.Windows[0].Sticky {
		t.Fatal("panel window should be sticky")
	}

	_, out, err = s.handleListWindows(context.Background(), nil, ListWindowsInput{Class: "firefox"})
	if err != nil {
		t.Fatalf("list_windows err=%v", err)
	}
	if len(out.Windows) != 1 || out.Windows[0].ID != "0x04e00004" {
		t.Fatalf("class filter got %+v", out.Windows)
	}

	desktop := 1
	_, out, err = s.handleListWindows(context.Background(), nil, ListWindowsInput{Desktop: &desktop})
	if err != nil {
		t.Fatalf("list_windows err=%v", err)
	}
	// Desktop 1 window plus the sticky panel.
	if len(out.Windows) != 2 {
		t.Fatalf("desktop filter got %+v", out.Windows)
	}
}

func TestListDesktops(t *testing.T) {
	b := &fakeBackend{desktops: []platform.Desktop{
		{Number: 0, Current: true, Title: "main", Bounds: platform.Rect{Width: 1920, Height: 1080}},
		{Number: 1, Title: "web", Bounds: platform.Rect{Width: 1920, Height: 1080}},
	}}
	s := newTestServer(t, b)

	_, out, err := s.handleListDesktops(context.Background(), nil, ListDesktopsInput{})
	if err != nil {
		t.Fatalf("list_desktops err=%v", err)
	}
	if len(out.Desktops) != 2 {
		t.Fatalf("got %d desktops, want 2", len(out.Desktops))
	}
	if !out.Desktops[0].Current || out.Desktops[0].Width != 1920 {
		t.Fatalf("desktop 0 = %+v", out.Desktops[0])
	}
}

func TestActivateWindow(t *testing.T) {
	b := &fakeBackend{}
	s := newTestServer(t, b)

	if _, _, err := s.handleActivateWindow(context.Background(), nil, ActivateWindowInput{}); err == nil {
		t.Fatal("expected error for missing window_id")
	}

	_, out, err := s.handleActivateWindow(context.Background(), nil, ActivateWindowInput{WindowID: "0x04e00004"})
	if err != nil {
		t.Fatalf("activate_window err=%v", err)
	}
	if out.WindowID != "0x04e00004" {
		t.Fatalf("out=%+v", out)
	}
	c := b.lastCall(t)
	if c.op != "Activate" || c.args[0] != "0x04e00004" {
		t.Fatalf("backend call=%+v", c)
	}
}

func TestMoveResizeWindowRejectsBadSize(t *testing.T) {
	s := newTestServer(t, &fakeBackend{})
	_, _, err := s.handleMoveResizeWindow(context.Background(), nil, MoveResizeWindowInput{
		WindowID: "0x01", X: 0, Y: 0, Width: 0, Height: 100,
	})
	if err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestSetWindowState(t *testing.T) {
	b := &fakeBackend{}
	s := newTestServer(t, b)

	_, out, err := s.handleSetWindowState(context.Background(), nil, SetWindowStateInput{
		WindowID:   "0x04e00004",
		Action:     "add",
		Properties: []string{"maximized_vert", "maximized_horz"},
	})
	if err != nil {
		t.Fatalf("set_window_state err=%v", err)
	}
	if out.State != "add,maximized_vert,maximized_horz" {
		t.Fatalf("state=%q", out.State)
	}
	c := b.lastCall(t)
	if c.op != "ChangeState" || c.args[1] != "add,maximized_vert,maximized_horz" {
		t.Fatalf("backend call=%+v", c)
	}

	cases := []SetWindowStateInput{
		{WindowID: "0x01", Action: "push", Properties: []string{"above"}},
		{WindowID: "0x01", Action: "add", Properties: []string{"bogus"}},
		{WindowID: "0x01", Action: "add", Properties: []string{"above", "below", "hidden"}},
		{WindowID: "0x01", Action: "add"},
	}
	for _, in := range cases {
		if _, _, err := s.handleSetWindowState(context.Background(), nil, in); err == nil {
			t.Fatalf("expected error for %+v", in)
		}
	}
}

func TestMoveWindowToDesktopSticky(t *testing.T) {
	b := &fakeBackend{}
	s := newTestServer(t, b)

	_, out, err := s.handleMoveWindowToDesktop(context.Background(), nil, MoveWindowToDesktopInput{
		WindowID: "0x04e00004",
		Desktop:  -1,
	})
	if err != nil {
		t.Fatalf("move_window_to_desktop err=%v", err)
	}
	if out.Desktop != -1 {
		t.Fatalf("out=%+v", out)
	}

	if _, _, err := s.handleMoveWindowToDesktop(context.Background(), nil, MoveWindowToDesktopInput{
		WindowID: "0x04e00004",
		Desktop:  -2,
	}); err == nil {
		t.Fatal("expected error for desktop -2")
	}
}

func TestSwitchDesktop(t *testing.T) {
	b := &fakeBackend{}
	s := newTestServer(t, b)

	if _, _, err := s.handleSwitchDesktop(context.Background(), nil, SwitchDesktopInput{Desktop: -1}); err == nil {
		t.Fatal("expected error for negative desktop")
	}
	if _, _, err := s.handleSwitchDesktop(context.Background(), nil, SwitchDesktopInput{Desktop: 2}); err != nil {
		t.Fatalf("switch_desktop err=%v", err)
	}
	c := b.lastCall(t)
	if c.op != "SwitchDesktop" || c.args[0] != 2 {
		t.Fatalf("backend call=%+v", c)
	}
}

func TestApplyLayout(t *testing.T) {
	b := &fakeBackend{
		current: 0,
		windows: []platform.Window{
			{ID: "0x01", Desktop: 0, Class: "term", Title: "one"},
			{ID: "0x02", Desktop: 0, Class: "term", Title: "two"},
		},
		desktops: []platform.Desktop{
			{Number: 0, Current: true, WorkArea: platform.Rect{Width: 1920, Height: 1052}},
		},
	}
	s := newTestServer(t, b)

	_, out, err := s.handleApplyLayout(context.Background(), nil, ApplyLayoutInput{Layout: "grid"})
	if err != nil {
		t.Fatalf("apply_layout err=%v", err)
	}
	if out.WindowsTiled != 2 {
		t.Fatalf("tiled %d windows, want 2", out.WindowsTiled)
	}

	moved := 0
	for _, c := range b.calls {
		if c.op == "MoveResize" {
			moved++
		}
	}
	if moved != 2 {
		t.Fatalf("backend saw %d MoveResize calls, want 2", moved)
	}
}

func TestApplyLayoutUnknownLayout(t *testing.T) {
	s := newTestServer(t, &fakeBackend{})
	_, _, err := s.handleApplyLayout(context.Background(), nil, ApplyLayoutInput{Layout: "diagonal"})
	if err == nil {
		t.Fatal("expected error for unknown layout")
	}
	if !strings.Contains(err.Error(), "available") {
		t.Fatalf("error should list available layouts: %v", err)
	}
}
