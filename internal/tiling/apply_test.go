package tiling

import (
	"testing"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/platform"
)

type fakeBackend struct {
	platform.Backend
	windows  []platform.Window
	desktops []platform.Desktop
	current  int
	moved    map[string]platform.Rect
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) {
	return f.windows, nil
}

func (f *fakeBackend) Desktops() ([]platform.Desktop, error) {
	return f.desktops, nil
}

func (f *fakeBackend) CurrentDesktop() (int, error) {
	return f.current, nil
}

func (f *fakeBackend) MoveResize(windowID string, bounds platform.Rect) error {
	if f.moved == nil {
		f.moved = make(map[string]platform.Rect)
	}
	f.moved[windowID] = bounds
	return nil
}

func TestSelectWindows(t *testing.T) {
	b := &fakeBackend{
		current: 1,
		windows: []platform.Window{
			{ID: "0x0c", Desktop: 1, Class: "Navigator.firefox", Title: "Docs"},
			{ID: "0x0a", Desktop: 1, Class: "gnome-terminal.Gnome-terminal", Title: "shell"},
			{ID: "0x0b", Desktop: 0, Class: "Navigator.firefox", Title: "Mail"},
			{ID: "0x0d", Desktop: -1, Class: "xfce4-panel.Xfce4-panel", Title: "panel"},
		},
	}

	got, err := SelectWindows(b, "", "")
	if err != nil {
		t.Fatalf("SelectWindows() err=%v", err)
	}
	// Current desktop plus sticky, ordered by id.
	wantIDs := []string{"0x0a", "0x0c", "0x0d"}
	if len(got) != len(wantIDs) {
		t.Fatalf("selected %d windows, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("selected[%d].ID=%q, want %q", i, got[i].ID, id)
		}
	}

	got, err = SelectWindows(b, "FIREFOX", "")
	if err != nil {
		t.Fatalf("SelectWindows() err=%v", err)
	}
	if len(got) != 1 || got[0].ID != "0x0c" {
		t.Fatalf("class filter selected %+v", got)
	}

	got, err = SelectWindows(b, "", "shell")
	if err != nil {
		t.Fatalf("SelectWindows() err=%v", err)
	}
	if len(got) != 1 || got[0].ID != "0x0a" {
		t.Fatalf("title filter selected %+v", got)
	}
}

func TestApply(t *testing.T) {
	b := &fakeBackend{
		current: 0,
		desktops: []platform.Desktop{
			{Number: 0, Current: true, WorkArea: platform.Rect{X: 0, Y: 0, Width: 210, Height: 100}},
		},
		windows: []platform.Window{
			{ID: "0x01", Desktop: 0},
			{ID: "0x02", Desktop: 0},
		},
	}
	layout := &config.Layout{
		Mode:       config.LayoutModeFixed,
		FixedGrid:  config.FixedGrid{Rows: 1, Cols: 2},
		TileRegion: config.TileRegion{Type: config.RegionFull},
	}

	if err := Apply(b, layout, 10, b.windows); err != nil {
		t.Fatalf("Apply() err=%v", err)
	}
	if len(b.moved) != 2 {
		t.Fatalf("moved %d windows, want 2", len(b.moved))
	}

	// slotWidth=(210-30)/2=90, slotHeight=100-20=80
	want1 := platform.Rect{X: 10, Y: 10, Width: 90, Height: 80}
	want2 := platform.Rect{X: 110, Y: 10, Width: 90, Height: 80}
	if b.moved["0x01"] != want1 {
		t.Fatalf("window 0x01 moved to %+v, want %+v", b.moved["0x01"], want1)
	}
	if b.moved["0x02"] != want2 {
		t.Fatalf("window 0x02 moved to %+v, want %+v", b.moved["0x02"], want2)
	}
}

func TestApplyNoWindows(t *testing.T) {
	b := &fakeBackend{
		desktops: []platform.Desktop{
			{Number: 0, Current: true, Bounds: platform.Rect{Width: 800, Height: 600}},
		},
	}
	layout := &config.Layout{Mode: config.LayoutModeAuto}
	if err := Apply(b, layout, 8, nil); err == nil {
		t.Fatal("Apply() expected error for empty window set")
	}
}
