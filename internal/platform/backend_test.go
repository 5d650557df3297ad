package platform

import (
	"testing"

	"github.com/1broseidon/wmctl/internal/wmctrl"
)

type fakeBackend struct {
	Backend
	desktops []Desktop
	err      error
}

func (f *fakeBackend) Desktops() ([]Desktop, error) {
	return f.desktops, f.err
}

func TestCurrentWorkArea(t *testing.T) {
	cases := []struct {
		name     string
		desktops []Desktop
		want     Rect
		wantErr  bool
	}{
		{
			name: "work area of current desktop",
			desktops: []Desktop{
				{Number: 0, WorkArea: Rect{Width: 800, Height: 600}},
				{Number: 1, Current: true, WorkArea: Rect{Y: 28, Width: 1920, Height: 1052}},
			},
			want: Rect{Y: 28, Width: 1920, Height: 1052},
		},
		{
			name: "falls back to desktop bounds",
			desktops: []Desktop{
				{Number: 0, Current: true, Bounds: Rect{Width: 1920, Height: 1080}},
			},
			want: Rect{Width: 1920, Height: 1080},
		},
		{
			name:     "no current desktop",
			desktops: []Desktop{{Number: 0}},
			wantErr:  true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CurrentWorkArea(&fakeBackend{desktops: tc.desktops})
			if (err != nil) != tc.wantErr {
				t.Fatalf("CurrentWorkArea() err=%v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Fatalf("CurrentWorkArea()=%+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestWindowFromWmctrl(t *testing.T) {
	in := wmctrl.Window{
		ID:            "0x04e00004",
		Desktop:       -1,
		PID:           9031,
		Class:         "Navigator.firefox",
		ClientMachine: "myhost",
		Title:         "Issue tracker - Firefox",
		Geometry:      wmctrl.Geometry{X: 10, Y: 52, Width: 1200, Height: 800},
	}
	got := windowFromWmctrl(in)
	want := Window{
		ID:      "0x04e00004",
		Desktop: -1,
		PID:     9031,
		Class:   "Navigator.firefox",
		Host:    "myhost",
		Title:   "Issue tracker - Firefox",
		Bounds:  Rect{X: 10, Y: 52, Width: 1200, Height: 800},
	}
	if got != want {
		t.Fatalf("windowFromWmctrl()=%+v, want %+v", got, want)
	}
	if !got.Sticky() {
		t.Fatal("Sticky()=false for desktop -1")
	}
}

func TestDesktopFromWmctrl(t *testing.T) {
	in := wmctrl.Desktop{
		Number:      1,
		Current:     true,
		Title:       "web",
		Geometry:    wmctrl.Geometry{Width: 1920, Height: 1080},
		WorkArea:    wmctrl.Geometry{Y: 28, Width: 1920, Height: 1052},
		HasWorkArea: true,
	}
	got := desktopFromWmctrl(in)
	want := Desktop{
		Number:   1,
		Current:  true,
		Title:    "web",
		Bounds:   Rect{Width: 1920, Height: 1080},
		WorkArea: Rect{Y: 28, Width: 1920, Height: 1052},
	}
	if got != want {
		t.Fatalf("desktopFromWmctrl()=%+v, want %+v", got, want)
	}
}
