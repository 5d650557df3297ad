package platform

import (
	"github.com/1broseidon/wmctl/internal/wmctrl"
)

// WmctrlBackend implements Backend on top of the wmctrl binding.
type WmctrlBackend struct {
	client *wmctrl.Client
}

var _ Backend = (*WmctrlBackend)(nil)

// NewWmctrlBackend creates a backend that shells out to wmctrl.
func NewWmctrlBackend(client *wmctrl.Client) *WmctrlBackend {
	return &WmctrlBackend{client: client}
}

// Available reports whether the wmctrl executable can be found.
func (b *WmctrlBackend) Available() bool {
	return b.client.Available()
}

// ListWindows lists all managed windows.
func (b *WmctrlBackend) ListWindows() ([]Window, error) {
	wins, err := b.client.Windows()
	if err != nil {
		return nil, err
	}
	windows := make([]Window, 0, len(wins))
	for _, w := range wins {
		windows = append(windows, windowFromWmctrl(w))
	}
	return windows, nil
}

// Desktops lists all virtual desktops.
func (b *WmctrlBackend) Desktops() ([]Desktop, error) {
	desks, err := b.client.Desktops()
	if err != nil {
		return nil, err
	}
	desktops := make([]Desktop, 0, len(desks))
	for _, d := range desks {
		desktops = append(desktops, desktopFromWmctrl(d))
	}
	return desktops, nil
}

// CurrentDesktop returns the number of the active desktop.
func (b *WmctrlBackend) CurrentDesktop() (int, error) {
	return b.client.CurrentDesktop()
}

// MoveResize moves and resizes a window to the specified bounds.
func (b *WmctrlBackend) MoveResize(windowID string, bounds Rect) error {
	return b.client.Select(windowID).Transform(wmctrl.NewTransformation(
		bounds.X, bounds.Y, bounds.Width, bounds.Height,
	))
}

// Activate moves a window to the current desktop and raises it.
func (b *WmctrlBackend) Activate(windowID string) error {
	return b.client.Select(windowID).Activate()
}

// Raise switches to the window's desktop and raises it.
func (b *WmctrlBackend) Raise(windowID string) error {
	return b.client.Select(windowID).Raise()
}

// Close requests a graceful window close.
func (b *WmctrlBackend) Close(windowID string) error {
	return b.client.Select(windowID).Close()
}

// SetTitle renames a window.
func (b *WmctrlBackend) SetTitle(windowID, title string) error {
	return b.client.Select(windowID).SetTitle(title)
}

// ChangeState changes a window state property.
func (b *WmctrlBackend) ChangeState(windowID string, state wmctrl.State) error {
	return b.client.Select(windowID).ChangeState(state)
}

// MoveToDesktop moves a window to the given desktop.
func (b *WmctrlBackend) MoveToDesktop(windowID string, desktop int) error {
	return b.client.Select(windowID).MoveToDesktop(desktop)
}

// SwitchDesktop switches to the given desktop.
func (b *WmctrlBackend) SwitchDesktop(desktop int) error {
	return b.client.SwitchDesktop(desktop)
}

func windowFromWmctrl(w wmctrl.Window) Window {
	return Window{
		ID:      w.ID,
		Desktop: w.Desktop,
		PID:     w.PID,
		Class:   w.Class,
		Host:    w.ClientMachine,
		Title:   w.Title,
		Bounds: Rect{
			X:      w.Geometry.X,
			Y:      w.Geometry.Y,
			Width:  w.Geometry.Width,
			Height: w.Geometry.Height,
		},
	}
}

func desktopFromWmctrl(d wmctrl.Desktop) Desktop {
	desk := Desktop{
		Number:  d.Number,
		Current: d.Current,
		Title:   d.Title,
		Bounds: Rect{
			Width:  d.Geometry.Width,
			Height: d.Geometry.Height,
		},
	}
	if d.HasWorkArea {
		desk.WorkArea = Rect{
			X:      d.WorkArea.X,
			Y:      d.WorkArea.Y,
			Width:  d.WorkArea.Width,
			Height: d.WorkArea.Height,
		}
	}
	return desk
}
