package platform

import (
	"errors"

	"github.com/1broseidon/wmctl/internal/wmctrl"
)

var errNoCurrentDesktop = errors.New("no desktop marked current")

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window contains metadata and geometry for a top-level window.
type Window struct {
	ID      string
	Desktop int // -1 means sticky (visible on all desktops)
	PID     int
	Class   string
	Host    string
	Title   string
	Bounds  Rect
}

// Sticky reports whether the window is visible on all desktops.
func (w Window) Sticky() bool {
	return w.Desktop == -1
}

// Desktop describes a virtual desktop and its usable work area.
type Desktop struct {
	Number   int
	Current  bool
	Bounds   Rect
	WorkArea Rect
	Title    string
}

// Backend abstracts window-management operations so consumers can be tested
// against a fake. The only production implementation shells out to wmctrl.
type Backend interface {
	ListWindows() ([]Window, error)
	Desktops() ([]Desktop, error)
	CurrentDesktop() (int, error)
	MoveResize(windowID string, bounds Rect) error
	Activate(windowID string) error
	Raise(windowID string) error
	Close(windowID string) error
	SetTitle(windowID, title string) error
	ChangeState(windowID string, state wmctrl.State) error
	MoveToDesktop(windowID string, desktop int) error
	SwitchDesktop(desktop int) error
}

// CurrentWorkArea returns the work area of the current desktop, falling
// back to the desktop geometry when the window manager does not report a
// work area.
func CurrentWorkArea(b Backend) (Rect, error) {
	desktops, err := b.Desktops()
	if err != nil {
		return Rect{}, err
	}
	for _, d := range desktops {
		if d.Current {
			if d.WorkArea.Width > 0 && d.WorkArea.Height > 0 {
				return d.WorkArea, nil
			}
			return d.Bounds, nil
		}
	}
	return Rect{}, errNoCurrentDesktop
}
