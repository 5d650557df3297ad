package wmctrl

import "fmt"

// Window is a top-level window managed by the window manager. Instances are
// only obtained through Client.Windows; callers never construct one.
//
// Mutation methods issue the matching wmctrl command and mirror the change
// into the local fields. The window manager is free to ignore the request,
// in which case the local fields diverge from the real window state. wmctrl
// gives no way to detect that, and this package does not try to.
type Window struct {
	ID            string
	Desktop       int // -1 means sticky (visible on all desktops)
	PID           int
	ClientMachine string
	Class         string
	Title         string
	Geometry      Geometry

	client *Client
}

// target returns the wmctrl arguments selecting this window by id.
func (w *Window) target() []string {
	return []string{"-i", "-r", w.ID}
}

// SetTitle sets the window title.
//
// Equivalent of wmctrl -i -r <WIN> -N <STR>.
func (w *Window) SetTitle(title string) error {
	if err := w.client.run(append(w.target(), "-N", title)...); err != nil {
		return err
	}
	w.Title = title
	return nil
}

// SetIconTitle sets the icon title (short title) of the window.
//
// Equivalent of wmctrl -i -r <WIN> -I <STR>.
func (w *Window) SetIconTitle(title string) error {
	return w.client.run(append(w.target(), "-I", title)...)
}

// SetBothTitles sets the title and the icon title at once.
//
// Equivalent of wmctrl -i -r <WIN> -T <STR>.
func (w *Window) SetBothTitles(title string) error {
	if err := w.client.run(append(w.target(), "-T", title)...); err != nil {
		return err
	}
	w.Title = title
	return nil
}

// ChangeState changes a window state property, e.g. makes the window
// fullscreen or maximized.
//
// Equivalent of wmctrl -i -r <WIN> -b <STARG>.
func (w *Window) ChangeState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	return w.client.run(append(w.target(), "-b", state.String())...)
}

// Transform moves and resizes the window.
//
// Equivalent of wmctrl -i -r <WIN> -e <MVARG>.
func (w *Window) Transform(t Transformation) error {
	if err := w.client.run(append(w.target(), "-e", t.String())...); err != nil {
		return err
	}
	w.Geometry = t.Geometry()
	return nil
}

// MoveToDesktop moves the window to the given desktop.
//
// Equivalent of wmctrl -i -r <WIN> -t <DESK>.
func (w *Window) MoveToDesktop(desktop int) error {
	if err := w.client.run(append(w.target(), "-t", fmt.Sprintf("%d", desktop))...); err != nil {
		return err
	}
	w.Desktop = desktop
	return nil
}

// Activate moves the window to the current desktop and raises it.
//
// Equivalent of wmctrl -i -R <WIN>.
func (w *Window) Activate() error {
	if err := w.client.run("-i", "-R", w.ID); err != nil {
		return err
	}
	if current, err := w.client.CurrentDesktop(); err == nil {
		w.Desktop = current
	}
	return nil
}

// Raise switches to the window's desktop and raises it.
//
// Equivalent of wmctrl -i -a <WIN>.
func (w *Window) Raise() error {
	return w.client.run("-i", "-a", w.ID)
}

// Close asks the window manager to close the window gracefully.
//
// Equivalent of wmctrl -i -c <WIN>.
func (w *Window) Close() error {
	return w.client.run("-i", "-c", w.ID)
}

// Sticky reports whether the window is visible on all desktops.
func (w *Window) Sticky() bool {
	return w.Desktop == -1
}
