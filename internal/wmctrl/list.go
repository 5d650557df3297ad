package wmctrl

import (
	"fmt"
	"strings"
)

// windowListColumns is the fixed column count of wmctrl -l -G -p -x output
// before the free-form title: id, desktop, pid, x, y, width, height,
// class, client machine.
const windowListColumns = 9

// Windows lists all windows managed by the window manager.
//
// Equivalent of wmctrl -l -G -p -x.
func (c *Client) Windows() ([]Window, error) {
	out, err := c.output("-l", "-G", "-p", "-x")
	if err != nil {
		return nil, err
	}

	var windows []Window
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w, err := parseWindowLine(line)
		if err != nil {
			return nil, fmt.Errorf("parsing window list: %w", err)
		}
		w.client = c
		windows = append(windows, w)
	}
	return windows, nil
}

// parseWindowLine parses one line of wmctrl -l -G -p -x output, e.g.
//
//	0x03a00003 -1 2342 0 0 1920 28 xfce4-panel.Xfce4-panel myhost xfce4-panel
func parseWindowLine(line string) (Window, error) {
	tokens := tokenize(line)
	if len(tokens) < windowListColumns {
		return Window{}, fmt.Errorf("window line has %d columns, want at least %d: %q", len(tokens), windowListColumns, line)
	}

	desktop, err := parseInt("desktop", tokens[1].text)
	if err != nil {
		return Window{}, err
	}
	pid, err := parseInt("pid", tokens[2].text)
	if err != nil {
		return Window{}, err
	}

	var geom Geometry
	if geom.X, err = parseInt("x", tokens[3].text); err != nil {
		return Window{}, err
	}
	if geom.Y, err = parseInt("y", tokens[4].text); err != nil {
		return Window{}, err
	}
	if geom.Width, err = parseInt("width", tokens[5].text); err != nil {
		return Window{}, err
	}
	if geom.Height, err = parseInt("height", tokens[6].text); err != nil {
		return Window{}, err
	}

	return Window{
		ID:            tokens[0].text,
		Desktop:       desktop,
		PID:           pid,
		Geometry:      geom,
		Class:         tokens[7].text,
		ClientMachine: tokens[8].text,
		Title:         restAfter(line, tokens[8]),
	}, nil
}

// FindByTitle returns the windows whose title contains the given string,
// case-insensitively.
func (c *Client) FindByTitle(title string) ([]Window, error) {
	return c.findWindows(func(w Window) string { return w.Title }, title)
}

// FindByClass returns the windows whose WM_CLASS contains the given string,
// case-insensitively.
func (c *Client) FindByClass(class string) ([]Window, error) {
	return c.findWindows(func(w Window) string { return w.Class }, class)
}

func (c *Client) findWindows(key func(Window) string, substr string) ([]Window, error) {
	windows, err := c.Windows()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(substr)
	var matched []Window
	for _, w := range windows {
		if strings.Contains(strings.ToLower(key(w)), needle) {
			matched = append(matched, w)
		}
	}
	return matched, nil
}

// Select returns a handle for the window with the given id without listing
// windows first. The handle carries no metadata; it is only good for
// issuing commands.
func (c *Client) Select(id string) *Window {
	return &Window{ID: id, Desktop: -1, client: c}
}

// WindowByID returns the window with the given id, or an error when no such
// window exists.
func (c *Client) WindowByID(id string) (Window, error) {
	windows, err := c.Windows()
	if err != nil {
		return Window{}, err
	}
	for _, w := range windows {
		if strings.EqualFold(w.ID, id) {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("no window with id %s", id)
}
