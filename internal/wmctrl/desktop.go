package wmctrl

import (
	"fmt"
	"strings"
)

// Point is a viewport position.
type Point struct {
	X int
	Y int
}

// Desktop describes one virtual desktop as reported by wmctrl -d.
type Desktop struct {
	Number   int
	Current  bool
	Geometry Geometry // desktop geometry; only Width/Height are set
	Viewport Point
	// HasViewport is false when the window manager reports the viewport
	// as N/A.
	HasViewport bool
	WorkArea    Geometry
	// HasWorkArea is false when the window manager reports the work area
	// as N/A.
	HasWorkArea bool
	Title       string
}

// Desktops lists all virtual desktops.
//
// Equivalent of wmctrl -d.
func (c *Client) Desktops() ([]Desktop, error) {
	out, err := c.output("-d")
	if err != nil {
		return nil, err
	}

	var desktops []Desktop
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		d, err := parseDesktopLine(line)
		if err != nil {
			return nil, fmt.Errorf("parsing desktop list: %w", err)
		}
		desktops = append(desktops, d)
	}
	return desktops, nil
}

// parseDesktopLine parses one line of wmctrl -d output, e.g.
//
//	0  * DG: 1920x1080  VP: 0,0  WA: 0,25 1920x1055  Workspace 1
//
// The VP and WA sections may each be reported as N/A.
func parseDesktopLine(line string) (Desktop, error) {
	tokens := tokenize(line)
	// Shortest valid form: "N - DG: WxH VP: N/A WA: N/A".
	if len(tokens) < 8 {
		return Desktop{}, fmt.Errorf("desktop line has %d columns, want at least 8: %q", len(tokens), line)
	}

	var d Desktop
	var err error
	if d.Number, err = parseInt("desktop number", tokens[0].text); err != nil {
		return Desktop{}, err
	}

	switch tokens[1].text {
	case "*":
		d.Current = true
	case "-":
	default:
		return Desktop{}, fmt.Errorf("invalid current-desktop marker %q", tokens[1].text)
	}

	if tokens[2].text != "DG:" {
		return Desktop{}, fmt.Errorf("expected DG: column, got %q", tokens[2].text)
	}
	if d.Geometry.Width, d.Geometry.Height, err = parseSize("desktop geometry", tokens[3].text); err != nil {
		return Desktop{}, err
	}

	if tokens[4].text != "VP:" {
		return Desktop{}, fmt.Errorf("expected VP: column, got %q", tokens[4].text)
	}
	if tokens[5].text != "N/A" {
		if d.Viewport.X, d.Viewport.Y, err = parsePair("viewport", tokens[5].text); err != nil {
			return Desktop{}, err
		}
		d.HasViewport = true
	}

	if tokens[6].text != "WA:" {
		return Desktop{}, fmt.Errorf("expected WA: column, got %q", tokens[6].text)
	}
	last := tokens[7]
	if tokens[7].text != "N/A" {
		if len(tokens) < 9 {
			return Desktop{}, fmt.Errorf("work area missing size column: %q", line)
		}
		if d.WorkArea.X, d.WorkArea.Y, err = parsePair("work area position", tokens[7].text); err != nil {
			return Desktop{}, err
		}
		if d.WorkArea.Width, d.WorkArea.Height, err = parseSize("work area size", tokens[8].text); err != nil {
			return Desktop{}, err
		}
		d.HasWorkArea = true
		last = tokens[8]
	}

	d.Title = restAfter(line, last)
	return d, nil
}

// CurrentDesktop returns the number of the currently active desktop.
func (c *Client) CurrentDesktop() (int, error) {
	desktops, err := c.Desktops()
	if err != nil {
		return 0, err
	}
	for _, d := range desktops {
		if d.Current {
			return d.Number, nil
		}
	}
	return 0, fmt.Errorf("no desktop marked current")
}

// SwitchDesktop switches to the given desktop.
//
// Equivalent of wmctrl -s <DESK>.
func (c *Client) SwitchDesktop(desktop int) error {
	return c.run("-s", fmt.Sprintf("%d", desktop))
}

// SetDesktopCount changes the number of virtual desktops.
//
// Equivalent of wmctrl -n <NUM>.
func (c *Client) SetDesktopCount(count int) error {
	if count < 1 {
		return fmt.Errorf("desktop count must be at least 1, got %d", count)
	}
	return c.run("-n", fmt.Sprintf("%d", count))
}

// SetViewport moves the viewport of the current desktop.
//
// Equivalent of wmctrl -o <X>,<Y>.
func (c *Client) SetViewport(x, y int) error {
	return c.run("-o", fmt.Sprintf("%d,%d", x, y))
}

// ShowDesktop turns the window manager's "showing the desktop" mode on
// or off.
//
// Equivalent of wmctrl -k on|off.
func (c *Client) ShowDesktop(on bool) error {
	arg := "off"
	if on {
		arg = "on"
	}
	return c.run("-k", arg)
}
