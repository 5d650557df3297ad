package wmctrl

import (
	"fmt"
	"strconv"
	"strings"
)

// WMInfo is the window manager metadata reported by wmctrl -m. Fields the
// window manager does not expose are reported by wmctrl as N/A and left at
// their zero values here.
type WMInfo struct {
	Name  string
	Class string
	PID   int
	// ShowingDesktop reports whether "showing the desktop" mode is on.
	ShowingDesktop bool
}

// Info reads window manager metadata.
//
// Equivalent of wmctrl -m.
func (c *Client) Info() (WMInfo, error) {
	out, err := c.output("-m")
	if err != nil {
		return WMInfo{}, err
	}
	return parseWMInfo(out)
}

// parseWMInfo parses wmctrl -m output, e.g.
//
//	Name: Xfwm4
//	Class: N/A
//	PID: N/A
//	Window manager's "showing the desktop" mode: OFF
func parseWMInfo(out string) (WMInfo, error) {
	var info WMInfo
	seenName := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Name":
			seenName = true
			if value != "N/A" {
				info.Name = value
			}
		case "Class":
			if value != "N/A" {
				info.Class = value
			}
		case "PID":
			if value != "N/A" {
				pid, err := strconv.Atoi(value)
				if err != nil {
					return WMInfo{}, fmt.Errorf("invalid window manager pid %q", value)
				}
				info.PID = pid
			}
		default:
			if strings.Contains(key, "showing the desktop") {
				info.ShowingDesktop = strings.EqualFold(value, "ON")
			}
		}
	}
	if !seenName {
		return WMInfo{}, fmt.Errorf("wmctrl -m output has no Name line")
	}
	return info, nil
}
