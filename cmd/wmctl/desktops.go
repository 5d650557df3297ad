package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/wmctl/internal/wmctrl"
)

func runDesktops(args []string) int {
	fs := flag.NewFlagSet("desktops", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl desktops [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List virtual desktops with geometry, viewport and work area.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "desktops takes no arguments")
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	desktops, err := client.Desktops()
	if err != nil {
		return fail(err)
	}

	if *jsonOut {
		return encodeJSON(desktopsJSON(desktops))
	}
	for _, d := range desktops {
		marker := " "
		if d.Current {
			marker = "*"
		}
		workArea := "N/A"
		if d.HasWorkArea {
			workArea = fmt.Sprintf("%d,%d %dx%d",
				d.WorkArea.X, d.WorkArea.Y, d.WorkArea.Width, d.WorkArea.Height)
		}
		geometry := fmt.Sprintf("%dx%d", d.Geometry.Width, d.Geometry.Height)
		fmt.Printf("%d %s %-11s WA: %-22s %s\n",
			d.Number, marker, geometry, workArea, d.Title)
	}
	return 0
}

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl info")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the running window manager's name, class, pid and show-desktop state.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "info takes no arguments")
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	info, err := client.Info()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("name:            %s\n", info.Name)
	fmt.Printf("class:           %s\n", info.Class)
	fmt.Printf("pid:             %d\n", info.PID)
	fmt.Printf("showing_desktop: %v\n", info.ShowingDesktop)
	return 0
}

func runSwitch(args []string) int {
	fs := flag.NewFlagSet("switch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl switch <desktop>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Switch the current desktop.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "switch requires <desktop>")
		fs.Usage()
		return 2
	}
	desktop, err := parseIntArg("desktop", fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	if desktop < 0 {
		return fail(fmt.Errorf("invalid desktop %d", desktop))
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := client.SwitchDesktop(desktop); err != nil {
		return fail(err)
	}
	return 0
}

func runViewport(args []string) int {
	fs := flag.NewFlagSet("viewport", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl viewport <x> <y>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move the viewport of the current desktop. Only meaningful on window")
		fmt.Fprintln(os.Stderr, "managers that use large desktops with viewports.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "viewport requires <x> and <y>")
		fs.Usage()
		return 2
	}
	x, err := parseIntArg("x", fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	y, err := parseIntArg("y", fs.Arg(1))
	if err != nil {
		return fail(err)
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := client.SetViewport(x, y); err != nil {
		return fail(err)
	}
	return 0
}

func runShowDesktop(args []string) int {
	fs := flag.NewFlagSet("show-desktop", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl show-desktop on|off")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Enter or leave the window manager's show-desktop mode.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 || (fs.Arg(0) != "on" && fs.Arg(0) != "off") {
		fmt.Fprintln(os.Stderr, "show-desktop requires on or off")
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := client.ShowDesktop(fs.Arg(0) == "on"); err != nil {
		return fail(err)
	}
	return 0
}

func runDesktopCount(args []string) int {
	fs := flag.NewFlagSet("desktop-count", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl desktop-count <count>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Change the number of virtual desktops.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "desktop-count requires <count>")
		fs.Usage()
		return 2
	}
	count, err := parseIntArg("count", fs.Arg(0))
	if err != nil {
		return fail(err)
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := client.SetDesktopCount(count); err != nil {
		return fail(err)
	}
	return 0
}

type desktopJSON struct {
	Number   int        `json:"number"`
	Current  bool       `json:"current"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Viewport *pointJSON `json:"viewport,omitempty"`
	WorkArea *rectJSON  `json:"work_area,omitempty"`
	Title    string     `json:"title"`
}

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type rectJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func desktopsJSON(desktops []wmctrl.Desktop) []desktopJSON {
	out := make([]desktopJSON, 0, len(desktops))
	for _, d := range desktops {
		entry := desktopJSON{
			Number:  d.Number,
			Current: d.Current,
			Width:   d.Geometry.Width,
			Height:  d.Geometry.Height,
			Title:   d.Title,
		}
		if d.HasViewport {
			entry.Viewport = &pointJSON{X: d.Viewport.X, Y: d.Viewport.Y}
		}
		if d.HasWorkArea {
			entry.WorkArea = &rectJSON{
				X: d.WorkArea.X, Y: d.WorkArea.Y,
				Width: d.WorkArea.Width, Height: d.WorkArea.Height,
			}
		}
		out = append(out, entry)
	}
	return out
}
