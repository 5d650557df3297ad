package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/wmctl/internal/wmctrl"
)

func printWindow(w wmctrl.Window) {
	desktop := fmt.Sprintf("%d", w.Desktop)
	if w.Sticky() {
		desktop = "sticky"
	}
	fmt.Printf("%s  %-7s %5d  %4d,%-4d %4dx%-4d %-30s %s\n",
		w.ID, desktop, w.PID,
		w.Geometry.X, w.Geometry.Y, w.Geometry.Width, w.Geometry.Height,
		w.Class, w.Title)
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl list [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List all managed windows with desktop, pid, geometry, class and title.")
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
		fmt.Fprintln(os.Stderr, "list takes no arguments")
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	windows, err := client.Windows()
	if err != nil {
		return fail(err)
	}

	if *jsonOut {
		return encodeJSON(windowsJSON(windows))
	}
	for _, w := range windows {
		printWindow(w)
	}
	return 0
}

func runFind(args []string) int {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl find [--class STR] [--title STR] [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Find windows whose class or title contains a substring (case-insensitive).")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	class := fs.String("class", "", "Class substring to match")
	title := fs.String("title", "", "Title substring to match")
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *class == "" && *title == "" {
		fmt.Fprintln(os.Stderr, "find requires --class or --title")
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}

	var windows []wmctrl.Window
	if *class != "" {
		windows, err = client.FindByClass(*class)
	} else {
		windows, err = client.FindByTitle(*title)
	}
	if err != nil {
		return fail(err)
	}
	if *class != "" && *title != "" {
		kept := windows[:0]
		needle := strings.ToLower(*title)
		for _, w := range windows {
			if strings.Contains(strings.ToLower(w.Title), needle) {
				kept = append(kept, w)
			}
		}
		windows = kept
	}

	if *jsonOut {
		return encodeJSON(windowsJSON(windows))
	}
	for _, w := range windows {
		printWindow(w)
	}
	return 0
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl move --x N --y N --width N --height N <window-id>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move and resize a window to absolute pixel coordinates.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	x := fs.Int("x", 0, "Target x coordinate")
	y := fs.Int("y", 0, "Target y coordinate")
	width := fs.Int("width", 0, "Target width in pixels")
	height := fs.Int("height", 0, "Target height in pixels")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "move requires <window-id>")
		fs.Usage()
		return 2
	}
	if *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "move requires positive --width and --height")
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	t := wmctrl.NewTransformation(*x, *y, *width, *height)
	if err := client.Select(fs.Arg(0)).Transform(t); err != nil {
		return fail(err)
	}
	return 0
}

func runActivate(args []string) int {
	return runWindowOp(args, "activate",
		"Switch the window to the current desktop, raise it and give it focus.",
		func(w *wmctrl.Window) error { return w.Activate() })
}

func runRaise(args []string) int {
	return runWindowOp(args, "raise",
		"Switch to the window's desktop, raise the window and give it focus.",
		func(w *wmctrl.Window) error { return w.Raise() })
}

// runWindowOp handles single-argument window subcommands.
func runWindowOp(args []string, name, doc string, op func(*wmctrl.Window) error) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wmctl %s <window-id>\n\n%s\n", name, doc)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%s requires <window-id>\n", name)
		fs.Usage()
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := op(client.Select(fs.Arg(0))); err != nil {
		return fail(err)
	}
	return 0
}

func runClose(args []string) int {
	fs := flag.NewFlagSet("close", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl close [--yes] <window-id>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Close a window gracefully, asking for confirmation on a terminal.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "close requires <window-id>")
		fs.Usage()
		return 2
	}
	id := fs.Arg(0)

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}

	if !*yes {
		w, err := client.WindowByID(id)
		label := id
		if err == nil {
			label = fmt.Sprintf("%s (%s)", w.Title, id)
		}
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Close %s?", label)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return fail(err)
		}
		if !confirmed {
			return 0
		}
	}

	if err := client.Select(id).Close(); err != nil {
		return fail(err)
	}
	return 0
}

func runRename(args []string) int {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl rename [--icon|--both] <window-id> <title>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Set a window's title, icon title, or both.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	icon := fs.Bool("icon", false, "Set the icon title instead of the window title")
	both := fs.Bool("both", false, "Set the window title and icon title at once")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "rename requires <window-id> and <title>")
		fs.Usage()
		return 2
	}
	if *icon && *both {
		fmt.Fprintln(os.Stderr, "--icon and --both are mutually exclusive")
		return 2
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	w := client.Select(fs.Arg(0))
	title := fs.Arg(1)
	switch {
	case *icon:
		err = w.SetIconTitle(title)
	case *both:
		err = w.SetBothTitles(title)
	default:
		err = w.SetTitle(title)
	}
	if err != nil {
		return fail(err)
	}
	return 0
}

func runState(args []string) int {
	fs := flag.NewFlagSet("state", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl state <window-id> <action> <property> [property]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Change window state. Action is add, remove or toggle; properties are")
		fmt.Fprintln(os.Stderr, "modal, sticky, maximized_vert, maximized_horz, shaded, skip_taskbar,")
		fmt.Fprintln(os.Stderr, "skip_pager, hidden, fullscreen, above, below. At most two per call.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Example: wmctl state 0x04e00004 add maximized_vert maximized_horz")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() < 3 || fs.NArg() > 4 {
		fmt.Fprintln(os.Stderr, "state requires <window-id> <action> and one or two properties")
		fs.Usage()
		return 2
	}

	action, err := wmctrl.ParseAction(fs.Arg(1))
	if err != nil {
		return fail(err)
	}
	props := make([]wmctrl.Property, 0, 2)
	for _, arg := range fs.Args()[2:] {
		prop, err := wmctrl.ParseProperty(arg)
		if err != nil {
			return fail(err)
		}
		props = append(props, prop)
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := client.Select(fs.Arg(0)).ChangeState(wmctrl.State{Action: action, Properties: props}); err != nil {
		return fail(err)
	}
	return 0
}

func runToDesktop(args []string) int {
	fs := flag.NewFlagSet("to-desktop", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl to-desktop <window-id> <desktop>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move a window to a desktop number. Use -1 to make it sticky.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "to-desktop requires <window-id> and <desktop>")
		fs.Usage()
		return 2
	}
	desktop, err := parseIntArg("desktop", fs.Arg(1))
	if err != nil {
		return fail(err)
	}
	if desktop < -1 {
		return fail(fmt.Errorf("invalid desktop %d", desktop))
	}

	_, client, _, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if err := client.Select(fs.Arg(0)).MoveToDesktop(desktop); err != nil {
		return fail(err)
	}
	return 0
}

type windowJSON struct {
	ID      string `json:"id"`
	Desktop int    `json:"desktop"`
	Sticky  bool   `json:"sticky"`
	PID     int    `json:"pid"`
	Class   string `json:"class"`
	Host    string `json:"host"`
	Title   string `json:"title"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func windowsJSON(windows []wmctrl.Window) []windowJSON {
	out := make([]windowJSON, 0, len(windows))
	for _, w := range windows {
		out = append(out, windowJSON{
			ID:      w.ID,
			Desktop: w.Desktop,
			Sticky:  w.Sticky(),
			PID:     w.PID,
			Class:   w.Class,
			Host:    w.ClientMachine,
			Title:   w.Title,
			X:       w.Geometry.X,
			Y:       w.Geometry.Y,
			Width:   w.Geometry.Width,
			Height:  w.Geometry.Height,
		})
	}
	return out
}

func encodeJSON(v any) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail(err)
	}
	return 0
}

func parseIntArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}
