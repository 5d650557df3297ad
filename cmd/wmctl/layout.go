package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/tiling"
)

func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  wmctl layout list [--json]")
	fmt.Fprintln(w, "  wmctl layout apply [--class STR] [--title STR] [--gap N] <layout>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wmctl layout <command> --help' for command-specific options.")
}

func runLayout(args []string) int {
	if len(args) == 0 {
		printLayoutUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printLayoutUsage(os.Stdout)
		return 0
	}

	switch args[0] {
	case "list":
		return runLayoutList(args[1:])
	case "apply":
		return runLayoutApply(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown layout command: %s\n\n", args[0])
		printLayoutUsage(os.Stderr)
		return 2
	}
}

func runLayoutList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl layout list [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List available layouts, builtins and user-defined.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output full layout details as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "layout list takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(err)
	}

	if *jsonOut {
		return encodeJSON(layoutsJSON(cfg))
	}
	layouts := cfg.EffectiveLayouts()
	for _, name := range cfg.LayoutNames() {
		l := layouts[name]
		fmt.Printf("%-14s %s\n", name, layoutSummary(l))
	}
	return 0
}

func layoutSummary(l config.Layout) string {
	switch l.Mode {
	case config.LayoutModeFixed:
		return fmt.Sprintf("fixed %dx%d", l.FixedGrid.Rows, l.FixedGrid.Cols)
	case config.LayoutModeMasterStack:
		return fmt.Sprintf("master-stack %d%% + %dx%d stack",
			l.MasterStack.MasterWidthPercent, l.MasterStack.MaxStackRows, l.MasterStack.MaxStackCols)
	default:
		s := string(l.Mode)
		if l.TileRegion.Type != "" && l.TileRegion.Type != config.RegionFull {
			s += " on " + string(l.TileRegion.Type)
		}
		return s
	}
}

func runLayoutApply(args []string) int {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmctl layout apply [--class STR] [--title STR] [--gap N] <layout>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Tile windows on the current desktop into a layout. Without --class or")
		fmt.Fprintln(os.Stderr, "--title, config rules bound to the layout pick the windows; with no")
		fmt.Fprintln(os.Stderr, "matching rule, all windows on the current desktop are tiled.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	class := fs.String("class", "", "Only tile windows whose class contains this substring")
	title := fs.String("title", "", "Only tile windows whose title contains this substring")
	gap := fs.Int("gap", -1, "Gap between windows in pixels (default: from config)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "layout apply requires <layout>")
		fs.Usage()
		return 2
	}
	name := fs.Arg(0)

	cfg, _, backend, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	layout, err := cfg.GetLayout(name)
	if err != nil {
		return fail(err)
	}

	// Explicit flags beat config rules.
	if *class == "" && *title == "" {
		if rule, ok := cfg.RuleFor(name); ok {
			*class = rule.Class
			*title = rule.Title
		}
	}

	windows, err := tiling.SelectWindows(backend, *class, *title)
	if err != nil {
		return fail(err)
	}
	if len(windows) == 0 {
		return fail(fmt.Errorf("no windows match on the current desktop"))
	}

	gapSize := cfg.Gap()
	if *gap >= 0 {
		gapSize = *gap
	}
	if err := tiling.Apply(backend, &layout, gapSize, windows); err != nil {
		return fail(err)
	}
	fmt.Printf("tiled %d windows into %s\n", len(windows), name)
	return 0
}

type layoutJSON struct {
	Name            string         `json:"name"`
	Mode            string         `json:"mode"`
	TileRegion      tileRegionJSON `json:"tile_region"`
	FixedGrid       *rectGridJSON  `json:"fixed_grid,omitempty"`
	MaxWindowWidth  int            `json:"max_window_width"`
	MaxWindowHeight int            `json:"max_window_height"`
	FlexibleLastRow bool           `json:"flexible_last_row"`
}

type tileRegionJSON struct {
	Type          string `json:"type"`
	XPercent      int    `json:"x_percent,omitempty"`
	YPercent      int    `json:"y_percent,omitempty"`
	WidthPercent  int    `json:"width_percent,omitempty"`
	HeightPercent int    `json:"height_percent,omitempty"`
}

type rectGridJSON struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func layoutsJSON(cfg *config.Config) []layoutJSON {
	layouts := cfg.EffectiveLayouts()
	out := make([]layoutJSON, 0, len(layouts))
	for _, name := range cfg.LayoutNames() {
		l := layouts[name]
		entry := layoutJSON{
			Name:            name,
			Mode:            string(l.Mode),
			MaxWindowWidth:  l.MaxWindowWidth,
			MaxWindowHeight: l.MaxWindowHeight,
			FlexibleLastRow: l.FlexibleLastRow,
			TileRegion: tileRegionJSON{
				Type:          string(l.TileRegion.Type),
				XPercent:      l.TileRegion.XPercent,
				YPercent:      l.TileRegion.YPercent,
				WidthPercent:  l.TileRegion.WidthPercent,
				HeightPercent: l.TileRegion.HeightPercent,
			},
		}
		if l.Mode == config.LayoutModeFixed {
			entry.FixedGrid = &rectGridJSON{Rows: l.FixedGrid.Rows, Cols: l.FixedGrid.Cols}
		}
		out = append(out, entry)
	}
	return out
}
