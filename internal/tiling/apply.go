package tiling

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/platform"
)

// SelectWindows lists the windows a layout application should touch: windows
// on the current desktop (sticky ones included) matching the class/title
// substrings. Empty matchers match everything. Results are ordered by window
// id so repeated applications assign the same slots.
func SelectWindows(b platform.Backend, class, title string) ([]platform.Window, error) {
	windows, err := b.ListWindows()
	if err != nil {
		return nil, err
	}
	current, err := b.CurrentDesktop()
	if err != nil {
		return nil, err
	}

	classNeedle := strings.ToLower(class)
	titleNeedle := strings.ToLower(title)

	var selected []platform.Window
	for _, w := range windows {
		if w.Desktop != current && !w.Sticky() {
			continue
		}
		if classNeedle != "" && !strings.Contains(strings.ToLower(w.Class), classNeedle) {
			continue
		}
		if titleNeedle != "" && !strings.Contains(strings.ToLower(w.Title), titleNeedle) {
			continue
		}
		selected = append(selected, w)
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].ID < selected[j].ID
	})
	return selected, nil
}

// Apply tiles the given windows into the layout on the current desktop's
// work area. Windows beyond the layout's capacity are left alone.
func Apply(b platform.Backend, layout *config.Layout, gapSize int, windows []platform.Window) error {
	if len(windows) == 0 {
		return fmt.Errorf("no windows to tile")
	}

	area, err := platform.CurrentWorkArea(b)
	if err != nil {
		return err
	}
	region := ApplyRegion(area, layout.TileRegion)

	positions, err := CalculatePositionsWithLayout(len(windows), region, layout, gapSize)
	if err != nil {
		return err
	}

	for i, pos := range positions {
		if err := b.MoveResize(windows[i].ID, pos); err != nil {
			return fmt.Errorf("move window %s: %w", windows[i].ID, err)
		}
	}
	return nil
}
