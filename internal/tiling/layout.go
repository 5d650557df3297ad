package tiling

import (
	"fmt"
	"math"

	"github.com/1broseidon/wmctl/internal/config"
	"github.com/1broseidon/wmctl/internal/platform"
)

// Rect is a window position and size in screen coordinates.
type Rect = platform.Rect

// CalculateGrid determines the optimal grid dimensions for the given number of windows
func CalculateGrid(numWindows int) (rows, cols int) {
	if numWindows == 0 {
		return 0, 0
	}

	// Calculate columns first (ceiling of square root)
	cols = int(math.Ceil(math.Sqrt(float64(numWindows))))

	// Calculate rows needed
	rows = int(math.Ceil(float64(numWindows) / float64(cols)))

	return rows, cols
}

// CalculatePositions computes window positions for a grid layout with gaps
func CalculatePositions(numWindows int, area Rect, gapSize int) []Rect {
	if numWindows == 0 {
		return nil
	}

	rows, cols := CalculateGrid(numWindows)

	// Cell dimensions accounting for gaps: one gap before each column and
	// one after the last.
	totalHorizontalGaps := (cols + 1) * gapSize
	totalVerticalGaps := (rows + 1) * gapSize

	cellWidth := (area.Width - totalHorizontalGaps) / cols
	cellHeight := (area.Height - totalVerticalGaps) / rows

	positions := make([]Rect, numWindows)

	for i := 0; i < numWindows; i++ {
		row := i / cols
		col := i % cols

		positions[i] = Rect{
			X:      area.X + gapSize + col*(cellWidth+gapSize),
			Y:      area.Y + gapSize + row*(cellHeight+gapSize),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}

	return positions
}

// CalculatePositionsWithLayout computes window positions using layout configuration
func CalculatePositionsWithLayout(
	numWindows int,
	area Rect,
	layout *config.Layout,
	gapSize int,
) ([]Rect, error) {
	if numWindows == 0 {
		return nil, nil
	}

	var rows, cols int
	flexibleLastRow := layout.FlexibleLastRow

	switch layout.Mode {
	case config.LayoutModeAuto:
		rows, cols = CalculateGrid(numWindows)

	case config.LayoutModeFixed:
		rows = layout.FixedGrid.Rows
		cols = layout.FixedGrid.Cols
		// Only tile up to rows*cols windows
		if numWindows > rows*cols {
			numWindows = rows * cols
		}
		// Flexible last row doesn't apply to fixed grids
		flexibleLastRow = false

	case config.LayoutModeVertical:
		rows = numWindows
		cols = 1
		// Single column - flexible last row is meaningless
		flexibleLastRow = false

	case config.LayoutModeHorizontal:
		rows = 1
		cols = numWindows
		// Single row - flexible last row is meaningless
		flexibleLastRow = false

	case config.LayoutModeMasterStack:
		return calculateMasterStack(numWindows, area, layout.MasterStack, gapSize)

	default:
		return nil, fmt.Errorf("unsupported layout mode: %q", layout.Mode)
	}

	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: rows=%d cols=%d", rows, cols)
	}

	// Calculate cell dimensions with gaps
	totalHorizontalGaps := (cols + 1) * gapSize
	totalVerticalGaps := (rows + 1) * gapSize

	slotWidth := (area.Width - totalHorizontalGaps) / cols
	slotHeight := (area.Height - totalVerticalGaps) / rows

	if slotWidth <= 0 || slotHeight <= 0 {
		return nil, fmt.Errorf(
			"insufficient space for layout: area=%dx%d rows=%d cols=%d gap=%d (slot=%dx%d)",
			area.Width, area.Height, rows, cols, gapSize, slotWidth, slotHeight,
		)
	}

	windowWidth := slotWidth
	windowHeight := slotHeight

	// Apply max dimension constraints (within each slot)
	if layout.MaxWindowWidth > 0 && windowWidth > layout.MaxWindowWidth {
		windowWidth = layout.MaxWindowWidth
	}
	if layout.MaxWindowHeight > 0 && windowHeight > layout.MaxWindowHeight {
		windowHeight = layout.MaxWindowHeight
	}

	// Calculate last row info for flexible layout
	lastRowIndex := rows - 1
	windowsInLastRow := numWindows - (lastRowIndex * cols)
	if windowsInLastRow <= 0 {
		windowsInLastRow = cols // Full row
	}

	// Calculate last row dimensions if flexible
	var lastRowSlotWidth, lastRowWindowWidth int
	if flexibleLastRow && windowsInLastRow < cols && windowsInLastRow > 0 {
		// Last row has fewer windows - they expand to fill the width
		lastRowHorizontalGaps := (windowsInLastRow + 1) * gapSize
		lastRowSlotWidth = (area.Width - lastRowHorizontalGaps) / windowsInLastRow
		lastRowWindowWidth = lastRowSlotWidth
		if layout.MaxWindowWidth > 0 && lastRowWindowWidth > layout.MaxWindowWidth {
			lastRowWindowWidth = layout.MaxWindowWidth
		}
	}

	positions := make([]Rect, numWindows)

	for i := 0; i < numWindows; i++ {
		row := i / cols
		col := i % cols

		// Check if this is on the last row and we need flexible sizing
		isLastRow := row == lastRowIndex
		useFlexible := flexibleLastRow && isLastRow && windowsInLastRow < cols

		var thisSlotWidth, thisWindowWidth int
		var x int

		if useFlexible {
			// Recalculate column index for the last row (0-based within last row)
			lastRowCol := i - (lastRowIndex * cols)
			thisSlotWidth = lastRowSlotWidth
			thisWindowWidth = lastRowWindowWidth
			x = area.X + gapSize + lastRowCol*(thisSlotWidth+gapSize)
		} else {
			thisSlotWidth = slotWidth
			thisWindowWidth = windowWidth
			x = area.X + gapSize + col*(slotWidth+gapSize)
		}

		y := area.Y + gapSize + row*(slotHeight+gapSize)

		// Center within the slot if the window is smaller than available space
		if thisWindowWidth < thisSlotWidth {
			x += (thisSlotWidth - thisWindowWidth) / 2
		}
		if windowHeight < slotHeight {
			y += (slotHeight - windowHeight) / 2
		}

		positions[i] = Rect{
			X:      x,
			Y:      y,
			Width:  thisWindowWidth,
			Height: windowHeight,
		}
	}

	return positions, nil
}

// calculateMasterStack positions the first window as a master pane on the
// left and the rest in a bounded grid on the right.
func calculateMasterStack(numWindows int, area Rect, ms config.MasterStack, gapSize int) ([]Rect, error) {
	// Master pane always uses MasterWidthPercent regardless of window count.
	masterWidth := (area.Width * ms.MasterWidthPercent / 100) - gapSize

	if numWindows == 1 {
		return []Rect{{
			X:      area.X + gapSize,
			Y:      area.Y + gapSize,
			Width:  masterWidth,
			Height: area.Height - 2*gapSize,
		}}, nil
	}

	// Right region for stack grid
	rightStartX := area.X + masterWidth + 2*gapSize
	rightRegionWidth := area.Width - masterWidth - 3*gapSize
	stackHeight := area.Height - 2*gapSize

	stackCount := numWindows - 1

	// Auto-grid: cols = ceil(stackCount / MaxStackRows) capped at MaxStackCols
	stackCols := int(math.Ceil(float64(stackCount) / float64(ms.MaxStackRows)))
	if stackCols > ms.MaxStackCols {
		stackCols = ms.MaxStackCols
	}
	if stackCols < 1 {
		stackCols = 1
	}
	stackRows := int(math.Ceil(float64(stackCount) / float64(stackCols)))
	if stackRows > ms.MaxStackRows {
		stackRows = ms.MaxStackRows
	}

	// Cap to grid capacity
	maxStack := stackRows * stackCols
	if stackCount > maxStack {
		stackCount = maxStack
		numWindows = stackCount + 1
	}

	// Cell dimensions within right region
	cellWidth := (rightRegionWidth - (stackCols-1)*gapSize) / stackCols
	cellHeight := (stackHeight - (stackRows-1)*gapSize) / stackRows

	if masterWidth <= 0 || cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf(
			"insufficient space for master-stack layout: area=%dx%d masterWidth=%d cellWidth=%d cellHeight=%d gap=%d",
			area.Width, area.Height, masterWidth, cellWidth, cellHeight, gapSize,
		)
	}

	positions := make([]Rect, numWindows)
	positions[0] = Rect{
		X:      area.X + gapSize,
		Y:      area.Y + gapSize,
		Width:  masterWidth,
		Height: stackHeight,
	}

	for i := 0; i < stackCount; i++ {
		row := i / stackCols
		col := i % stackCols
		positions[i+1] = Rect{
			X:      rightStartX + col*(cellWidth+gapSize),
			Y:      area.Y + gapSize + row*(cellHeight+gapSize),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}

	return positions, nil
}

// ApplyRegion applies the tile region to a work area, returning adjusted bounds
func ApplyRegion(area Rect, region config.TileRegion) Rect {
	adjusted := area

	switch region.Type {
	case config.RegionFull:
		// No change

	case config.RegionLeftHalf:
		adjusted.Width = area.Width / 2

	case config.RegionRightHalf:
		adjusted.X = area.X + area.Width/2
		adjusted.Width = area.Width / 2

	case config.RegionTopHalf:
		adjusted.Height = area.Height / 2

	case config.RegionBottomHalf:
		adjusted.Y = area.Y + area.Height/2
		adjusted.Height = area.Height / 2

	case config.RegionCustom:
		adjusted.X = area.X + (area.Width * region.XPercent / 100)
		adjusted.Y = area.Y + (area.Height * region.YPercent / 100)
		adjusted.Width = area.Width * region.WidthPercent / 100
		adjusted.Height = area.Height * region.HeightPercent / 100
	}

	if adjusted.Width < 1 {
		adjusted.Width = 1
	}
	if adjusted.Height < 1 {
		adjusted.Height = 1
	}

	return adjusted
}
