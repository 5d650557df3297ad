package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// WmctrlConfig configures how the wmctrl tool is invoked.
type WmctrlConfig struct {
	// Binary overrides the wmctrl executable path. Empty means "wmctrl"
	// looked up on PATH.
	Binary string `yaml:"binary,omitempty"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	// Level controls verbosity: debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// LayoutMode defines how windows are arranged.
type LayoutMode string

const (
	LayoutModeAuto        LayoutMode = "auto"         // Dynamic grid based on count.
	LayoutModeFixed       LayoutMode = "fixed"        // Specific rows × cols.
	LayoutModeVertical    LayoutMode = "vertical"     // Single column stack.
	LayoutModeHorizontal  LayoutMode = "horizontal"   // Single row side-by-side.
	LayoutModeMasterStack LayoutMode = "master-stack" // Master pane left, stack grid right.
)

// RegionType defines tile region presets.
type RegionType string

const (
	RegionFull       RegionType = "full"
	RegionLeftHalf   RegionType = "left-half"
	RegionRightHalf  RegionType = "right-half"
	RegionTopHalf    RegionType = "top-half"
	RegionBottomHalf RegionType = "bottom-half"
	RegionCustom     RegionType = "custom"
)

// TileRegion defines where on the work area windows are tiled.
type TileRegion struct {
	Type          RegionType `yaml:"type"`
	XPercent      int        `yaml:"x_percent"`      // 0-100
	YPercent      int        `yaml:"y_percent"`      // 0-100
	WidthPercent  int        `yaml:"width_percent"`  // 0-100
	HeightPercent int        `yaml:"height_percent"` // 0-100
}

// FixedGrid defines specific grid dimensions.
type FixedGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MasterStack defines the master-stack layout parameters.
type MasterStack struct {
	MasterWidthPercent int `yaml:"master_width_percent"` // Width of master pane as percentage (10-90)
	MaxStackRows       int `yaml:"max_stack_rows"`       // Maximum rows in the stack grid (>= 1)
	MaxStackCols       int `yaml:"max_stack_cols"`       // Maximum columns in the stack grid (>= 1)
}

// Layout defines a tiling configuration.
type Layout struct {
	Mode            LayoutMode  `yaml:"mode"`
	TileRegion      TileRegion  `yaml:"tile_region"`
	FixedGrid       FixedGrid   `yaml:"fixed_grid,omitempty"`
	MasterStack     MasterStack `yaml:"master_stack,omitempty"`
	MaxWindowWidth  int         `yaml:"max_window_width"`  // 0 = unlimited
	MaxWindowHeight int         `yaml:"max_window_height"` // 0 = unlimited
	FlexibleLastRow bool        `yaml:"flexible_last_row"` // Last row windows expand to fill width (auto mode only)
}

// Rule binds a window matcher to a layout, so `wmctl layout apply` can pick
// up windows without an explicit --class/--title flag.
type Rule struct {
	// Class is a case-insensitive substring matched against WM_CLASS.
	Class string `yaml:"class,omitempty"`
	// Title is a case-insensitive substring matched against the title.
	Title string `yaml:"title,omitempty"`
	// Layout names the layout the matched windows belong to.
	Layout string `yaml:"layout"`
}

// DefaultGapSize is the gap between tiled windows in pixels.
const DefaultGapSize = 8

// Config is the effective wmctl configuration.
type Config struct {
	Wmctrl  WmctrlConfig  `yaml:"wmctrl,omitempty"`
	GapSize *int          `yaml:"gap_size,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	// Layouts holds user-defined layouts; they override builtins of the
	// same name.
	Layouts map[string]Layout `yaml:"layouts,omitempty"`
	Rules   []Rule            `yaml:"rules,omitempty"`
}

// Gap returns the configured gap size with the default applied.
func (c *Config) Gap() int {
	if c.GapSize != nil {
		return *c.GapSize
	}
	return DefaultGapSize
}

// EffectiveLayouts returns builtins merged with user-defined layouts. User
// layouts win on name collisions.
func (c *Config) EffectiveLayouts() map[string]Layout {
	layouts := BuiltinLayouts()
	for name, l := range c.Layouts {
		layouts[name] = l
	}
	return layouts
}

// LayoutNames returns all available layout names, sorted.
func (c *Config) LayoutNames() []string {
	layouts := c.EffectiveLayouts()
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetLayout resolves a layout by name.
func (c *Config) GetLayout(name string) (Layout, error) {
	if l, ok := c.EffectiveLayouts()[name]; ok {
		return l, nil
	}
	return Layout{}, fmt.Errorf("unknown layout %q (available: %v)", name, c.LayoutNames())
}

// RuleFor returns the first rule whose layout matches the given name.
func (c *Config) RuleFor(layout string) (Rule, bool) {
	for _, r := range c.Rules {
		if r.Layout == layout {
			return r, true
		}
	}
	return Rule{}, false
}

// DefaultConfigPath returns ~/.config/wmctl/config.yaml.
func DefaultConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "wmctl", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path. A missing
// file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for mistakes a user could make in YAML.
func (c *Config) Validate() error {
	if c.GapSize != nil && *c.GapSize < 0 {
		return fmt.Errorf("gap_size must be >= 0, got %d", *c.GapSize)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	for name, l := range c.Layouts {
		if err := validateLayout(l); err != nil {
			return fmt.Errorf("layout %q: %w", name, err)
		}
	}

	layouts := c.EffectiveLayouts()
	for i, r := range c.Rules {
		if r.Class == "" && r.Title == "" {
			return fmt.Errorf("rule %d: needs a class or title matcher", i)
		}
		if r.Layout == "" {
			return fmt.Errorf("rule %d: layout is required", i)
		}
		if _, ok := layouts[r.Layout]; !ok {
			return fmt.Errorf("rule %d: unknown layout %q", i, r.Layout)
		}
	}
	return nil
}

func validateLayout(l Layout) error {
	switch l.Mode {
	case LayoutModeAuto, LayoutModeVertical, LayoutModeHorizontal:
	case LayoutModeFixed:
		if l.FixedGrid.Rows < 1 || l.FixedGrid.Cols < 1 {
			return fmt.Errorf("fixed_grid rows and cols must be >= 1, got %dx%d", l.FixedGrid.Rows, l.FixedGrid.Cols)
		}
	case LayoutModeMasterStack:
		ms := l.MasterStack
		if ms.MasterWidthPercent < 10 || ms.MasterWidthPercent > 90 {
			return fmt.Errorf("master_width_percent must be between 10 and 90, got %d", ms.MasterWidthPercent)
		}
		if ms.MaxStackRows < 1 || ms.MaxStackCols < 1 {
			return fmt.Errorf("max_stack_rows and max_stack_cols must be >= 1, got %dx%d", ms.MaxStackRows, ms.MaxStackCols)
		}
	default:
		return fmt.Errorf("unknown mode %q", l.Mode)
	}

	switch l.TileRegion.Type {
	case RegionFull, RegionLeftHalf, RegionRightHalf, RegionTopHalf, RegionBottomHalf:
	case RegionCustom:
		for _, p := range []struct {
			name  string
			value int
		}{
			{"x_percent", l.TileRegion.XPercent},
			{"y_percent", l.TileRegion.YPercent},
			{"width_percent", l.TileRegion.WidthPercent},
			{"height_percent", l.TileRegion.HeightPercent},
		} {
			if p.value < 0 || p.value > 100 {
				return fmt.Errorf("tile_region %s must be between 0 and 100, got %d", p.name, p.value)
			}
		}
		if l.TileRegion.WidthPercent == 0 || l.TileRegion.HeightPercent == 0 {
			return fmt.Errorf("custom tile_region needs width_percent and height_percent")
		}
	case "":
		// Treated as full.
	default:
		return fmt.Errorf("unknown tile_region type %q", l.TileRegion.Type)
	}

	if l.MaxWindowWidth < 0 || l.MaxWindowHeight < 0 {
		return fmt.Errorf("max_window_width and max_window_height must be >= 0")
	}
	return nil
}
