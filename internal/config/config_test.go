package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath() err=%v", err)
	}
	if cfg.Gap() != DefaultGapSize {
		t.Fatalf("Gap()=%d, want default %d", cfg.Gap(), DefaultGapSize)
	}
	if cfg.Wmctrl.Binary != "" {
		t.Fatalf("Wmctrl.Binary=%q, want empty", cfg.Wmctrl.Binary)
	}
	if _, err := cfg.GetLayout("grid"); err != nil {
		t.Fatalf("builtin grid layout missing: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
wmctrl:
  binary: /opt/wm/bin/wmctrl
gap_size: 4
logging:
  level: debug
layouts:
  editors:
    mode: fixed
    fixed_grid:
      rows: 1
      cols: 2
    tile_region:
      type: top-half
rules:
  - class: firefox
    layout: half-left
  - title: scratch
    layout: editors
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() err=%v", err)
	}
	if cfg.Wmctrl.Binary != "/opt/wm/bin/wmctrl" {
		t.Fatalf("Wmctrl.Binary=%q", cfg.Wmctrl.Binary)
	}
	if cfg.Gap() != 4 {
		t.Fatalf("Gap()=%d, want 4", cfg.Gap())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level=%q", cfg.Logging.Level)
	}

	layout, err := cfg.GetLayout("editors")
	if err != nil {
		t.Fatalf("GetLayout(editors) err=%v", err)
	}
	if layout.Mode != LayoutModeFixed || layout.FixedGrid.Cols != 2 {
		t.Fatalf("editors layout=%+v", layout)
	}

	rule, ok := cfg.RuleFor("editors")
	if !ok || rule.Title != "scratch" {
		t.Fatalf("RuleFor(editors)=%+v ok=%v", rule, ok)
	}
}

func TestUserLayoutOverridesBuiltin(t *testing.T) {
	path := writeConfig(t, `
layouts:
  grid:
    mode: fixed
    fixed_grid:
      rows: 3
      cols: 3
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() err=%v", err)
	}
	layout, err := cfg.GetLayout("grid")
	if err != nil {
		t.Fatalf("GetLayout(grid) err=%v", err)
	}
	if layout.Mode != LayoutModeFixed || layout.FixedGrid.Rows != 3 {
		t.Fatalf("grid layout not overridden: %+v", layout)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "negative gap", content: "gap_size: -1\n"},
		{name: "bad log level", content: "logging:\n  level: chatty\n"},
		{name: "unknown layout mode", content: "layouts:\n  bad:\n    mode: diagonal\n"},
		{name: "fixed grid without dims", content: "layouts:\n  bad:\n    mode: fixed\n"},
		{
			name:    "custom region without size",
			content: "layouts:\n  bad:\n    mode: auto\n    tile_region:\n      type: custom\n",
		},
		{
			name:    "master width out of range",
			content: "layouts:\n  bad:\n    mode: master-stack\n    master_stack:\n      master_width_percent: 95\n      max_stack_rows: 2\n      max_stack_cols: 2\n",
		},
		{name: "rule without matcher", content: "rules:\n  - layout: grid\n"},
		{name: "rule without layout", content: "rules:\n  - class: firefox\n"},
		{name: "rule with unknown layout", content: "rules:\n  - class: firefox\n    layout: missing\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			if _, err := LoadFromPath(path); err == nil {
				t.Fatal("LoadFromPath() expected error, got nil")
			}
		})
	}
}

func TestLayoutNamesSorted(t *testing.T) {
	cfg := &Config{Layouts: map[string]Layout{
		"zz": {Mode: LayoutModeAuto},
		"aa": {Mode: LayoutModeAuto},
	}}
	names := cfg.LayoutNames()
	if len(names) < 2 {
		t.Fatalf("LayoutNames()=%v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("LayoutNames() not sorted: %v", names)
		}
	}
	if names[0] != "aa" {
		t.Fatalf("LayoutNames()[0]=%q, want aa", names[0])
	}
}
