package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/wmctl/internal/platform"
	"github.com/1broseidon/wmctl/internal/wmctrl"
)

type fakeBackend struct {
	platform.Backend
	windows   []platform.Window
	activated []string
	closed    []string
	states    []string
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) {
	return f.windows, nil
}

func (f *fakeBackend) Activate(windowID string) error {
	f.activated = append(f.activated, windowID)
	return nil
}

func (f *fakeBackend) Close(windowID string) error {
	f.closed = append(f.closed, windowID)
	// Simulate the window going away.
	kept := f.windows[:0]
	for _, w := range f.windows {
		if w.ID != windowID {
			kept = append(kept, w)
		}
	}
	f.windows = kept
	return nil
}

func (f *fakeBackend) ChangeState(windowID string, state wmctrl.State) error {
	f.states = append(f.states, windowID+" "+state.String())
	return nil
}

func testBackend() *fakeBackend {
	return &fakeBackend{windows: []platform.Window{
		{ID: "0x01", Desktop: 0, Class: "Navigator.firefox", Title: "Docs"},
		{ID: "0x02", Desktop: 0, Class: "gnome-terminal.Gnome-terminal", Title: "shell"},
	}}
}

func sized(t *testing.T, p *Picker) *Picker {
	t.Helper()
	m, _ := p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(*Picker)
}

func TestNewPickerListsWindows(t *testing.T) {
	p, err := NewPicker(testBackend())
	if err != nil {
		t.Fatalf("NewPicker() err=%v", err)
	}
	if len(p.list.Items()) != 2 {
		t.Fatalf("got %d items, want 2", len(p.list.Items()))
	}
	item, ok := p.list.Items()[0].(windowItem)
	if !ok {
		t.Fatalf("item type %T", p.list.Items()[0])
	}
	if item.Title() != "Docs" {
		t.Fatalf("Title()=%q", item.Title())
	}
	if item.Description() != "0x01 · desktop 0 · Navigator.firefox" {
		t.Fatalf("Description()=%q", item.Description())
	}
}

func TestStickyWindowDescription(t *testing.T) {
	item := windowItem{window: platform.Window{ID: "0x03", Desktop: -1, Class: "panel", Title: "panel"}}
	if item.Description() != "0x03 · sticky · panel" {
		t.Fatalf("Description()=%q", item.Description())
	}
}

func TestEnterActivatesAndQuits(t *testing.T) {
	b := testBackend()
	p, err := NewPicker(b)
	if err != nil {
		t.Fatalf("NewPicker() err=%v", err)
	}
	p = sized(t, p)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(b.activated) != 1 || b.activated[0] != "0x01" {
		t.Fatalf("activated=%v", b.activated)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestCloseRemovesWindow(t *testing.T) {
	b := testBackend()
	p, err := NewPicker(b)
	if err != nil {
		t.Fatalf("NewPicker() err=%v", err)
	}
	p = sized(t, p)

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	p = m.(*Picker)
	if len(b.closed) != 1 || b.closed[0] != "0x01" {
		t.Fatalf("closed=%v", b.closed)
	}
	if len(p.list.Items()) != 1 {
		t.Fatalf("got %d items after close, want 1", len(p.list.Items()))
	}
}

func TestStateToggles(t *testing.T) {
	b := testBackend()
	p, err := NewPicker(b)
	if err != nil {
		t.Fatalf("NewPicker() err=%v", err)
	}
	p = sized(t, p)

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	p = m.(*Picker)
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})

	want := []string{
		"0x01 toggle,fullscreen",
		"0x01 toggle,maximized_vert,maximized_horz",
	}
	if len(b.states) != len(want) {
		t.Fatalf("states=%v", b.states)
	}
	for i := range want {
		if b.states[i] != want[i] {
			t.Fatalf("states[%d]=%q, want %q", i, b.states[i], want[i])
		}
	}
}
