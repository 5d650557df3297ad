package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/wmctl/internal/platform"
	"github.com/1broseidon/wmctl/internal/wmctrl"
)

// windowItem implements list.Item for the window picker.
type windowItem struct {
	window platform.Window
}

func (i windowItem) Title() string {
	return i.window.Title
}

func (i windowItem) Description() string {
	desktop := fmt.Sprintf("desktop %d", i.window.Desktop)
	if i.window.Sticky() {
		desktop = "sticky"
	}
	return fmt.Sprintf("%s · %s · %s", i.window.ID, desktop, i.window.Class)
}

func (i windowItem) FilterValue() string {
	return i.window.Title + " " + i.window.Class
}

// statusMsg is sent after a window operation completes.
type statusMsg struct {
	text string
}

// clearStatusMsg clears the status message after a delay.
type clearStatusMsg struct{}

// refreshMsg triggers a reload of the window list from the backend.
type refreshMsg struct{}

// Picker is the interactive window picker model.
type Picker struct {
	list    list.Model
	backend platform.Backend

	statusText string

	width  int
	height int
	ready  bool
}

// NewPicker builds the picker with the current window list.
func NewPicker(backend platform.Backend) (*Picker, error) {
	windows, err := backend.ListWindows()
	if err != nil {
		return nil, err
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(buildWindowItems(windows), delegate, 0, 0)
	l.Title = "Windows"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return &Picker{
		list:    l,
		backend: backend,
	}, nil
}

func buildWindowItems(windows []platform.Window) []list.Item {
	items := make([]list.Item, 0, len(windows))
	for _, w := range windows {
		items = append(items, windowItem{window: w})
	}
	return items
}

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		listHeight := p.height - 2
		if listHeight < 1 {
			listHeight = 1
		}
		p.list.SetSize(p.width, listHeight)
		p.ready = true
		return p, nil

	case statusMsg:
		p.statusText = msg.text
		return p, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		p.statusText = ""
		return p, nil

	case refreshMsg:
		p.reload()
		return p, nil

	case tea.KeyMsg:
		// Keep filter typing working: only handle shortcuts when the list
		// is not filtering.
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "enter":
			return p.activateSelected()
		case "x":
			return p.closeSelected()
		case "f":
			return p.toggleSelected(wmctrl.NewState(wmctrl.ActionToggle, wmctrl.PropFullscreen), "fullscreen")
		case "m":
			return p.toggleSelected(wmctrl.NewStatePair(wmctrl.ActionToggle, wmctrl.PropMaximizedVert, wmctrl.PropMaximizedHorz), "maximize")
		case "r":
			p.reload()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *Picker) selected() (platform.Window, bool) {
	item, ok := p.list.SelectedItem().(windowItem)
	if !ok {
		return platform.Window{}, false
	}
	return item.window, true
}

func (p *Picker) activateSelected() (tea.Model, tea.Cmd) {
	w, ok := p.selected()
	if !ok {
		return p, nil
	}
	if err := p.backend.Activate(w.ID); err != nil {
		return p, p.status(fmt.Sprintf("error: %v", err))
	}
	// Activating hands focus to the chosen window; the picker's job is done.
	return p, tea.Quit
}

func (p *Picker) closeSelected() (tea.Model, tea.Cmd) {
	w, ok := p.selected()
	if !ok {
		return p, nil
	}
	if err := p.backend.Close(w.ID); err != nil {
		return p, p.status(fmt.Sprintf("error: %v", err))
	}
	p.reload()
	return p, p.status(fmt.Sprintf("closed: %s", w.Title))
}

func (p *Picker) toggleSelected(state wmctrl.State, label string) (tea.Model, tea.Cmd) {
	w, ok := p.selected()
	if !ok {
		return p, nil
	}
	if err := p.backend.ChangeState(w.ID, state); err != nil {
		return p, p.status(fmt.Sprintf("error: %v", err))
	}
	return p, p.status(fmt.Sprintf("%s toggled: %s", label, w.Title))
}

func (p *Picker) status(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}

func (p *Picker) reload() {
	windows, err := p.backend.ListWindows()
	if err != nil {
		p.statusText = fmt.Sprintf("error: %v", err)
		return
	}
	p.list.SetItems(buildWindowItems(windows))
}

// View implements tea.Model.
func (p *Picker) View() string {
	if !p.ready || p.width == 0 || p.height == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.list.View(), p.renderStatus())
}

func (p *Picker) renderStatus() string {
	left := ""
	if p.statusText != "" {
		left = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render(p.statusText)
	}

	right := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("enter:activate  x:close  f:fullscreen  m:maximize  r:refresh  /:filter  q:quit")

	gap := p.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Width(p.width).
		Padding(0, 1).
		Render(left + strings.Repeat(" ", gap) + right)
}
