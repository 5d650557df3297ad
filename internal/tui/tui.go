// Package tui provides the interactive window picker.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/wmctl/internal/platform"
)

// Run starts the window picker and blocks until it exits.
func Run(backend platform.Backend) error {
	picker, err := NewPicker(backend)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(picker, tea.WithAltScreen()).Run()
	return err
}
