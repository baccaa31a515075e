package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a tea.Model that lives in a side panel and follows the
// terminal size.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
	Resize(width, height int)
}
