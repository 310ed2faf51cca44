package tui

import (
	"github.com/shayne-snap/hwinfo/internal/report"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI over an already collected report.
func Run(rep *report.Report) error {
	app := NewApp(rep)
	m := &model{app: app}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	app *App
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.app.Width = msg.Width
		m.app.Height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.app.InputMode {
		case InputModeNormal:
			m.handleNormal(msg)
		case InputModeSearch:
			m.handleSearch(msg)
		}
		if m.app.ShouldQuit {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleNormal(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.app.ShouldQuit = true
	case "up", "k":
		m.app.MoveUp()
	case "down", "j":
		m.app.MoveDown()
	case "pgup":
		m.app.PageUp()
	case "pgdown", " ":
		m.app.PageDown()
	case "home", "g":
		m.app.Home()
	case "end", "G":
		m.app.End()
	case "/":
		m.app.EnterSearch()
	}
}

func (m *model) handleSearch(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "enter":
		m.app.ExitSearch()
	case "backspace":
		m.app.SearchBackspace()
	case "ctrl+u":
		m.app.ClearSearch()
	case "ctrl+c":
		m.app.ShouldQuit = true
	case "up":
		m.app.MoveUp()
	case "down":
		m.app.MoveDown()
	default:
		if len(msg.Runes) == 1 {
			m.app.SearchInput(msg.Runes[0])
		}
	}
}

func (m *model) View() string {
	return Render(m.app)
}
