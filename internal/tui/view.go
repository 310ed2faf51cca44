package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleNormal   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	styleCyan     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleYellow   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleSelected = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")).Bold(true)
	styleStatus   = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")).Bold(true)
)

const listWidth = 22

// Render returns the full TUI view for the app.
func Render(app *App) string {
	w := app.Width
	if w <= 0 {
		w = 80
	}
	h := app.Height
	if h <= 0 {
		h = 24
	}

	header := renderHeader(app)
	// header box (3 lines) + pane borders (2) + status bar (1)
	paneHeight := h - 3 - 2 - 1
	if paneHeight < 5 {
		paneHeight = 5
	}
	list := renderCategories(app, paneHeight)
	detailWidth := w - listWidth - 4 - 2
	if detailWidth < 20 {
		detailWidth = 20
	}
	detail := renderDetail(app, detailWidth, paneHeight)
	main := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
	return lipgloss.JoinVertical(lipgloss.Left, header, main, renderStatusBar(app))
}

func renderHeader(app *App) string {
	o := app.Report.OS
	line := styleDim.Render(" OS: ") + styleNormal.Render(strings.TrimSpace(o.Name+" "+o.Version))
	if o.Kernel != "" {
		line += styleDim.Render("  │  kernel: ") + styleCyan.Render(o.Kernel)
	}
	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return block.Render(styleTitle.Render(" hwinfo ") + " " + line)
}

func renderCategories(app *App, height int) string {
	var lines []string
	for i, c := range app.Categories {
		label := c.Title()
		if n := app.Count(c); n >= 0 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		label = fmt.Sprintf(" %-*s", listWidth-1, label)
		if i == app.Selected {
			lines = append(lines, styleSelected.Render(label))
		} else {
			lines = append(lines, styleNormal.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func renderDetail(app *App, width, height int) string {
	lines := app.DetailLines()
	title := styleTitle.Render(" " + app.Category().Title() + " ")
	body := []string{title}
	if len(lines) == 0 {
		body = append(body, styleDim.Render("  nothing to show"))
	}
	end := app.Scroll + height - 1
	if end > len(lines) {
		end = len(lines)
	}
	for _, l := range lines[min(app.Scroll, len(lines)):end] {
		body = append(body, styleNormal.Render(clip(l, width)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(width).
		Height(height).
		Render(strings.Join(body, "\n"))
}

// clip cuts s to at most width terminal cells.
func clip(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

func renderStatusBar(app *App) string {
	if app.InputMode == InputModeSearch {
		return styleStatus.Render(" SEARCH ") + " " + styleYellow.Render(app.SearchQuery+"▏") +
			styleDim.Render("  enter/esc: done  ctrl+u: clear")
	}
	keys := "↑/↓: category  pgup/pgdn: scroll  /: search  q: quit"
	if app.SearchQuery != "" {
		keys = "filter: " + app.SearchQuery + "  " + keys
	}
	return styleStatus.Render(" NORMAL ") + " " + styleDim.Render(keys)
}
