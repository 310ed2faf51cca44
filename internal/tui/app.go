package tui

import (
	"bytes"
	"strings"

	"github.com/shayne-snap/hwinfo/internal/display"
	"github.com/shayne-snap/hwinfo/internal/report"
	"github.com/shayne-snap/hwinfo/internal/scope"
)

// InputMode is the current TUI input mode (normal or search).
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
)

const pageSize = 10

// App holds the browser state: the selected category, the scroll offset of
// its detail pane and the search filter applied to detail lines.
type App struct {
	Report     *report.Report
	Categories []scope.Category
	Selected   int
	Scroll     int

	InputMode   InputMode
	SearchQuery string

	Width, Height int
	ShouldQuit    bool

	sections map[scope.Category][]string
}

// NewApp renders every category of rep once and returns the browser state.
func NewApp(rep *report.Report) *App {
	a := &App{
		Report:     rep,
		Categories: scope.Categories,
		sections:   make(map[scope.Category][]string, len(scope.Categories)),
	}
	for _, c := range a.Categories {
		var buf bytes.Buffer
		display.Section(&buf, rep, c)
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		// drop the divider; the pane has its own title
		a.sections[c] = lines[1:]
	}
	return a
}

// Category returns the selected category.
func (a *App) Category() scope.Category {
	return a.Categories[a.Selected]
}

// DetailLines returns the selected section, filtered by the search query.
func (a *App) DetailLines() []string {
	lines := a.sections[a.Category()]
	if a.SearchQuery == "" {
		return lines
	}
	q := strings.ToLower(a.SearchQuery)
	var out []string
	for _, l := range lines {
		if strings.Contains(strings.ToLower(l), q) {
			out = append(out, l)
		}
	}
	return out
}

// Count returns the number of devices listed for c, or -1 for categories
// that always describe a single item.
func (a *App) Count(c scope.Category) int {
	rep := a.Report
	switch c {
	case scope.CPU:
		return len(rep.CPUs)
	case scope.GPU:
		return len(rep.GPUs)
	case scope.Memory:
		return len(rep.Memory.Modules)
	case scope.Battery:
		return len(rep.Batteries)
	case scope.Disks:
		return len(rep.Disks)
	case scope.Network:
		return len(rep.AddressedNetworks())
	default:
		return -1
	}
}

func (a *App) MoveUp() {
	if a.Selected > 0 {
		a.Selected--
		a.Scroll = 0
	}
}

func (a *App) MoveDown() {
	if a.Selected < len(a.Categories)-1 {
		a.Selected++
		a.Scroll = 0
	}
}

func (a *App) PageUp() {
	a.Scroll -= pageSize
	if a.Scroll < 0 {
		a.Scroll = 0
	}
}

func (a *App) PageDown() {
	a.Scroll += pageSize
	a.clampScroll()
}

func (a *App) Home() {
	a.Scroll = 0
}

func (a *App) End() {
	a.Scroll = len(a.DetailLines()) - 1
	a.clampScroll()
}

func (a *App) clampScroll() {
	if last := len(a.DetailLines()) - 1; a.Scroll > last {
		a.Scroll = last
	}
	if a.Scroll < 0 {
		a.Scroll = 0
	}
}

func (a *App) EnterSearch() {
	a.InputMode = InputModeSearch
}

func (a *App) ExitSearch() {
	a.InputMode = InputModeNormal
}

func (a *App) SearchInput(r rune) {
	a.SearchQuery += string(r)
	a.Scroll = 0
}

func (a *App) SearchBackspace() {
	if a.SearchQuery == "" {
		return
	}
	runes := []rune(a.SearchQuery)
	a.SearchQuery = string(runes[:len(runes)-1])
	a.clampScroll()
}

func (a *App) ClearSearch() {
	a.SearchQuery = ""
	a.Scroll = 0
}
