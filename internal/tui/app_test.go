package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/report"
	"github.com/shayne-snap/hwinfo/internal/scope"
)

func testReport() *report.Report {
	return &report.Report{
		Scope: scope.Everything(),
		OS:    hardware.OS{Name: "ubuntu", Version: "24.04", Kernel: "6.8.0", LittleEndian: true},
		CPUs: []hardware.CPU{{
			ID: 0, Vendor: "GenuineIntel", Model: "Test CPU", LogicalCores: 2,
			CurrentClockMHz: []int64{1000, 2000}, Utilisation: []float64{0.1, 0.2},
		}},
		Disks: []hardware.Disk{{Vendor: "Samsung", Model: "980 PRO", SizeBytes: 1 << 30, FreeBytes: -1}},
		Networks: []hardware.Network{
			{Description: "eth0", IPv4: "10.0.0.2"},
			{Description: "docker0"},
		},
	}
}

func TestNewApp_SectionsWithoutDivider(t *testing.T) {
	app := NewApp(testReport())
	lines := app.DetailLines()
	if len(lines) == 0 || lines[0] != "Socket 0:" {
		t.Fatalf("CPU lines = %v", lines)
	}
	for _, l := range lines {
		if strings.HasPrefix(l, "---") {
			t.Errorf("divider kept in detail: %q", l)
		}
	}
}

func TestApp_Navigation(t *testing.T) {
	app := NewApp(testReport())
	app.MoveUp()
	if app.Selected != 0 {
		t.Errorf("MoveUp at top: Selected = %d", app.Selected)
	}
	for range app.Categories {
		app.MoveDown()
	}
	if app.Category() != scope.Network {
		t.Errorf("bottom category = %s, want network", app.Category())
	}
	app.Scroll = 3
	app.MoveUp()
	if app.Category() != scope.Disks || app.Scroll != 0 {
		t.Errorf("MoveUp: category %s scroll %d", app.Category(), app.Scroll)
	}
}

func TestApp_ScrollClamped(t *testing.T) {
	app := NewApp(testReport())
	n := len(app.DetailLines())
	app.PageDown()
	app.PageDown()
	if app.Scroll != n-1 {
		t.Errorf("Scroll = %d, want %d", app.Scroll, n-1)
	}
	app.PageUp()
	app.PageUp()
	if app.Scroll != 0 {
		t.Errorf("Scroll = %d, want 0", app.Scroll)
	}
	app.End()
	if app.Scroll != n-1 {
		t.Errorf("End: Scroll = %d, want %d", app.Scroll, n-1)
	}
	app.Home()
	if app.Scroll != 0 {
		t.Errorf("Home: Scroll = %d", app.Scroll)
	}
}

func TestApp_Search(t *testing.T) {
	app := NewApp(testReport())
	app.EnterSearch()
	for _, r := range "THREAD" {
		app.SearchInput(r)
	}
	lines := app.DetailLines()
	if len(lines) != 2 {
		t.Fatalf("filtered lines = %v, want 2 thread lines", lines)
	}
	app.SearchBackspace()
	if app.SearchQuery != "THREA" {
		t.Errorf("SearchQuery = %q", app.SearchQuery)
	}
	app.ClearSearch()
	app.ExitSearch()
	if app.InputMode != InputModeNormal || app.SearchQuery != "" {
		t.Errorf("state after clear: %+v", app.InputMode)
	}
}

func TestApp_Count(t *testing.T) {
	app := NewApp(testReport())
	if got := app.Count(scope.Network); got != 1 {
		t.Errorf("Count(network) = %d, want 1", got)
	}
	if got := app.Count(scope.OS); got != -1 {
		t.Errorf("Count(os) = %d, want -1", got)
	}
}

func TestRender(t *testing.T) {
	app := NewApp(testReport())
	app.Width, app.Height = 100, 30
	out := Render(app)
	for _, want := range []string{"hwinfo", "ubuntu 24.04", "CPU (1)", "Socket 0:", "q: quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	app.EnterSearch()
	if !strings.Contains(Render(app), "SEARCH") {
		t.Error("search mode not shown in status bar")
	}
}

func TestClip_CutsByCell(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"vendor: Crucial", 40, "vendor: Crucial"},
		{"Ünïcödé Technologies", 5, "Ünïcö"},
		{"型号: 三星", 4, "型号"},
	}
	for _, tt := range tests {
		got := clip(tt.in, tt.width)
		if !utf8.ValidString(got) {
			t.Errorf("clip(%q, %d) produced invalid UTF-8 %q", tt.in, tt.width, got)
		}
		if got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
