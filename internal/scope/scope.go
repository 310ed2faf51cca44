// Package scope selects which hardware categories a report covers.
package scope

import "strings"

// Category is one hardware domain of the report.
type Category string

const (
	CPU       Category = "cpu"
	OS        Category = "os"
	GPU       Category = "gpu"
	Memory    Category = "memory"
	MainBoard Category = "main_board"
	Battery   Category = "battery"
	Disks     Category = "disks"
	Network   Category = "network"
)

// Categories lists every category in report order.
var Categories = []Category{CPU, OS, GPU, Memory, MainBoard, Battery, Disks, Network}

// Title returns the section heading used in text output.
func (c Category) Title() string {
	switch c {
	case CPU:
		return "CPU"
	case OS:
		return "OS"
	case GPU:
		return "GPU"
	case Memory:
		return "RAM"
	case MainBoard:
		return "Main Board"
	case Battery:
		return "Batteries"
	case Disks:
		return "Disks"
	case Network:
		return "Networks"
	default:
		return string(c)
	}
}

// Scope is the set of categories requested by the user.
type Scope struct {
	CPU       bool
	OS        bool
	GPU       bool
	Memory    bool
	MainBoard bool
	Battery   bool
	Disks     bool
	Network   bool
	All       bool
}

// Everything returns a scope with every category enabled.
func Everything() Scope {
	return Scope{
		CPU:       true,
		OS:        true,
		GPU:       true,
		Memory:    true,
		MainBoard: true,
		Battery:   true,
		Disks:     true,
		Network:   true,
		All:       true,
	}
}

// Parse reads a comma-separated list of category names. Tokens are trimmed
// of spaces and tabs and matched case-sensitively; unknown tokens are
// ignored. The first "all" token selects everything and ends parsing.
func Parse(s string) Scope {
	var sc Scope
	if s == "" {
		return sc
	}
	for _, item := range strings.Split(s, ",") {
		item = strings.Trim(item, " \t")
		if item == "all" {
			return Everything()
		}
		sc.set(Category(item))
	}
	return sc
}

func (s *Scope) set(c Category) {
	switch c {
	case CPU:
		s.CPU = true
	case OS:
		s.OS = true
	case GPU:
		s.GPU = true
	case Memory:
		s.Memory = true
	case MainBoard:
		s.MainBoard = true
	case Battery:
		s.Battery = true
	case Disks:
		s.Disks = true
	case Network:
		s.Network = true
	}
}

// Has reports whether c is enabled.
func (s Scope) Has(c Category) bool {
	switch c {
	case CPU:
		return s.CPU
	case OS:
		return s.OS
	case GPU:
		return s.GPU
	case Memory:
		return s.Memory
	case MainBoard:
		return s.MainBoard
	case Battery:
		return s.Battery
	case Disks:
		return s.Disks
	case Network:
		return s.Network
	default:
		return false
	}
}

// Enabled returns the enabled categories in report order.
func (s Scope) Enabled() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether no category is enabled.
func (s Scope) Empty() bool {
	return len(s.Enabled()) == 0
}

func (s Scope) String() string {
	if s.All {
		return "all"
	}
	enabled := s.Enabled()
	names := make([]string, len(enabled))
	for i, c := range enabled {
		names[i] = string(c)
	}
	return strings.Join(names, ",")
}
