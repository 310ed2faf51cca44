package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/report"
)

// Summary prints one table row per device of the categories in the
// report's scope.
func Summary(out io.Writer, rep *report.Report) {
	rows := summaryRows(rep)
	if len(rows) == 0 {
		fmt.Fprintln(out, "\nNo hardware selected.")
		return
	}
	fmt.Fprintln(out, "\n=== Hardware Summary ===")
	fmt.Fprintf(out, "Found %d device(s)\n\n", len(rows))
	tbl := tablewriter.NewWriter(out)
	tbl.Header("Category", "ID", "Vendor", "Model", "Details")
	for _, r := range rows {
		tbl.Append(r)
	}
	_ = tbl.Render()
}

func summaryRows(rep *report.Report) [][]string {
	sc := rep.Scope
	var rows [][]string
	if sc.CPU {
		for _, c := range rep.CPUs {
			rows = append(rows, []string{"CPU", strconv.Itoa(c.ID), c.Vendor, c.Model,
				fmt.Sprintf("%dC/%dT, %s", c.PhysicalCores, c.LogicalCores, mhz(c.MaxClockMHz))})
		}
	}
	if sc.OS {
		arch, _ := osLabels(rep.OS)
		rows = append(rows, []string{"OS", "-", rep.OS.Name, rep.OS.Version,
			fmt.Sprintf("kernel %s, %s", rep.OS.Kernel, arch)})
	}
	if sc.GPU {
		for _, g := range rep.GPUs {
			rows = append(rows, []string{"GPU", strconv.Itoa(g.ID), g.Vendor, g.Model,
				fmt.Sprintf("%s, driver %s", size(g.MemoryBytes), orDash(g.DriverVersion))})
		}
	}
	if sc.Memory {
		m := rep.Memory
		rows = append(rows, []string{"RAM", "-", "-", "-",
			fmt.Sprintf("%s total, %s available", size(m.TotalBytes), size(m.AvailableBytes))})
		for _, mod := range m.Modules {
			details := size(mod.SizeBytes)
			if mod.FrequencyHz > 0 {
				details += fmt.Sprintf(", %s MHz", formatFloat(hardware.HzToMHz(mod.FrequencyHz)))
			}
			rows = append(rows, []string{"RAM module", strconv.Itoa(mod.ID), mod.Vendor, mod.Model, details})
		}
	}
	if sc.MainBoard {
		b := rep.MainBoard
		rows = append(rows, []string{"Main Board", "-", b.Vendor, b.Name, "version " + orDash(b.Version)})
	}
	if sc.Battery {
		for i, b := range rep.Batteries {
			state := "discharging"
			if b.Charging {
				state = "charging"
			}
			rows = append(rows, []string{"Battery", strconv.Itoa(i), b.Vendor, b.Model,
				fmt.Sprintf("%d%%, %s", b.Capacity, state)})
		}
	}
	if sc.Disks {
		for i, d := range rep.Disks {
			details := size(d.SizeBytes)
			if d.FreeBytes >= 0 {
				details += ", " + size(d.FreeBytes) + " free"
			}
			rows = append(rows, []string{"Disk", strconv.Itoa(i), d.Vendor, d.Model, details})
		}
	}
	if sc.Network {
		for i, n := range rep.AddressedNetworks() {
			addr := n.IPv4
			if addr == "" {
				addr = n.IPv6
			}
			rows = append(rows, []string{"Network", strconv.Itoa(i), n.Description, orDash(n.MAC), addr})
		}
	}
	return rows
}

func size(b int64) string {
	if b < 0 {
		return "unknown size"
	}
	return humanize.IBytes(uint64(b))
}

func mhz(v int64) string {
	if v < 0 {
		return "unknown clock"
	}
	return fmt.Sprintf("%d MHz", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
