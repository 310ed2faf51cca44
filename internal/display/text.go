// Package display renders a hardware report as text, JSON or a summary table.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/report"
	"github.com/shayne-snap/hwinfo/internal/scope"
)

const ruleWidth = 76

var (
	osTpl    *template.Template
	boardTpl *template.Template
	ramTpl   *template.Template
)

func init() {
	funcs := template.FuncMap{"row": row}
	osTpl = template.Must(template.New("os").Funcs(funcs).Parse(
		`{{row "Operating System:" .Name}}
{{row "version:" .Version}}
{{row "kernel:" .Kernel}}
{{row "architecture:" .Arch}}
{{row "endianess:" .Endian}}
`))
	boardTpl = template.Must(template.New("board").Funcs(funcs).Parse(
		`{{row "vendor:" .Vendor}}
{{row "name:" .Name}}
{{row "version:" .Version}}
{{row "serial-number:" .SerialNumber}}
`))
	ramTpl = template.Must(template.New("ram").Funcs(funcs).Parse(
		`{{row "size [MiB]:" .Total}}
{{row "free [MiB]:" .Free}}
{{row "available [MiB]:" .Available}}
`))
}

// row pads a label to 20 columns, the layout of every text section.
func row(label string, value interface{}) string {
	return fmt.Sprintf("%-20s %v", label, value)
}

// rule returns a dashed divider with the title centred in it.
func rule(title string) string {
	title = " " + title + " "
	left := (ruleWidth - len(title)) / 2
	right := ruleWidth - len(title) - left
	if left < 0 {
		left, right = 0, 0
	}
	return strings.Repeat("-", left) + title + strings.Repeat("-", right)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Text prints the full report in fixed section order. It ignores the
// report's scope; sections of categories that were not collected print
// their empty form.
func Text(out io.Writer, rep *report.Report) {
	fmt.Fprint(out, "hwinfo reports the processors, memory, graphics, storage and network "+
		"hardware of this machine.\n\n")
	fmt.Fprint(out, "Hardware Report:\n\n")
	for _, c := range scope.Categories {
		Section(out, rep, c)
	}
}

// Section prints one category of the report with its divider.
func Section(out io.Writer, rep *report.Report, c scope.Category) {
	fmt.Fprintln(out, rule(c.Title()))
	switch c {
	case scope.CPU:
		writeCPUs(out, rep.CPUs)
	case scope.OS:
		arch, endian := osLabels(rep.OS)
		_ = osTpl.Execute(out, struct {
			Name, Version, Kernel, Arch, Endian string
		}{rep.OS.Name, rep.OS.Version, rep.OS.Kernel, arch, endian})
	case scope.GPU:
		writeGPUs(out, rep.GPUs)
	case scope.Memory:
		m := rep.Memory
		_ = ramTpl.Execute(out, struct{ Total, Free, Available int64 }{
			hardware.BytesToMiB(m.TotalBytes),
			hardware.BytesToMiB(m.FreeBytes),
			hardware.BytesToMiB(m.AvailableBytes),
		})
		writeModules(out, m.Modules)
	case scope.MainBoard:
		_ = boardTpl.Execute(out, rep.MainBoard)
	case scope.Battery:
		writeBatteries(out, rep.Batteries)
	case scope.Disks:
		writeDisks(out, rep.Disks)
	case scope.Network:
		writeNetworks(out, rep)
	}
}

func osLabels(o hardware.OS) (arch, endian string) {
	arch = "64 bit"
	if o.Is32Bit {
		arch = "32 bit"
	}
	endian = "big endian"
	if o.LittleEndian {
		endian = "little endian"
	}
	return arch, endian
}

func writeCPUs(out io.Writer, cpus []hardware.CPU) {
	for _, c := range cpus {
		fmt.Fprintf(out, "Socket %d:\n", c.ID)
		fmt.Fprintln(out, row("vendor:", c.Vendor))
		fmt.Fprintln(out, row("model:", c.Model))
		fmt.Fprintln(out, row("physical cores:", c.PhysicalCores))
		fmt.Fprintln(out, row("logical cores:", c.LogicalCores))
		fmt.Fprintln(out, row("max frequency:", c.MaxClockMHz))
		fmt.Fprintln(out, row("regular frequency:", c.RegularClockMHz))
		fmt.Fprintln(out, row("cache size:", fmt.Sprintf("L1: %d, L2: %d, L3: %d",
			c.L1CacheBytes, c.L2CacheBytes, c.L3CacheBytes)))
		for i, mhz := range c.CurrentClockMHz {
			var util float64
			if i < len(c.Utilisation) {
				util = c.Utilisation[i]
			}
			fmt.Fprintln(out, row("", fmt.Sprintf("Thread %d: %d MHz (%.1f%%)", i, mhz, util*100)))
		}
	}
}

func writeGPUs(out io.Writer, gpus []hardware.GPU) {
	for _, g := range gpus {
		fmt.Fprintf(out, "GPU %d:\n", g.ID)
		fmt.Fprintln(out, row("vendor:", g.Vendor))
		fmt.Fprintln(out, row("model:", g.Model))
		fmt.Fprintln(out, row("driverVersion:", g.DriverVersion))
		fmt.Fprintln(out, row("memory [MiB]:", hardware.BytesToMiB(g.MemoryBytes)))
		fmt.Fprintln(out, row("frequency:", g.FrequencyMHz))
		fmt.Fprintln(out, row("cores:", g.Cores))
		fmt.Fprintln(out, row("vendor_id:", g.VendorID))
		fmt.Fprintln(out, row("device_id:", g.DeviceID))
	}
}

func writeModules(out io.Writer, modules []hardware.MemoryModule) {
	for _, m := range modules {
		fmt.Fprintf(out, "RAM %d:\n", m.ID)
		fmt.Fprintln(out, row("vendor:", m.Vendor))
		fmt.Fprintln(out, row("model:", m.Model))
		fmt.Fprintln(out, row("name:", m.Name))
		fmt.Fprintln(out, row("serial-number:", m.SerialNumber))
		fmt.Fprintln(out, row("Frequency [MHz]:", formatFloat(hardware.HzToMHz(m.FrequencyHz))))
	}
}

func writeBatteries(out io.Writer, batteries []hardware.Battery) {
	if len(batteries) == 0 {
		fmt.Fprintln(out, "No Batteries installed or detected")
		return
	}
	for i, b := range batteries {
		charging := "no"
		if b.Charging {
			charging = "yes"
		}
		fmt.Fprintf(out, "Battery %d:\n", i)
		fmt.Fprintln(out, row("vendor:", b.Vendor))
		fmt.Fprintln(out, row("model:", b.Model))
		fmt.Fprintln(out, row("serial-number:", b.SerialNumber))
		fmt.Fprintln(out, row("charging:", charging))
		fmt.Fprintln(out, row("capacity:", b.Capacity))
	}
}

func writeDisks(out io.Writer, disks []hardware.Disk) {
	if len(disks) == 0 {
		fmt.Fprintln(out, "No Disks installed or detected")
		return
	}
	for i, d := range disks {
		fmt.Fprintf(out, "Disk %d:\n", i)
		fmt.Fprintln(out, row("vendor:", d.Vendor))
		fmt.Fprintln(out, row("model:", d.Model))
		fmt.Fprintln(out, row("serial-number:", d.SerialNumber))
		fmt.Fprintln(out, row("size:", d.SizeBytes))
		if d.FreeBytes >= 0 {
			fmt.Fprintln(out, row("free size:", d.FreeBytes))
		}
		if len(d.Volumes) > 0 {
			fmt.Fprintln(out, row("volumes:", strings.Join(d.Volumes, ", ")))
		}
	}
}

func writeNetworks(out io.Writer, rep *report.Report) {
	if len(rep.Networks) == 0 {
		fmt.Fprintln(out, "No Networks installed or detected")
		return
	}
	for i, n := range rep.AddressedNetworks() {
		fmt.Fprintf(out, "Network %d:\n", i)
		fmt.Fprintln(out, row("description:", n.Description))
		fmt.Fprintln(out, row("interface index:", n.InterfaceIndex))
		fmt.Fprintln(out, row("mac:", n.MAC))
		fmt.Fprintln(out, row("ipv4:", n.IPv4))
		fmt.Fprintln(out, row("ipv6:", n.IPv6))
	}
}
