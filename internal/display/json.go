package display

import (
	"encoding/json"
	"io"

	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/report"
	"github.com/shayne-snap/hwinfo/internal/scope"
)

// JSON prints one document with a top-level key per category enabled in sc.
// Disabled categories are absent. pretty indents by four spaces.
func JSON(out io.Writer, rep *report.Report, sc scope.Scope, pretty bool) {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "    ")
	}
	_ = enc.Encode(reportJSON(rep, sc))
}

func reportJSON(rep *report.Report, sc scope.Scope) map[string]interface{} {
	doc := map[string]interface{}{}
	if sc.CPU {
		doc["cpu"] = cpusJSON(rep.CPUs)
	}
	if sc.OS {
		arch, endian := osLabels(rep.OS)
		doc["os"] = map[string]interface{}{
			"name":         rep.OS.Name,
			"version":      rep.OS.Version,
			"kernel":       rep.OS.Kernel,
			"architecture": arch,
			"endianess":    endian,
		}
	}
	if sc.GPU {
		doc["gpu"] = gpusJSON(rep.GPUs)
	}
	if sc.Memory {
		m := rep.Memory
		doc["memory"] = map[string]interface{}{
			"total_mib":     hardware.BytesToMiB(m.TotalBytes),
			"free_mib":      hardware.BytesToMiB(m.FreeBytes),
			"available_mib": hardware.BytesToMiB(m.AvailableBytes),
		}
		doc["memory_modules"] = modulesJSON(m.Modules)
	}
	if sc.MainBoard {
		doc["main_board"] = map[string]interface{}{
			"vendor":        rep.MainBoard.Vendor,
			"name":          rep.MainBoard.Name,
			"version":       rep.MainBoard.Version,
			"serial-number": rep.MainBoard.SerialNumber,
		}
	}
	if sc.Battery {
		batteries := batteriesJSON(rep.Batteries)
		doc["batteries"] = batteries
		doc["battery_count"] = len(batteries)
		doc["has_batteries"] = len(batteries) > 0
	}
	if sc.Disks {
		disks := disksJSON(rep.Disks)
		doc["disks"] = disks
		doc["disk_count"] = len(disks)
		doc["has_disks"] = len(disks) > 0
	}
	if sc.Network {
		networks := networksJSON(rep.AddressedNetworks())
		doc["networks"] = networks
		doc["network_count"] = len(networks)
		doc["has_networks"] = len(networks) > 0
	}
	return doc
}

func cpusJSON(cpus []hardware.CPU) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(cpus))
	for _, c := range cpus {
		out = append(out, map[string]interface{}{
			"socket_id":             c.ID,
			"vendor":                c.Vendor,
			"model":                 c.Model,
			"physical_cores":        c.PhysicalCores,
			"logical_cores":         c.LogicalCores,
			"max_frequency_mhz":     c.MaxClockMHz,
			"regular_frequency_mhz": c.RegularClockMHz,
			"cache": map[string]interface{}{
				"L1_bytes": c.L1CacheBytes,
				"L2_bytes": c.L2CacheBytes,
				"L3_bytes": c.L3CacheBytes,
			},
		})
	}
	return out
}

func gpusJSON(gpus []hardware.GPU) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(gpus))
	for _, g := range gpus {
		out = append(out, map[string]interface{}{
			"id":             g.ID,
			"vendor":         g.Vendor,
			"model":          g.Model,
			"driver_version": g.DriverVersion,
			"memory_mib":     hardware.BytesToMiB(g.MemoryBytes),
			"frequency_mhz":  g.FrequencyMHz,
			"cores":          g.Cores,
			"vendor_id":      g.VendorID,
			"device_id":      g.DeviceID,
		})
	}
	return out
}

func modulesJSON(modules []hardware.MemoryModule) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(modules))
	for _, m := range modules {
		out = append(out, map[string]interface{}{
			"id":            m.ID,
			"vendor":        m.Vendor,
			"model":         m.Model,
			"name":          m.Name,
			"serial-number": m.SerialNumber,
			"frequency_mhz": hardware.HzToMHz(m.FrequencyHz),
		})
	}
	return out
}

func batteriesJSON(batteries []hardware.Battery) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(batteries))
	for i, b := range batteries {
		out = append(out, map[string]interface{}{
			"id":            i,
			"vendor":        b.Vendor,
			"model":         b.Model,
			"serial_number": b.SerialNumber,
			"charging":      b.Charging,
			"capacity":      b.Capacity,
		})
	}
	return out
}

func disksJSON(disks []hardware.Disk) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(disks))
	for i, d := range disks {
		out = append(out, map[string]interface{}{
			"id":            i,
			"vendor":        d.Vendor,
			"model":         d.Model,
			"serial_number": d.SerialNumber,
			"size_bytes":    d.SizeBytes,
			"size_gb":       hardware.BytesToGiB(d.SizeBytes),
		})
	}
	return out
}

func networksJSON(networks []hardware.Network) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(networks))
	for i, n := range networks {
		out = append(out, map[string]interface{}{
			"id":              i,
			"description":     n.Description,
			"interface_index": n.InterfaceIndex,
			"mac":             n.MAC,
			"ipv4":            n.IPv4,
			"ipv6":            n.IPv6,
		})
	}
	return out
}
