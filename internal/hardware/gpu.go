package hardware

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jaypipes/ghw"
)

// nvidiaGPU is one row of nvidia-smi output.
type nvidiaGPU struct {
	driver    string
	memoryMiB int64
	clockMHz  int64
}

// GPUs lists graphics adapters found on the PCI bus.
func (s *System) GPUs(ctx context.Context) ([]GPU, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	nvidia := detectNvidiaGPUs(ctx)

	gpus := make([]GPU, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		g := GPU{
			ID:           card.Index,
			MemoryBytes:  -1,
			FrequencyMHz: -1,
			Cores:        -1,
		}
		driver := ""
		if d := card.DeviceInfo; d != nil {
			if d.Vendor != nil {
				g.Vendor = d.Vendor.Name
				g.VendorID = d.Vendor.ID
			}
			if d.Product != nil {
				g.Model = d.Product.Name
				g.DeviceID = d.Product.ID
			}
			driver = d.Driver
		}
		if driver != "" {
			g.DriverVersion = readString(filepath.Join(s.sysfs, "module", driver, "version"))
		}
		if n, ok := nvidia[normalizeBusID(card.Address)]; ok {
			if n.driver != "" {
				g.DriverVersion = n.driver
			}
			if n.memoryMiB > 0 {
				g.MemoryBytes = n.memoryMiB * mib
			}
			if n.clockMHz > 0 {
				g.FrequencyMHz = n.clockMHz
			}
		} else if card.Address != "" {
			s.amdgpuSysfs(card.Address, &g)
		}
		gpus = append(gpus, g)
	}
	return gpus, nil
}

// amdgpuSysfs fills memory and clock from the amdgpu driver attributes.
func (s *System) amdgpuSysfs(address string, g *GPU) {
	dev := filepath.Join(s.sysfs, "bus/pci/devices", address)
	if n, ok := readInt(filepath.Join(dev, "mem_info_vram_total")); ok && n > 0 {
		g.MemoryBytes = n
	}
	if mhz := parseDPMClock(readString(filepath.Join(dev, "pp_dpm_sclk"))); mhz > 0 {
		g.FrequencyMHz = mhz
	}
}

func detectNvidiaGPUs(ctx context.Context) map[string]nvidiaGPU {
	cmd := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=pci.bus_id,driver_version,memory.total,clocks.max.graphics",
		"--format=csv,noheader,nounits")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return parseNvidiaSMI(out)
}

// parseNvidiaSMI reads "bus_id, driver, memory MiB, clock MHz" rows keyed
// by normalized PCI address.
func parseNvidiaSMI(out []byte) map[string]nvidiaGPU {
	gpus := make(map[string]nvidiaGPU)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 4 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		g := nvidiaGPU{driver: parts[1]}
		if n, err := strconv.ParseFloat(parts[2], 64); err == nil {
			g.memoryMiB = int64(n)
		}
		if n, err := strconv.ParseFloat(parts[3], 64); err == nil {
			g.clockMHz = int64(n)
		}
		gpus[normalizeBusID(parts[0])] = g
	}
	return gpus
}

// normalizeBusID maps nvidia-smi's "00000000:01:00.0" and sysfs's
// "0000:01:00.0" to the same "01:00.0" form.
func normalizeBusID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if i := strings.Index(id, ":"); i >= 0 && strings.Count(id, ":") == 2 {
		id = id[i+1:]
	}
	return id
}

// parseDPMClock returns the highest clock listed in an amdgpu pp_dpm_* file,
// e.g. "0: 500Mhz\n1: 2100Mhz *".
func parseDPMClock(text string) int64 {
	var best int64
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v := strings.TrimSuffix(strings.ToLower(fields[1]), "mhz")
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil && n > best {
			best = n
		}
	}
	return best
}
