package hardware

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
)

// socket groups the logical CPUs reported for one physical package.
type socket struct {
	id       int
	vendor   string
	model    string
	maxMHz   float64
	threads  []int
	coreIDs  map[string]struct{}
	physical int
}

// cacheEntry is one CPU cache as seen by a logical processor.
type cacheEntry struct {
	level       int
	instruction bool
	sizeBytes   int64
	cpus        []uint32
}

// CPUs returns one entry per physical processor package.
func (s *System) CPUs(ctx context.Context) ([]CPU, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("cpu info: %w", err)
	}
	logical, _ := cpu.CountsWithContext(ctx, true)
	physical, _ := cpu.CountsWithContext(ctx, false)
	sockets := socketsFromInfo(infos, logical, physical)
	if len(sockets) == 0 {
		return nil, nil
	}

	// Utilisation is best effort; a failed sample reports 0 for every thread.
	percents, _ := cpu.PercentWithContext(ctx, s.sampleInterval, true)
	caches := s.cpuCaches()

	cpus := make([]CPU, 0, len(sockets))
	for _, sk := range sockets {
		c := CPU{
			ID:              sk.id,
			Vendor:          sk.vendor,
			Model:           sk.model,
			PhysicalCores:   sk.physical,
			LogicalCores:    len(sk.threads),
			MaxClockMHz:     -1,
			RegularClockMHz: -1,
			CurrentClockMHz: make([]int64, len(sk.threads)),
			Utilisation:     make([]float64, len(sk.threads)),
		}
		if sk.maxMHz > 0 {
			c.MaxClockMHz = int64(math.Round(sk.maxMHz))
		}
		first := sk.threads[0]
		if khz, ok := readInt(s.cpufreqPath(first, "cpuinfo_max_freq")); ok {
			c.MaxClockMHz = khz / 1000
		}
		c.RegularClockMHz = c.MaxClockMHz
		if khz, ok := readInt(s.cpufreqPath(first, "base_frequency")); ok {
			c.RegularClockMHz = khz / 1000
		}
		c.L1CacheBytes, c.L2CacheBytes, c.L3CacheBytes = cacheSizes(caches, uint32(first))
		for i, t := range sk.threads {
			c.CurrentClockMHz[i] = -1
			if khz, ok := readInt(s.cpufreqPath(t, "scaling_cur_freq")); ok {
				c.CurrentClockMHz[i] = khz / 1000
			}
			if t < len(percents) {
				c.Utilisation[i] = percents[t] / 100
			}
		}
		cpus = append(cpus, c)
	}
	return cpus, nil
}

func (s *System) cpufreqPath(thread int, attr string) string {
	return filepath.Join(s.sysfs, "devices/system/cpu", "cpu"+strconv.Itoa(thread), "cpufreq", attr)
}

// socketsFromInfo groups gopsutil's per-CPU records by physical package id.
// Platforms that report one record per package (Windows, macOS) are spread
// over logicalTotal threads instead.
func socketsFromInfo(infos []cpu.InfoStat, logicalTotal, physicalTotal int) []socket {
	var order []string
	byID := make(map[string]*socket)
	for _, in := range infos {
		key := in.PhysicalID
		sk, ok := byID[key]
		if !ok {
			sk = &socket{
				id:      len(order),
				vendor:  in.VendorID,
				model:   strings.TrimSpace(in.ModelName),
				coreIDs: make(map[string]struct{}),
			}
			if n, err := strconv.Atoi(key); err == nil {
				sk.id = n
			}
			byID[key] = sk
			order = append(order, key)
		}
		sk.threads = append(sk.threads, int(in.CPU))
		if in.CoreID != "" {
			sk.coreIDs[in.CoreID] = struct{}{}
		}
		if in.Mhz > sk.maxMHz {
			sk.maxMHz = in.Mhz
		}
	}

	aggregated := len(infos) == len(order) && logicalTotal > len(infos)
	out := make([]socket, 0, len(order))
	for i, key := range order {
		sk := byID[key]
		if aggregated {
			per := logicalTotal / len(order)
			sk.threads = make([]int, per)
			for t := range sk.threads {
				sk.threads[t] = i*per + t
			}
		}
		sk.physical = len(sk.coreIDs)
		if aggregated || sk.physical == 0 {
			if physicalTotal > 0 {
				sk.physical = physicalTotal / len(order)
			} else {
				sk.physical = len(sk.threads)
			}
		}
		out = append(out, *sk)
	}
	return out
}

// cpuCaches reads the cache topology of every NUMA node.
func (s *System) cpuCaches() []cacheEntry {
	topo, err := ghw.Topology(ghw.WithDisableWarnings())
	if err != nil {
		return nil
	}
	var out []cacheEntry
	for _, node := range topo.Nodes {
		for _, c := range node.Caches {
			out = append(out, cacheEntry{
				level:       int(c.Level),
				instruction: strings.EqualFold(c.Type.String(), "instruction"),
				sizeBytes:   int64(c.SizeBytes),
				cpus:        c.LogicalProcessors,
			})
		}
	}
	return out
}

// cacheSizes returns the L1 data, L2 and L3 cache sizes serving thread.
// Levels without a matching cache are -1.
func cacheSizes(caches []cacheEntry, thread uint32) (l1, l2, l3 int64) {
	sizes := map[int]int64{1: -1, 2: -1, 3: -1}
	for _, c := range caches {
		if c.instruction || c.level < 1 || c.level > 3 {
			continue
		}
		if !servesThread(c.cpus, thread) {
			continue
		}
		if sizes[c.level] == -1 {
			sizes[c.level] = c.sizeBytes
		}
	}
	return sizes[1], sizes[2], sizes[3]
}

func servesThread(cpus []uint32, thread uint32) bool {
	if len(cpus) == 0 {
		return true
	}
	for _, c := range cpus {
		if c == thread {
			return true
		}
	}
	return false
}
