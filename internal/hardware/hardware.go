// Package hardware queries the current machine for CPU, OS, GPU, memory,
// main board, battery, disk and network information.
package hardware

import (
	"context"
	"time"
)

// CPU holds one physical processor package.
type CPU struct {
	ID              int       `json:"socket_id"`
	Vendor          string    `json:"vendor"`
	Model           string    `json:"model"`
	PhysicalCores   int       `json:"physical_cores"`
	LogicalCores    int       `json:"logical_cores"`
	MaxClockMHz     int64     `json:"max_frequency_mhz"`
	RegularClockMHz int64     `json:"regular_frequency_mhz"`
	L1CacheBytes    int64     `json:"l1_bytes"`
	L2CacheBytes    int64     `json:"l2_bytes"`
	L3CacheBytes    int64     `json:"l3_bytes"`
	CurrentClockMHz []int64   `json:"current_frequency_mhz"`
	Utilisation     []float64 `json:"utilisation"`
}

// OS describes the running operating system.
type OS struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Kernel       string `json:"kernel"`
	Is32Bit      bool   `json:"is_32bit"`
	LittleEndian bool   `json:"little_endian"`
}

// GPU holds one graphics adapter. Unknown numbers are -1.
type GPU struct {
	ID            int    `json:"id"`
	Vendor        string `json:"vendor"`
	Model         string `json:"model"`
	DriverVersion string `json:"driver_version"`
	MemoryBytes   int64  `json:"memory_bytes"`
	FrequencyMHz  int64  `json:"frequency_mhz"`
	Cores         int64  `json:"cores"`
	VendorID      string `json:"vendor_id"`
	DeviceID      string `json:"device_id"`
}

// Memory holds system memory totals and the installed modules.
type Memory struct {
	TotalBytes     int64          `json:"total_bytes"`
	FreeBytes      int64          `json:"free_bytes"`
	AvailableBytes int64          `json:"available_bytes"`
	Modules        []MemoryModule `json:"modules"`
}

// MemoryModule is one installed DIMM. FrequencyHz is -1 when unknown.
type MemoryModule struct {
	ID           int    `json:"id"`
	Vendor       string `json:"vendor"`
	Model        string `json:"model"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	SizeBytes    int64  `json:"size_bytes"`
	FrequencyHz  int64  `json:"frequency_hz"`
}

// MainBoard describes the baseboard.
type MainBoard struct {
	Vendor       string `json:"vendor"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	SerialNumber string `json:"serial_number"`
}

// Battery holds one battery. Capacity is the charge level in percent.
type Battery struct {
	Vendor       string `json:"vendor"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Charging     bool   `json:"charging"`
	Capacity     uint32 `json:"capacity"`
}

// Disk holds one physical drive. FreeBytes is -1 when no volume is mounted.
type Disk struct {
	Vendor       string   `json:"vendor"`
	Model        string   `json:"model"`
	SerialNumber string   `json:"serial_number"`
	SizeBytes    int64    `json:"size_bytes"`
	FreeBytes    int64    `json:"free_bytes"`
	Volumes      []string `json:"volumes"`
}

// Network holds one network interface. IPv4 and IPv6 carry the first
// address of each family, or "" when the interface has none.
type Network struct {
	Description    string `json:"description"`
	InterfaceIndex int    `json:"interface_index"`
	MAC            string `json:"mac"`
	IPv4           string `json:"ipv4"`
	IPv6           string `json:"ipv6"`
}

// HasAddress reports whether the interface carries an IPv4 or IPv6 address.
func (n Network) HasAddress() bool {
	return n.IPv4 != "" || n.IPv6 != ""
}

// Source answers hardware queries for one machine.
type Source interface {
	CPUs(ctx context.Context) ([]CPU, error)
	OS(ctx context.Context) (OS, error)
	GPUs(ctx context.Context) ([]GPU, error)
	Memory(ctx context.Context) (Memory, error)
	MainBoard(ctx context.Context) (MainBoard, error)
	Batteries(ctx context.Context) ([]Battery, error)
	Disks(ctx context.Context) ([]Disk, error)
	Networks(ctx context.Context) ([]Network, error)
}

const (
	mib = 1024 * 1024
	gib = 1024 * 1024 * 1024
)

// BytesToMiB converts bytes to whole mebibytes.
func BytesToMiB(b int64) int64 {
	return b / mib
}

// BytesToGiB converts bytes to gibibytes.
func BytesToGiB(b int64) float64 {
	return float64(b) / gib
}

// HzToMHz converts a frequency in hertz to megahertz, keeping -1 as unknown.
func HzToMHz(hz int64) float64 {
	if hz == -1 {
		return -1
	}
	return float64(hz) / 1e6
}

// System is the Source for the local machine.
type System struct {
	sysfs          string
	sampleInterval time.Duration
}

// Option configures a System.
type Option func(*System)

// WithSysfsRoot overrides the sysfs mount point (default /sys).
func WithSysfsRoot(root string) Option {
	return func(s *System) {
		s.sysfs = root
	}
}

// WithSampleInterval sets how long CPU utilisation is sampled for.
func WithSampleInterval(d time.Duration) Option {
	return func(s *System) {
		s.sampleInterval = d
	}
}

// NewSystem returns a Source reading the local machine.
func NewSystem(opts ...Option) *System {
	s := &System{
		sysfs:          "/sys",
		sampleInterval: 200 * time.Millisecond,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var _ Source = (*System)(nil)
