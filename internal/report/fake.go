package report

import (
	"context"
	"sync"

	"github.com/shayne-snap/hwinfo/internal/hardware"
	"github.com/shayne-snap/hwinfo/internal/scope"
)

// Fake is an in-memory hardware.Source. Errs makes the named category fail
// after returning its value; Calls counts queries per category.
type Fake struct {
	CPUList     []hardware.CPU
	OSInfo      hardware.OS
	GPUList     []hardware.GPU
	MemoryInfo  hardware.Memory
	Board       hardware.MainBoard
	BatteryList []hardware.Battery
	DiskList    []hardware.Disk
	NetworkList []hardware.Network
	Errs        map[scope.Category]error

	mu    sync.Mutex
	calls map[scope.Category]int
}

var _ hardware.Source = (*Fake)(nil)

func (f *Fake) record(c scope.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[scope.Category]int)
	}
	f.calls[c]++
	return f.Errs[c]
}

// Calls returns how often category c was queried.
func (f *Fake) Calls(c scope.Category) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[c]
}

func (f *Fake) CPUs(context.Context) ([]hardware.CPU, error) {
	return f.CPUList, f.record(scope.CPU)
}

func (f *Fake) OS(context.Context) (hardware.OS, error) {
	return f.OSInfo, f.record(scope.OS)
}

func (f *Fake) GPUs(context.Context) ([]hardware.GPU, error) {
	return f.GPUList, f.record(scope.GPU)
}

func (f *Fake) Memory(context.Context) (hardware.Memory, error) {
	return f.MemoryInfo, f.record(scope.Memory)
}

func (f *Fake) MainBoard(context.Context) (hardware.MainBoard, error) {
	return f.Board, f.record(scope.MainBoard)
}

func (f *Fake) Batteries(context.Context) ([]hardware.Battery, error) {
	return f.BatteryList, f.record(scope.Battery)
}

func (f *Fake) Disks(context.Context) ([]hardware.Disk, error) {
	return f.DiskList, f.record(scope.Disks)
}

func (f *Fake) Networks(context.Context) ([]hardware.Network, error) {
	return f.NetworkList, f.record(scope.Network)
}
