package hardware

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// Memory returns memory totals and the installed modules. A failure to
// enumerate modules still returns the totals alongside the error.
func (s *System) Memory(ctx context.Context) (Memory, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("mem: %w", err)
	}
	m := memoryTotals(v)

	modules, err := memoryModules(ctx)
	if err != nil {
		return m, fmt.Errorf("memory modules: %w", err)
	}
	m.Modules = modules
	return m, nil
}

// memoryTotals copies the kernel's figures as reported.
func memoryTotals(v *mem.VirtualMemoryStat) Memory {
	return Memory{
		TotalBytes:     int64(v.Total),
		FreeBytes:      int64(v.Free),
		AvailableBytes: int64(v.Available),
	}
}
