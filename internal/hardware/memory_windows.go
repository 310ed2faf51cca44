//go:build windows

package hardware

import (
	"context"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32PhysicalMemory struct {
	Capacity      uint64
	Speed         uint32
	Manufacturer  string
	PartNumber    string
	SerialNumber  string
	DeviceLocator string
}

// memoryModules queries Win32_PhysicalMemory for per-DIMM details.
func memoryModules(_ context.Context) ([]MemoryModule, error) {
	var pm []win32PhysicalMemory
	q := "SELECT Capacity, Speed, Manufacturer, PartNumber, SerialNumber, DeviceLocator FROM Win32_PhysicalMemory"
	if err := wmi.Query(q, &pm); err != nil {
		return nil, err
	}
	modules := make([]MemoryModule, len(pm))
	for i, m := range pm {
		hz := int64(-1)
		if m.Speed > 0 {
			hz = int64(m.Speed) * 1_000_000
		}
		modules[i] = MemoryModule{
			ID:           i,
			Vendor:       strings.TrimSpace(m.Manufacturer),
			Model:        strings.TrimSpace(m.PartNumber),
			Name:         m.DeviceLocator,
			SerialNumber: strings.TrimSpace(m.SerialNumber),
			SizeBytes:    int64(m.Capacity),
			FrequencyHz:  hz,
		}
	}
	return modules, nil
}
