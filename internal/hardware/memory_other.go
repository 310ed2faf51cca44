//go:build !windows

package hardware

import (
	"context"

	"github.com/jaypipes/ghw"
)

// memoryModules reads DIMMs from the SMBIOS tables exposed by ghw. Module
// speed is not available there, so FrequencyHz is always -1.
func memoryModules(_ context.Context) ([]MemoryModule, error) {
	info, err := ghw.Memory(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}
	modules := make([]MemoryModule, 0, len(info.Modules))
	for i, m := range info.Modules {
		modules = append(modules, MemoryModule{
			ID:           i,
			Vendor:       m.Vendor,
			Model:        m.Label,
			Name:         m.Location,
			SerialNumber: m.SerialNumber,
			SizeBytes:    m.SizeBytes,
			FrequencyHz:  -1,
		})
	}
	return modules, nil
}
