package hardware

import (
	"context"
	"fmt"
	"path/filepath"
)

// Batteries reads /sys/class/power_supply.
func (s *System) Batteries(_ context.Context) ([]Battery, error) {
	batteries, err := readPowerSupply(filepath.Join(s.sysfs, "class/power_supply"))
	if err != nil {
		return nil, fmt.Errorf("power supply: %w", err)
	}
	return batteries, nil
}
