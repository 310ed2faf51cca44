package hardware

import (
	"context"
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

type win32Battery struct {
	DeviceID                 string
	Name                     string
	BatteryStatus            uint16
	EstimatedChargeRemaining uint16
}

// Batteries queries Win32_Battery.
func (s *System) Batteries(_ context.Context) ([]Battery, error) {
	var bs []win32Battery
	if err := wmi.Query("SELECT DeviceID, Name, BatteryStatus, EstimatedChargeRemaining FROM Win32_Battery", &bs); err != nil {
		return nil, fmt.Errorf("battery: %w", err)
	}
	batteries := make([]Battery, len(bs))
	for i, b := range bs {
		batteries[i] = Battery{
			Model:        b.Name,
			SerialNumber: b.DeviceID,
			// 6-9 are the "Charging..." states of BatteryStatus.
			Charging: b.BatteryStatus >= 6 && b.BatteryStatus <= 9,
			Capacity: uint32(b.EstimatedChargeRemaining),
		}
	}
	return batteries, nil
}
