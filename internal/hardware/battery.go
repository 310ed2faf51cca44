package hardware

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// readPowerSupply lists the batteries under a power_supply class directory
// (normally /sys/class/power_supply). A missing directory means no batteries.
func readPowerSupply(dir string) ([]Battery, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var batteries []Battery
	for _, name := range names {
		p := filepath.Join(dir, name)
		if readString(filepath.Join(p, "type")) != "Battery" {
			continue
		}
		b := Battery{
			Vendor:       readString(filepath.Join(p, "manufacturer")),
			Model:        readString(filepath.Join(p, "model_name")),
			SerialNumber: readString(filepath.Join(p, "serial_number")),
			Charging:     readString(filepath.Join(p, "status")) == "Charging",
		}
		if n, err := strconv.ParseUint(readString(filepath.Join(p, "capacity")), 10, 32); err == nil {
			b.Capacity = uint32(n)
		}
		batteries = append(batteries, b)
	}
	return batteries, nil
}
