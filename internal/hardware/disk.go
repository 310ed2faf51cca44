package hardware

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/disk"
)

var virtualDiskPrefixes = []string{"loop", "ram", "zram", "dm-", "md"}

// Disks lists physical block devices with the free space of their mounted
// partitions.
func (s *System) Disks(ctx context.Context) ([]Disk, error) {
	info, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	var disks []Disk
	for _, d := range info.Disks {
		if isVirtualDisk(d.Name) {
			continue
		}
		out := Disk{
			Vendor:       d.Vendor,
			Model:        d.Model,
			SerialNumber: d.SerialNumber,
			SizeBytes:    int64(d.SizeBytes),
			FreeBytes:    -1,
		}
		for _, p := range d.Partitions {
			if p.MountPoint == "" {
				continue
			}
			out.Volumes = append(out.Volumes, p.MountPoint)
			u, err := disk.UsageWithContext(ctx, p.MountPoint)
			if err != nil {
				continue
			}
			if out.FreeBytes < 0 {
				out.FreeBytes = 0
			}
			out.FreeBytes += int64(u.Free)
		}
		disks = append(disks, out)
	}
	return disks, nil
}

func isVirtualDisk(name string) bool {
	for _, p := range virtualDiskPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
