package hardware

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	xcpu "golang.org/x/sys/cpu"
)

// OS describes the running operating system.
func (s *System) OS(ctx context.Context) (OS, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return OS{}, fmt.Errorf("host info: %w", err)
	}
	name := info.Platform
	if name == "" {
		name = info.OS
	}
	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}
	return OS{
		Name:         name,
		Version:      info.PlatformVersion,
		Kernel:       info.KernelVersion,
		Is32Bit:      is32BitArch(arch),
		LittleEndian: !xcpu.IsBigEndian,
	}, nil
}

// is32BitArch classifies a `uname -m` or GOARCH value.
func is32BitArch(arch string) bool {
	switch arch {
	case "i386", "i486", "i586", "i686", "x86", "386",
		"arm", "armv5l", "armv6l", "armv7l", "armv8l",
		"mips", "mipsle", "ppc", "s390", "riscv32":
		return true
	}
	return false
}
