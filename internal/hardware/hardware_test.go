package hardware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	gopsutilNet "github.com/shirou/gopsutil/v3/net"
)

func TestSocketsFromInfo_GroupsByPhysicalID(t *testing.T) {
	infos := []cpu.InfoStat{
		{CPU: 0, PhysicalID: "0", CoreID: "0", VendorID: "GenuineIntel", ModelName: "Xeon ", Mhz: 3000},
		{CPU: 1, PhysicalID: "0", CoreID: "1", VendorID: "GenuineIntel", ModelName: "Xeon ", Mhz: 3500},
		{CPU: 2, PhysicalID: "1", CoreID: "0", VendorID: "GenuineIntel", ModelName: "Xeon", Mhz: 3000},
		{CPU: 3, PhysicalID: "1", CoreID: "0", VendorID: "GenuineIntel", ModelName: "Xeon", Mhz: 3000},
		{CPU: 4, PhysicalID: "0", CoreID: "0", VendorID: "GenuineIntel", ModelName: "Xeon ", Mhz: 3000},
	}
	sockets := socketsFromInfo(infos, 5, 3)
	if len(sockets) != 2 {
		t.Fatalf("len(sockets) = %d, want 2", len(sockets))
	}
	s0 := sockets[0]
	if s0.id != 0 || s0.model != "Xeon" || s0.vendor != "GenuineIntel" {
		t.Errorf("socket 0 = %+v", s0)
	}
	if len(s0.threads) != 3 || s0.threads[2] != 4 {
		t.Errorf("socket 0 threads = %v, want [0 1 4]", s0.threads)
	}
	if s0.physical != 2 {
		t.Errorf("socket 0 physical = %d, want 2", s0.physical)
	}
	if s0.maxMHz != 3500 {
		t.Errorf("socket 0 maxMHz = %v, want 3500", s0.maxMHz)
	}
	if sockets[1].id != 1 || sockets[1].physical != 1 || len(sockets[1].threads) != 2 {
		t.Errorf("socket 1 = %+v", sockets[1])
	}
}

func TestSocketsFromInfo_AggregatedRecord(t *testing.T) {
	// Windows and macOS report a single record per package.
	infos := []cpu.InfoStat{{CPU: 0, VendorID: "AuthenticAMD", ModelName: "Ryzen", Cores: 8}}
	sockets := socketsFromInfo(infos, 16, 8)
	if len(sockets) != 1 {
		t.Fatalf("len(sockets) = %d, want 1", len(sockets))
	}
	if len(sockets[0].threads) != 16 {
		t.Errorf("threads = %d, want 16", len(sockets[0].threads))
	}
	if sockets[0].threads[15] != 15 {
		t.Errorf("last thread = %d, want 15", sockets[0].threads[15])
	}
	if sockets[0].physical != 8 {
		t.Errorf("physical = %d, want 8", sockets[0].physical)
	}
}

func TestSocketsFromInfo_Empty(t *testing.T) {
	if got := socketsFromInfo(nil, 0, 0); len(got) != 0 {
		t.Errorf("socketsFromInfo(nil) = %v, want empty", got)
	}
}

func TestCacheSizes(t *testing.T) {
	caches := []cacheEntry{
		{level: 1, instruction: true, sizeBytes: 32 * 1024, cpus: []uint32{0, 1}},
		{level: 1, sizeBytes: 48 * 1024, cpus: []uint32{0, 1}},
		{level: 1, sizeBytes: 64 * 1024, cpus: []uint32{2, 3}},
		{level: 2, sizeBytes: 1280 * 1024, cpus: []uint32{0, 1}},
		{level: 3, sizeBytes: 24 * 1024 * 1024, cpus: []uint32{0, 1, 2, 3}},
	}
	l1, l2, l3 := cacheSizes(caches, 0)
	if l1 != 48*1024 || l2 != 1280*1024 || l3 != 24*1024*1024 {
		t.Errorf("cacheSizes(thread 0) = %d, %d, %d", l1, l2, l3)
	}
	l1, l2, _ = cacheSizes(caches, 2)
	if l1 != 64*1024 {
		t.Errorf("cacheSizes(thread 2) L1 = %d, want 65536", l1)
	}
	if l2 != -1 {
		t.Errorf("cacheSizes(thread 2) L2 = %d, want -1", l2)
	}
	l1, l2, l3 = cacheSizes(nil, 0)
	if l1 != -1 || l2 != -1 || l3 != -1 {
		t.Errorf("cacheSizes(nil) = %d, %d, %d, want -1s", l1, l2, l3)
	}
}

func TestParseNvidiaSMI(t *testing.T) {
	out := []byte("00000000:01:00.0, 550.54.14, 24564, 2520\n\nbroken line\n00000000:0A:00.0, 550.54.14, [N/A], 1980\n")
	gpus := parseNvidiaSMI(out)
	if len(gpus) != 2 {
		t.Fatalf("len = %d, want 2", len(gpus))
	}
	g := gpus["01:00.0"]
	if g.driver != "550.54.14" || g.memoryMiB != 24564 || g.clockMHz != 2520 {
		t.Errorf("gpus[01:00.0] = %+v", g)
	}
	g2 := gpus["0a:00.0"]
	if g2.memoryMiB != 0 || g2.clockMHz != 1980 {
		t.Errorf("gpus[0a:00.0] = %+v", g2)
	}
}

func TestNormalizeBusID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"00000000:01:00.0", "01:00.0"},
		{"0000:01:00.0", "01:00.0"},
		{"01:00.0", "01:00.0"},
		{" 0000:0A:00.0 ", "0a:00.0"},
	}
	for _, tt := range tests {
		if got := normalizeBusID(tt.in); got != tt.want {
			t.Errorf("normalizeBusID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDPMClock(t *testing.T) {
	text := "0: 500Mhz\n1: 1200Mhz\n2: 2100Mhz *\n"
	if got := parseDPMClock(text); got != 2100 {
		t.Errorf("parseDPMClock = %d, want 2100", got)
	}
	if got := parseDPMClock(""); got != 0 {
		t.Errorf("parseDPMClock(\"\") = %d, want 0", got)
	}
}

func writeAttr(t *testing.T, dir, name, value string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadPowerSupply(t *testing.T) {
	root := t.TempDir()
	bat := filepath.Join(root, "BAT0")
	writeAttr(t, bat, "type", "Battery")
	writeAttr(t, bat, "manufacturer", "SMP")
	writeAttr(t, bat, "model_name", "5B10W13930")
	writeAttr(t, bat, "serial_number", "1234")
	writeAttr(t, bat, "status", "Charging")
	writeAttr(t, bat, "capacity", "87")
	writeAttr(t, filepath.Join(root, "AC"), "type", "Mains")

	got, err := readPowerSupply(root)
	if err != nil {
		t.Fatalf("readPowerSupply: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := Battery{Vendor: "SMP", Model: "5B10W13930", SerialNumber: "1234", Charging: true, Capacity: 87}
	if got[0] != want {
		t.Errorf("battery = %+v, want %+v", got[0], want)
	}
}

func TestReadPowerSupply_Missing(t *testing.T) {
	got, err := readPowerSupply(filepath.Join(t.TempDir(), "nope"))
	if err != nil || got != nil {
		t.Errorf("readPowerSupply(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestSplitAddrs(t *testing.T) {
	addrs := gopsutilNet.InterfaceAddrList{
		{Addr: "fe80::1c2b:3dff:fe4e:5f60/64"},
		{Addr: "192.168.1.20/24"},
		{Addr: "10.0.0.1/8"},
		{Addr: "garbage"},
	}
	v4, v6 := splitAddrs(addrs)
	if v4 != "192.168.1.20" {
		t.Errorf("v4 = %q", v4)
	}
	if v6 != "fe80::1c2b:3dff:fe4e:5f60" {
		t.Errorf("v6 = %q", v6)
	}
	v4, v6 = splitAddrs(nil)
	if v4 != "" || v6 != "" {
		t.Errorf("splitAddrs(nil) = %q, %q", v4, v6)
	}
}

func TestIs32BitArch(t *testing.T) {
	tests := []struct {
		arch string
		want bool
	}{
		{"x86_64", false},
		{"aarch64", false},
		{"arm64", false},
		{"i686", true},
		{"armv7l", true},
		{"386", true},
		{"s390x", false},
	}
	for _, tt := range tests {
		if got := is32BitArch(tt.arch); got != tt.want {
			t.Errorf("is32BitArch(%q) = %v, want %v", tt.arch, got, tt.want)
		}
	}
}

func TestMemoryTotals_ReportsAvailableAsIs(t *testing.T) {
	tests := []struct {
		name string
		v    mem.VirtualMemoryStat
		want Memory
	}{
		{
			name: "kernel figures",
			v:    mem.VirtualMemoryStat{Total: 16 << 30, Free: 2 << 30, Available: 9 << 30},
			want: Memory{TotalBytes: 16 << 30, FreeBytes: 2 << 30, AvailableBytes: 9 << 30},
		},
		{
			name: "zero available stays zero",
			v:    mem.VirtualMemoryStat{Total: 16 << 30, Free: 1 << 30},
			want: Memory{TotalBytes: 16 << 30, FreeBytes: 1 << 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := memoryTotals(&tt.v)
			if got.TotalBytes != tt.want.TotalBytes || got.FreeBytes != tt.want.FreeBytes ||
				got.AvailableBytes != tt.want.AvailableBytes {
				t.Errorf("memoryTotals = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnitConversions(t *testing.T) {
	if got := BytesToGiB(10737418240); got != 10.0 {
		t.Errorf("BytesToGiB = %v, want 10", got)
	}
	if got := BytesToMiB(8 * 1024 * 1024 * 1024); got != 8192 {
		t.Errorf("BytesToMiB = %d, want 8192", got)
	}
	if got := BytesToMiB(1024*1024 + 1); got != 1 {
		t.Errorf("BytesToMiB truncates: got %d, want 1", got)
	}
	if got := HzToMHz(-1); got != -1 {
		t.Errorf("HzToMHz(-1) = %v, want -1", got)
	}
	if got := HzToMHz(3_200_000_000); got != 3200.0 {
		t.Errorf("HzToMHz(3.2e9) = %v, want 3200", got)
	}
}

func TestNetwork_HasAddress(t *testing.T) {
	if (Network{}).HasAddress() {
		t.Error("empty network reports an address")
	}
	if !(Network{IPv6: "::1"}).HasAddress() {
		t.Error("IPv6-only network reports no address")
	}
}

func TestNewSystem_Options(t *testing.T) {
	s := NewSystem(WithSysfsRoot("/tmp/sys"), WithSampleInterval(0))
	if s.sysfs != "/tmp/sys" || s.sampleInterval != 0 {
		t.Errorf("NewSystem options not applied: %+v", s)
	}
	if got := s.cpufreqPath(3, "scaling_cur_freq"); got != "/tmp/sys/devices/system/cpu/cpu3/cpufreq/scaling_cur_freq" {
		t.Errorf("cpufreqPath = %q", got)
	}
}

func TestReadInt(t *testing.T) {
	dir := t.TempDir()
	writeAttr(t, dir, "good", "4200000")
	writeAttr(t, dir, "bad", "n/a")
	if n, ok := readInt(filepath.Join(dir, "good")); !ok || n != 4200000 {
		t.Errorf("readInt(good) = %d, %v", n, ok)
	}
	if _, ok := readInt(filepath.Join(dir, "bad")); ok {
		t.Error("readInt(bad) ok = true")
	}
	if _, ok := readInt(filepath.Join(dir, "missing")); ok {
		t.Error("readInt(missing) ok = true")
	}
}
