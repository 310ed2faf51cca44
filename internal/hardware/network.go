package hardware

import (
	"context"
	"fmt"
	"net"

	gopsutilNet "github.com/shirou/gopsutil/v3/net"
)

// Networks lists every network interface, with or without addresses.
func (s *System) Networks(ctx context.Context) ([]Network, error) {
	ifaces, err := gopsutilNet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("net interfaces: %w", err)
	}
	networks := make([]Network, 0, len(ifaces))
	for _, iface := range ifaces {
		v4, v6 := splitAddrs(iface.Addrs)
		networks = append(networks, Network{
			Description:    iface.Name,
			InterfaceIndex: iface.Index,
			MAC:            iface.HardwareAddr,
			IPv4:           v4,
			IPv6:           v6,
		})
	}
	return networks, nil
}

// splitAddrs returns the first IPv4 and first IPv6 address of an interface.
// Addresses come in CIDR form ("10.0.0.2/24") or bare.
func splitAddrs(addrs gopsutilNet.InterfaceAddrList) (v4, v6 string) {
	for _, a := range addrs {
		ip, _, err := net.ParseCIDR(a.Addr)
		if err != nil {
			ip = net.ParseIP(a.Addr)
		}
		if ip == nil {
			continue
		}
		if ip.To4() != nil {
			if v4 == "" {
				v4 = ip.String()
			}
		} else if v6 == "" {
			v6 = ip.String()
		}
	}
	return v4, v6
}
