package topology

import (
	"github.com/fastcat/hellonet/device"
	"github.com/fastcat/hellonet/internal"
	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/util"
)

type addressing struct {
	addr, mask string
}

// networkFunc computes the network an interface is on, as a comparable string
// such as "10.0.0.0/30"
type networkFunc func(*device.Interface) (string, bool)

func newNetworkFunc(size int) networkFunc {
	compute := internal.MemoizeResult(size, 4, func(a addressing) (string, error) {
		n, err := util.IPv4Network(a.addr, a.mask)
		if err != nil {
			// parsing is memoized, so this only logs once per bad value
			log.Debug("topology: ignoring address %s %s: %v", a.addr, a.mask, err)
			return "", err
		}
		return n.String(), nil
	})
	return func(i *device.Interface) (string, bool) {
		if !i.HasAddress() {
			return "", false
		}
		n, err := compute(addressing{i.IPAddress, i.SubnetMask})
		return n, err == nil
	}
}

// Build infers the links between the given devices. Every unordered pair of
// devices is compared interface by interface, and a Link is emitted for each
// pair of interfaces whose addresses mask down to the same network.
// Interfaces without usable addressing are skipped.
//
// The result only depends on the contents of the set: devices are visited in
// id order and interfaces in declaration order. It is never nil.
func Build(devices *device.Set) []Link {
	list := devices.Devices()
	size := 0
	for _, d := range list {
		size += len(d.Interfaces)
	}
	network := newNetworkFunc(size)

	links := []Link{}
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			links = appendLinks(links, list[i], list[j], network)
		}
	}
	return links
}

func appendLinks(links []Link, d1, d2 *device.Device, network networkFunc) []Link {
	if d1.ID == d2.ID {
		return links
	}
	for _, i1 := range d1.Interfaces {
		n1, ok := network(i1)
		if !ok {
			continue
		}
		for _, i2 := range d2.Interfaces {
			n2, ok := network(i2)
			if !ok || n1 != n2 {
				continue
			}
			links = append(links, Link{
				FromDevice:    d1.ID,
				FromInterface: i1.Name,
				ToDevice:      d2.ID,
				ToInterface:   i2.Name,
			})
		}
	}
	return links
}
