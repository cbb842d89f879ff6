// Package device holds the parsed description of each network element in the
// lab: its hostname, its interfaces and their addressing, and a few flags.
// Values are built once by the loader and are not modified afterwards.
package device

import (
	"fmt"
	"sort"
)

// Interface is one interface declared in a device configuration. Addressing is
// optional: many interfaces (shutdown ports, trunks) carry none.
type Interface struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IPAddress   string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	SubnetMask  string `json:"subnet_mask,omitempty" yaml:"subnet_mask,omitempty"`
}

// HasAddress reports if the interface has both an address and a mask, which is
// the minimum needed to work out what network it is attached to
func (i *Interface) HasAddress() bool {
	return i != nil && i.IPAddress != "" && i.SubnetMask != ""
}

func (i *Interface) String() string {
	if !i.HasAddress() {
		return i.Name
	}
	return fmt.Sprintf("%s %s/%s", i.Name, i.IPAddress, i.SubnetMask)
}

// Device is one network element, keyed by the name of the folder its
// configuration was loaded from
type Device struct {
	ID       string `json:"id" yaml:"id"`
	Hostname string `json:"hostname" yaml:"hostname"`
	// Interfaces are kept in declaration order
	Interfaces  []*Interface `json:"interfaces" yaml:"interfaces"`
	OSPFEnabled bool         `json:"ospf_enabled" yaml:"ospf_enabled"`
}

// New creates an empty device whose hostname defaults to its id
func New(id string) *Device {
	return &Device{ID: id, Hostname: id}
}

// Interface finds an interface by name
func (d *Device) Interface(name string) *Interface {
	for _, i := range d.Interfaces {
		if i.Name == name {
			return i
		}
	}
	return nil
}

// declare returns a fresh record for the named interface. Declaring a name a
// second time resets its record but keeps its original position.
func (d *Device) declare(name string) *Interface {
	fresh := &Interface{Name: name}
	for n, i := range d.Interfaces {
		if i.Name == name {
			d.Interfaces[n] = fresh
			return fresh
		}
	}
	d.Interfaces = append(d.Interfaces, fresh)
	return fresh
}

func (d *Device) String() string {
	if d.Hostname == d.ID {
		return d.ID
	}
	return fmt.Sprintf("%s (%s)", d.ID, d.Hostname)
}

// A Set is a collection of devices with unique ids, iterated in id order so
// that everything derived from it is reproducible
type Set struct {
	devices []*Device
	byID    map[string]*Device
}

// NewSet builds a Set from the given devices. If ids repeat, the last one wins.
func NewSet(devices ...*Device) *Set {
	s := &Set{byID: make(map[string]*Device, len(devices))}
	for _, d := range devices {
		s.byID[d.ID] = d
	}
	s.devices = make([]*Device, 0, len(s.byID))
	for _, d := range s.byID {
		s.devices = append(s.devices, d)
	}
	sort.Slice(s.devices, func(i, j int) bool { return s.devices[i].ID < s.devices[j].ID })
	return s
}

// Len returns the number of devices in the set
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.devices)
}

// Get looks up a device by id
func (s *Set) Get(id string) (*Device, bool) {
	if s == nil {
		return nil, false
	}
	d, ok := s.byID[id]
	return d, ok
}

// Devices returns the devices in id order. The slice is a copy, the devices
// are not.
func (s *Set) Devices() []*Device {
	if s == nil {
		return nil
	}
	ret := make([]*Device, len(s.devices))
	copy(ret, s.devices)
	return ret
}

// IDs returns the device ids in order
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	ret := make([]string, len(s.devices))
	for i, d := range s.devices {
		ret[i] = d.ID
	}
	return ret
}

// Hostname returns the hostname of the device with the given id, or the id
// itself if there is no such device
func (s *Set) Hostname(id string) string {
	if d, ok := s.Get(id); ok && d.Hostname != "" {
		return d.Hostname
	}
	return id
}
