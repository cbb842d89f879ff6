// Package topology infers how devices are cabled together from nothing but
// their interface addressing: two interfaces on different devices that sit in
// the same IPv4 network are taken to be directly connected.
package topology

import "fmt"

// A Link is an inferred connection between an interface on one device and an
// interface on another
type Link struct {
	FromDevice    string `json:"from_device" yaml:"from_device"`
	FromInterface string `json:"from_interface" yaml:"from_interface"`
	ToDevice      string `json:"to_device" yaml:"to_device"`
	ToInterface   string `json:"to_interface" yaml:"to_interface"`
}

// String formats the link the way the topology listing shows it
func (l Link) String() string {
	return fmt.Sprintf("%s(%s) <--> %s(%s)", l.FromDevice, l.FromInterface, l.ToDevice, l.ToInterface)
}

// Peer returns the device at the other end of the link from id, if the link
// touches id at all
func (l Link) Peer(id string) (string, bool) {
	switch id {
	case l.FromDevice:
		return l.ToDevice, true
	case l.ToDevice:
		return l.FromDevice, true
	default:
		return "", false
	}
}

// Neighbors lists the devices linked to id, in the order the links mention
// them. Devices joined by several links are listed once.
func Neighbors(links []Link, id string) []string {
	ret := []string{}
	seen := map[string]bool{}
	for _, l := range links {
		peer, ok := l.Peer(id)
		if !ok || peer == id || seen[peer] {
			continue
		}
		seen[peer] = true
		ret = append(ret, peer)
	}
	return ret
}
