package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NormalizeIP returns a version of the given ip normalized to its underlying
// family, instead of the "always in IPv6 container" format that is often used,
// so IPv4 values will have a length of 4 and IPv6 ones a length of 16
func NormalizeIP(ip net.IP) net.IP {
	n := ip.To4()
	if n == nil {
		n = ip.To16()
	}
	return n
}

// ParseIPv4 parses a dotted-quad IPv4 address, returning it in 4 byte form.
// IPv6 addresses, including IPv4-mapped ones written in IPv6 notation, are
// rejected.
func ParseIPv4(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, errors.Errorf("invalid IP address '%s'", s)
	}
	ip = NormalizeIP(ip)
	if len(ip) != net.IPv4len || strings.ContainsRune(s, ':') {
		return nil, errors.Errorf("not an IPv4 address '%s'", s)
	}
	return ip, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseIPv4Mask accepts a subnet mask in any of the forms network gear tends to
// print: a contiguous dotted-quad netmask ("255.255.255.0"), a dotted-quad
// host mask ("0.0.0.255"), or a bare prefix length ("24"). A prefix length is
// plain decimal digits only, no sign.
func ParseIPv4Mask(s string) (net.IPMask, error) {
	if isDigits(s) {
		bits, err := strconv.Atoi(s)
		if err != nil || bits > 8*net.IPv4len {
			return nil, errors.Errorf("prefix length out of range '%s'", s)
		}
		return net.CIDRMask(bits, 8*net.IPv4len), nil
	}
	ip, err := ParseIPv4(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mask '%s'", s)
	}
	mask := net.IPMask(ip)
	if ones, bits := mask.Size(); bits != 0 {
		return net.CIDRMask(ones, bits), nil
	}
	// not a netmask, try it as a host mask
	inverted := make(net.IPMask, len(mask))
	for i, b := range mask {
		inverted[i] = ^b
	}
	if ones, bits := inverted.Size(); bits != 0 {
		return net.CIDRMask(ones, bits), nil
	}
	return nil, errors.Errorf("non-contiguous mask '%s'", s)
}

// IPv4Network computes the network an interface address belongs to, i.e. the
// address with all host bits cleared by the mask.
func IPv4Network(addr, mask string) (*net.IPNet, error) {
	ip, err := ParseIPv4(addr)
	if err != nil {
		return nil, err
	}
	m, err := ParseIPv4Mask(mask)
	if err != nil {
		return nil, err
	}
	return &net.IPNet{IP: ip.Mask(m), Mask: m}, nil
}
