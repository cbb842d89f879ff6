package device

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// maxLineLength bounds a single configuration line; dumps with huge banners
// or certificates need more than bufio's default
const maxLineLength = 1024 * 1024

// Parse reads a line-oriented configuration dump for the device with the given
// id. It understands the directives:
//
//	hostname <name>
//	interface <name>
//	description <text>
//	ip address <addr> <mask>
//	router ospf
//
// description and ip address apply to the most recently declared interface and
// are ignored before the first one. Everything else is ignored.
func Parse(id string, r io.Reader) (*Device, error) {
	d := New(id)
	var current *Interface

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "hostname":
			if len(fields) > 1 {
				d.Hostname = fields[1]
			}
		case "interface":
			if len(fields) > 1 {
				current = d.declare(fields[1])
			}
		case "router":
			if len(fields) > 1 && fields[1] == "ospf" {
				d.OSPFEnabled = true
			}
		case "description":
			if current != nil {
				current.Description = strings.Join(fields[1:], " ")
			}
		case "ip":
			// `ip address dhcp` and friends carry no static addressing
			if current != nil && len(fields) >= 4 && fields[1] == "address" {
				current.IPAddress = fields[2]
				current.SubnetMask = fields[3]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read configuration for %s", id)
	}
	return d, nil
}
