package topology

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fastcat/hellonet/device"
)

// Format selects how a topology is written out
type Format string

const (
	// FormatText is one line per link, as shown in the topology listing
	FormatText Format = "text"
	// FormatYAML is a YAML document with links and segments
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON document with links and segments
	FormatJSON Format = "json"
)

// ParseFormat validates a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unknown topology format '%s'", s)
	}
}

// Topology is the complete inferred view of a set of devices
type Topology struct {
	Links    []Link     `json:"links" yaml:"links"`
	Segments [][]string `json:"segments" yaml:"segments"`
}

// Describe builds the links and segments for devices
func Describe(devices *device.Set) *Topology {
	links := Build(devices)
	return &Topology{
		Links:    links,
		Segments: Components(devices, links),
	}
}

// Encode writes t to w in the given format. The text format only lists the
// links.
func Encode(w io.Writer, t *Topology, format Format) error {
	switch format {
	case FormatText:
		for _, l := range t.Links {
			if _, err := fmt.Fprintln(w, l.String()); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return errors.Wrap(err, "unable to encode topology as YAML")
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(t), "unable to encode topology as JSON")
	default:
		return errors.Errorf("unknown topology format '%s'", format)
	}
}
