package vswitch

import (
	"fmt"

	"github.com/fastcat/hellonet/util"
)

// PacketType tags what a Packet is for
type PacketType string

const (
	// TypeHello is the periodic neighbor discovery announcement
	TypeHello PacketType = "OSPF_HELLO"
)

// A Packet represents one message traveling through the virtual switch
type Packet struct {
	Source  string
	Type    PacketType
	Payload []byte
}

// NewHello creates a discovery packet announcing source
func NewHello(source string, payload []byte) Packet {
	return Packet{
		Source:  source,
		Type:    TypeHello,
		Payload: payload,
	}
}

func (p Packet) clone() Packet {
	p.Payload = util.CloneBytes(p.Payload)
	return p
}

func (p Packet) String() string {
	return fmt.Sprintf("%s from %s (%d bytes)", p.Type, p.Source, len(p.Payload))
}
