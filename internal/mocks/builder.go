package mocks

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/fastcat/hellonet/vswitch"
)

// WithEmptyMailbox mocks the transport to never have anything queued for id
func (m *Transport) WithEmptyMailbox(id string) *mock.Call {
	return m.On("Receive", id).Return(vswitch.Packet{}, false).Maybe()
}

// WithMailbox mocks the transport to deliver the given packets to id, in
// order, and then report an empty mailbox
func (m *Transport) WithMailbox(id string, packets ...vswitch.Packet) *mock.Call {
	var mu sync.Mutex
	queue := append([]vswitch.Packet{}, packets...)
	// this relies on the mockery return function support
	return m.On("Receive", id).Return(func(string) (vswitch.Packet, bool) {
		mu.Lock()
		defer mu.Unlock()
		if len(queue) == 0 {
			return vswitch.Packet{}, false
		}
		p := queue[0]
		queue = queue[1:]
		return p, true
	}, false)
}

// WithHelloTo expects the transport to be sent hellos for dest from source.
// The returned call can be constrained further with Times etc.
func (m *Transport) WithHelloTo(dest, source string) *mock.Call {
	return m.On("Send", dest, mock.MatchedBy(func(p vswitch.Packet) bool {
		return p.Type == vswitch.TypeHello && p.Source == source
	})).Return()
}
