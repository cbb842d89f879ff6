package vswitch

import (
	"sort"
	"sync"

	"github.com/fastcat/hellonet/log"
)

// A Switch brokers packets between devices, holding one mailbox per device id.
// It is safe for concurrent use by any number of senders and receivers.
type Switch struct {
	m         *sync.RWMutex
	mailboxes map[string]*mailbox
}

// MailboxStats summarizes the traffic through one mailbox
type MailboxStats struct {
	ID       string
	Sent     int
	Received int
	Pending  int
}

// New initializes a new switch with no mailboxes
func New() *Switch {
	return &Switch{
		m:         &sync.RWMutex{},
		mailboxes: map[string]*mailbox{},
	}
}

func (s *Switch) lookup(id string) *mailbox {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.mailboxes[id]
}

func (s *Switch) mailbox(id string) *mailbox {
	if mb := s.lookup(id); mb != nil {
		return mb
	}
	s.m.Lock()
	defer s.m.Unlock()
	// someone else may have created it while we waited for the write lock
	if mb := s.mailboxes[id]; mb != nil {
		return mb
	}
	mb := newMailbox()
	s.mailboxes[id] = mb
	return mb
}

// Send enqueues a copy of p for dest. It never blocks on the receiver and
// unknown destinations simply get a new mailbox.
func (s *Switch) Send(dest string, p Packet) {
	s.mailbox(dest).push(p.clone())
	log.Debug("switch: %v -> %s", p, dest)
}

// Receive dequeues the oldest packet waiting for id, if there is one. It does
// not wait for a packet to arrive.
func (s *Switch) Receive(id string) (Packet, bool) {
	mb := s.lookup(id)
	if mb == nil {
		return Packet{}, false
	}
	return mb.pop()
}

// Pending returns how many packets are waiting for id
func (s *Switch) Pending(id string) int {
	mb := s.lookup(id)
	if mb == nil {
		return 0
	}
	return mb.stats(id).Pending
}

// Stats returns a snapshot of every mailbox, sorted by id
func (s *Switch) Stats() []MailboxStats {
	s.m.RLock()
	ids := make([]string, 0, len(s.mailboxes))
	boxes := make([]*mailbox, 0, len(s.mailboxes))
	for id, mb := range s.mailboxes {
		ids = append(ids, id)
		boxes = append(boxes, mb)
	}
	s.m.RUnlock()

	ret := make([]MailboxStats, len(ids))
	for i := range ids {
		ret[i] = boxes[i].stats(ids[i])
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}
