package vswitch

import "sync"

// A mailbox is the unbounded FIFO of packets waiting for one device
type mailbox struct {
	m        *sync.Mutex
	queue    []Packet
	sent     int
	received int
}

func newMailbox() *mailbox {
	return &mailbox{
		m: &sync.Mutex{},
	}
}

func (mb *mailbox) push(p Packet) {
	mb.m.Lock()
	defer mb.m.Unlock()
	mb.queue = append(mb.queue, p)
	mb.sent++
}

func (mb *mailbox) pop() (p Packet, ok bool) {
	mb.m.Lock()
	defer mb.m.Unlock()
	if len(mb.queue) == 0 {
		return
	}
	p = mb.queue[0]
	// drop the reference so the payload can be collected
	mb.queue[0] = Packet{}
	mb.queue = mb.queue[1:]
	if len(mb.queue) == 0 {
		// reset so the backing array doesn't creep forever
		mb.queue = nil
	}
	mb.received++
	return p, true
}

func (mb *mailbox) stats(id string) MailboxStats {
	mb.m.Lock()
	defer mb.m.Unlock()
	return MailboxStats{
		ID:       id,
		Sent:     mb.sent,
		Received: mb.received,
		Pending:  len(mb.queue),
	}
}
