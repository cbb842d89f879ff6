// Package router implements the simulated routers: each one runs in its own
// goroutine, polls its mailbox on the virtual switch, and periodically sends a
// hello packet to each of its neighbors, keeping a log of what it did.
package router

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/vswitch"
)

const (
	// DefaultHelloInterval is how often a router sends hellos to its neighbors
	DefaultHelloInterval = 2 * time.Second
	// DefaultPollInterval is how long a router sleeps between loop iterations
	DefaultPollInterval = 100 * time.Millisecond
)

//go:generate go run github.com/vektra/mockery/v2@v2.38.0 --name Transport --output ../internal/mocks

// Transport is the part of the virtual switch a router talks to
type Transport interface {
	Send(dest string, p vswitch.Packet)
	Receive(id string) (vswitch.Packet, bool)
}

var _ Transport = (*vswitch.Switch)(nil)

// Options tunes the behavior of a Router. Zero values get the defaults.
type Options struct {
	HelloInterval time.Duration
	PollInterval  time.Duration
	// Payload is attached to every hello the router sends
	Payload []byte
	// Observer, if set, is called from the router goroutine with every new log
	// entry. It must not block.
	Observer func(Entry)
}

func (o Options) withDefaults() Options {
	if o.HelloInterval <= 0 {
		o.HelloInterval = DefaultHelloInterval
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	return o
}

// Router is one simulated router
type Router struct {
	DeviceID  string
	Hostname  string
	Neighbors []string

	transport Transport
	opts      Options
	now       func() time.Time

	running atomic.Bool
	state   atomic.Int32

	// only touched by the Run goroutine
	lastHello time.Time
	sentHello bool

	m   *sync.Mutex
	log []Entry
}

// New creates a router that is ready to Run. The neighbor list is copied.
func New(deviceID, hostname string, neighbors []string, transport Transport, opts Options) *Router {
	if hostname == "" {
		hostname = deviceID
	}
	r := &Router{
		DeviceID:  deviceID,
		Hostname:  hostname,
		Neighbors: append([]string{}, neighbors...),
		transport: transport,
		opts:      opts.withDefaults(),
		now:       time.Now,
		m:         new(sync.Mutex),
	}
	r.running.Store(true)
	return r
}

// State returns the current lifecycle stage of the router
func (r *Router) State() State {
	return State(r.state.Load())
}

// Stop asks the router to exit its loop. It does not wait for that to happen:
// the goroutine calling Run will notice within one poll interval.
func (r *Router) Stop() {
	r.running.Store(false)
}

// Run executes the router loop until Stop is called. It always returns nil.
func (r *Router) Run() error {
	r.state.Store(int32(StateRunning))
	r.record("Thread started. Neighbors: [" + strings.Join(r.Neighbors, ", ") + "]")
	for r.running.Load() {
		r.poll()
		if !r.running.Load() {
			break
		}
		time.Sleep(r.opts.PollInterval)
	}
	r.record("Thread finished.")
	r.state.Store(int32(StateStopped))
	return nil
}

func (r *Router) poll() {
	if p, ok := r.transport.Receive(r.DeviceID); ok {
		r.record("Received '" + string(p.Type) + "' from " + p.Source)
	}

	now := r.now()
	if r.sentHello && now.Sub(r.lastHello) < r.opts.HelloInterval {
		return
	}
	for _, n := range r.Neighbors {
		r.transport.Send(n, vswitch.NewHello(r.Hostname, r.opts.Payload))
		r.record("Sent '" + string(vswitch.TypeHello) + "' to " + n)
	}
	r.lastHello = now
	r.sentHello = true
}

func (r *Router) record(msg string) {
	e := Entry{Time: r.now(), Hostname: r.Hostname, Message: msg}
	r.m.Lock()
	r.log = append(r.log, e)
	r.m.Unlock()
	log.Debug("router %s: %s", r.DeviceID, msg)
	if r.opts.Observer != nil {
		r.opts.Observer(e)
	}
}

// Log returns a snapshot of the router's log so far
func (r *Router) Log() []Entry {
	r.m.Lock()
	defer r.m.Unlock()
	ret := make([]Entry, len(r.log))
	copy(ret, r.log)
	return ret
}

