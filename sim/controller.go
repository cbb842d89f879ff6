// Package sim runs simulations: it creates a router for every selected device,
// wires them to a fresh virtual switch, lets them exchange hellos for a while,
// then stops and joins them and keeps their logs for reporting.
package sim

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/fastcat/hellonet/device"
	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/router"
	"github.com/fastcat/hellonet/topology"
	"github.com/fastcat/hellonet/vswitch"
)

// DefaultDuration is how long a simulation runs if not configured otherwise
const DefaultDuration = 10 * time.Second

// Options configures a Controller
type Options struct {
	HelloInterval time.Duration
	PollInterval  time.Duration
	// OnEvent, if set, is called synchronously for each lifecycle event
	OnEvent func(Event, uuid.UUID)
	// Observer, if set, receives every router log entry as it is written. It is
	// called from router goroutines and must not block.
	Observer func(router.Entry)
}

// Controller runs at most one simulation at a time
type Controller struct {
	opts Options

	m         *sync.Mutex
	active    bool
	completed bool
	runID     uuid.UUID
	routers   []*router.Router
	sw        *vswitch.Switch
}

// NewController creates a Controller that has not run anything yet
func NewController(opts Options) *Controller {
	return &Controller{
		opts: opts,
		m:    new(sync.Mutex),
	}
}

// Start runs one simulation and returns once it is over. Each device the
// selector accepts (all of them if it is nil) gets a router whose neighbors
// are derived from links. The routers run until duration has passed or ctx is
// cancelled, and Start then waits for every one of them to exit.
//
// If another simulation is still active, Start returns StatusBusy at once and
// changes nothing.
func (c *Controller) Start(
	ctx context.Context,
	devices *device.Set,
	links []topology.Link,
	selector Selector,
	duration time.Duration,
) (Status, error) {
	c.m.Lock()
	if c.active {
		c.m.Unlock()
		return StatusBusy, nil
	}
	c.active = true
	runID := uuid.New()
	sw := vswitch.New()
	routers := c.createRouters(runID, sw, devices, links, selector)
	c.runID, c.sw, c.routers = runID, sw, routers
	c.m.Unlock()

	c.emit(EventStarted, runID)
	log.Info("Simulation %s: starting %d routers for %v", runID, len(routers), duration)

	eg, egCtx := errgroup.WithContext(ctx)
	for _, r := range routers {
		eg.Go(r.Run)
	}

	timer := time.NewTimer(duration)
	select {
	case <-timer.C:
	case <-egCtx.Done():
		timer.Stop()
		log.Info("Simulation %s: stopping early", runID)
	}
	for _, r := range routers {
		r.Stop()
	}
	err := eg.Wait()

	c.m.Lock()
	c.active = false
	c.completed = true
	c.m.Unlock()

	log.Info("Simulation %s: all routers stopped", runID)
	c.emit(EventCompleted, runID)

	if err != nil {
		return StatusCompleted, errors.Wrapf(err, "simulation %s failed", runID)
	}
	return StatusCompleted, nil
}

func (c *Controller) createRouters(
	runID uuid.UUID,
	sw *vswitch.Switch,
	devices *device.Set,
	links []topology.Link,
	selector Selector,
) []*router.Router {
	opts := router.Options{
		HelloInterval: c.opts.HelloInterval,
		PollInterval:  c.opts.PollInterval,
		Payload:       runID[:],
		Observer:      c.opts.Observer,
	}
	var routers []*router.Router
	for _, d := range devices.Devices() {
		if selector != nil && !selector(d.ID) {
			continue
		}
		neighbors := topology.Neighbors(links, d.ID)
		log.Debug("Simulation %s: router %s neighbors %v", runID, d, neighbors)
		routers = append(routers, router.New(d.ID, d.Hostname, neighbors, sw, opts))
	}
	return routers
}

func (c *Controller) emit(e Event, runID uuid.UUID) {
	if c.opts.OnEvent != nil {
		c.opts.OnEvent(e, runID)
	}
}

// Active reports if a simulation is currently running
func (c *Controller) Active() bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.active
}

// RunID returns the id of the latest simulation, or the nil UUID if there has
// not been one
func (c *Controller) RunID() uuid.UUID {
	c.m.Lock()
	defer c.m.Unlock()
	return c.runID
}

// latest returns the routers of the latest run, if any run has completed
func (c *Controller) latest() (uuid.UUID, []*router.Router, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	if !c.completed {
		return uuid.Nil, nil, false
	}
	return c.runID, c.routers, true
}

// Mailboxes returns the switch counters of the latest run
func (c *Controller) Mailboxes() []vswitch.MailboxStats {
	c.m.Lock()
	sw := c.sw
	c.m.Unlock()
	if sw == nil {
		return nil
	}
	return sw.Stats()
}
