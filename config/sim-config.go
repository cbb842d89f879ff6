package config

import (
	"time"

	"github.com/fastcat/hellonet/sim"
	"github.com/fastcat/hellonet/topology"
)

// Sim describes the configuration for the simulator, after parsing from various sources
type Sim struct {
	ConfDir string

	Duration      time.Duration
	HelloInterval time.Duration
	PollInterval  time.Duration

	Selector sim.Selector
	// SelectorName describes Selector for humans
	SelectorName string

	Format       topology.Format
	TopologyOnly bool
	Once         bool
	Quiet        bool
	LogFile      string

	Debug bool
}

// ControllerOptions returns the simulation controller settings from the config
func (s *Sim) ControllerOptions() sim.Options {
	return sim.Options{
		HelloInterval: s.HelloInterval,
		PollInterval:  s.PollInterval,
	}
}
