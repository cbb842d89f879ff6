// Package cmd provides the main implementation of the hellonet command line.
package cmd

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/fastcat/hellonet/config"
	"github.com/fastcat/hellonet/device"
	"github.com/fastcat/hellonet/internal/channels"
	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/router"
	"github.com/fastcat/hellonet/sim"
	"github.com/fastcat/hellonet/topology"
)

// liveBuffer is how many router log entries can queue up for the live echo
// before new ones are dropped from it. They are never dropped from the logs.
const liveBuffer = 1024

// HellonetCmd represents an instance of the app command line
type HellonetCmd struct {
	args       []string
	Config     *config.Sim
	Devices    *device.Set
	Topology   *topology.Topology
	Controller *sim.Controller

	signals chan os.Signal
	live    chan router.Entry
	logFile *os.File
	out     *syncWriter
}

// New creates a new command instance using the given os.Args value
func New(args []string) *HellonetCmd {
	ret := &HellonetCmd{
		args:    args,
		signals: make(chan os.Signal, 5),
	}

	return ret
}

// Init prepares the command instance: it parses the configuration, loads the
// device configs and infers the topology. If it returns nil with a nil Config,
// there is nothing else to do (--help, --version, --dump).
func (h *HellonetCmd) Init() error {
	var err error

	flags, vcfg := config.Init(h.args)
	var configData *config.SimData
	if configData, err = config.Parse(flags, vcfg, h.args); err != nil {
		return errors.Wrapf(err, "Unable to parse configuration")
	}
	// configData comes back nil if we ran --help or --version
	if configData == nil {
		return nil
	}

	if h.Config, err = configData.Parse(vcfg); err != nil {
		// TODO: this doesn't print the program name header
		flags.PrintDefaults()
		return errors.Wrapf(err, "Unable to load configuration")
	}
	if h.Config == nil {
		// config dump was requested
		return nil
	}

	if h.Config.LogFile != "" {
		h.logFile, err = os.OpenFile(h.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "Unable to open log file %s", h.Config.LogFile)
		}
		log.Setup(os.Stderr, h.logFile)
	}

	h.Devices, err = device.LoadDir(h.Config.ConfDir)
	if err != nil {
		if !errors.Is(err, device.ErrNoConfigDir) {
			return errors.Wrapf(err, "Unable to load device configs")
		}
		// carry on with no devices, the menu still works
		log.Error("%v", err)
	}
	log.Info("Loaded %d devices from %s", h.Devices.Len(), h.Config.ConfDir)
	h.Topology = topology.Describe(h.Devices)

	opts := h.Config.ControllerOptions()
	if !h.Config.Quiet {
		h.live = make(chan router.Entry, liveBuffer)
		opts.Observer = channels.Forwarder[router.Entry](h.live)
	}
	h.Controller = sim.NewController(opts)

	return nil
}

// Close releases anything Init opened
func (h *HellonetCmd) Close() error {
	if h.logFile == nil {
		return nil
	}
	log.Setup(os.Stderr, nil)
	err := h.logFile.Close()
	h.logFile = nil
	return err
}

// Run executes the configured mode: print the topology, run a single
// simulation, or drive the interactive menu from in. All user facing output
// goes to out.
func (h *HellonetCmd) Run(in io.Reader, out io.Writer) error {
	if h.Config == nil {
		return nil
	}
	h.out = &syncWriter{w: out}

	if h.Config.TopologyOnly {
		return h.printTopology(h.Config.Format)
	}

	eg, ctx := errgroup.WithContext(context.Background())
	if h.live != nil {
		live := h.live
		eg.Go(channels.Processor(live, func(e router.Entry) error {
			_, err := h.out.println(e.String())
			return err
		}))
	}

	eg.Go(func() error {
		defer h.stopEcho()
		if h.Config.Once {
			return h.runOnce(ctx)
		}
		return h.menu(ctx, in)
	})

	return eg.Wait()
}

func (h *HellonetCmd) stopEcho() {
	// only called once every simulation has been joined, so no router can
	// still be writing to it
	if h.live != nil {
		close(h.live)
		h.live = nil
	}
}

func (h *HellonetCmd) runOnce(ctx context.Context) error {
	if _, err := h.simulate(ctx); err != nil {
		return err
	}
	return h.printLogs()
}

// syncWriter serializes writes from the menu and the live echo
type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.w.Write(p)
}

func (s *syncWriter) println(line string) (int, error) {
	return s.Write([]byte(line + "\n"))
}
