package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/sim"
	"github.com/fastcat/hellonet/topology"
)

const menuText = `
==================== Main Menu ====================
1. Display Network Topology
2. Start Simulation
3. View Last Simulation Logs
4. Exit
Enter your choice: `

// menu reads choices from in until the user exits or in ends
func (h *HellonetCmd) menu(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(h.out, menuText); err != nil {
			return err
		}
		if !scanner.Scan() {
			// EOF is as good as exit
			fmt.Fprintln(h.out)
			return errors.Wrap(scanner.Err(), "Unable to read menu choice")
		}

		var err error
		switch choice := strings.TrimSpace(scanner.Text()); choice {
		case "1":
			fmt.Fprintln(h.out, "\n--- Discovered Network Links ---")
			if len(h.Topology.Links) == 0 {
				fmt.Fprintln(h.out, "No links found.")
			} else if err = h.printTopology(topology.FormatText); err != nil {
				break
			}
			h.printSegments()
		case "2":
			_, err = h.simulate(ctx)
		case "3":
			err = h.printLogs()
		case "4":
			fmt.Fprintln(h.out, "Exiting tool.")
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (h *HellonetCmd) printTopology(format topology.Format) error {
	return errors.Wrapf(topology.Encode(h.out, h.Topology, format), "Unable to print topology")
}

func (h *HellonetCmd) printSegments() {
	fmt.Fprintf(h.out, "\n%d devices in %d segments:\n", h.Devices.Len(), len(h.Topology.Segments))
	for _, s := range h.Topology.Segments {
		fmt.Fprintf(h.out, "  %s\n", strings.Join(s, ", "))
	}
}

// simulate runs one simulation to completion. Signals received while it runs
// stop it early instead of killing the process.
func (h *HellonetCmd) simulate(ctx context.Context) (sim.Status, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h.drainSignals()
	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)
	h.addPlatformSignalHandlers()

	done := make(chan struct{})
	watcher := make(chan struct{})
	go func() {
		defer close(watcher)
		for {
			select {
			case sig := <-h.signals:
				if h.handlePlatformSignal(sig) {
					continue
				}
				log.Info("Received signal %v, stopping simulation", sig)
				cancel()
			case <-done:
				return
			}
		}
	}()
	defer func() {
		signal.Stop(h.signals)
		close(done)
		<-watcher
	}()

	fmt.Fprintf(h.out, "\n--- Starting Simulation (runs for %v, %s) ---\n", h.Config.Duration, h.Config.SelectorName)
	status, err := h.Controller.Start(ctx, h.Devices, h.Topology.Links, h.Config.Selector, h.Config.Duration)
	if err != nil {
		return status, errors.Wrapf(err, "Simulation failed")
	}
	switch status {
	case sim.StatusBusy:
		fmt.Fprintln(h.out, "Simulation is already running.")
	case sim.StatusCompleted:
		fmt.Fprintln(h.out, "--- Simulation Complete ---")
		h.printMailboxes()
	}
	return status, nil
}

// drainSignals discards signals left over from a previous run, so they can't
// stop the next one
func (h *HellonetCmd) drainSignals() {
	for {
		select {
		case <-h.signals:
		default:
			return
		}
	}
}

func (h *HellonetCmd) printMailboxes() {
	for _, s := range h.Controller.Mailboxes() {
		name := s.ID
		if hostname := h.Devices.Hostname(s.ID); hostname != s.ID {
			name = fmt.Sprintf("%s (%s)", hostname, s.ID)
		}
		fmt.Fprintf(h.out, "  %s: %d sent, %d received, %d pending\n", name, s.Sent, s.Received, s.Pending)
	}
}

func (h *HellonetCmd) printLogs() error {
	reports, ok := h.Controller.Reports()
	if !ok {
		fmt.Fprintln(h.out, "\nNo simulation has been run yet. Please run option 2 first.")
		return nil
	}
	fmt.Fprintln(h.out, "\n--- Last Simulation Logs ---")
	for _, r := range reports {
		fmt.Fprintf(h.out, "\n--- Log for Device: %s ---\n", r.Hostname)
		for _, line := range r.Lines() {
			fmt.Fprintln(h.out, line)
		}
	}
	return nil
}
