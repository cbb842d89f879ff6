package sim

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/fastcat/hellonet/router"
	"github.com/fastcat/hellonet/vswitch"
)

// Report is what one router did during a simulation
type Report struct {
	RunID     uuid.UUID      `json:"run_id" yaml:"run_id"`
	DeviceID  string         `json:"device_id" yaml:"device_id"`
	Hostname  string         `json:"hostname" yaml:"hostname"`
	Neighbors []string       `json:"neighbors" yaml:"neighbors"`
	State     string         `json:"state" yaml:"state"`
	Entries   []router.Entry `json:"entries" yaml:"entries"`
}

// Lines formats the entries of the report for display
func (r Report) Lines() []string {
	ret := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		ret[i] = e.String()
	}
	return ret
}

// HellosSent counts the hellos the router sent
func (r Report) HellosSent() int {
	n := 0
	for _, e := range r.Entries {
		if strings.HasPrefix(e.Message, "Sent '"+string(vswitch.TypeHello)+"'") {
			n++
		}
	}
	return n
}

// Reports returns a snapshot of the logs of the latest simulation, sorted by
// hostname. The second value is false if no simulation has completed yet.
func (c *Controller) Reports() ([]Report, bool) {
	runID, routers, ok := c.latest()
	if !ok {
		return nil, false
	}
	ret := make([]Report, 0, len(routers))
	for _, r := range routers {
		ret = append(ret, Report{
			RunID:     runID,
			DeviceID:  r.DeviceID,
			Hostname:  r.Hostname,
			Neighbors: append([]string{}, r.Neighbors...),
			State:     r.State().String(),
			Entries:   r.Log(),
		})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Hostname != ret[j].Hostname {
			return ret[i].Hostname < ret[j].Hostname
		}
		return ret[i].DeviceID < ret[j].DeviceID
	})
	return ret, true
}

// ListLogs returns the formatted log lines of the latest simulation keyed by
// router hostname. If two routers share a hostname, their keys become
// "hostname/device-id" so neither log is lost. The second value is false if no
// simulation has completed yet.
func (c *Controller) ListLogs() (map[string][]string, bool) {
	reports, ok := c.Reports()
	if !ok {
		return nil, false
	}
	count := make(map[string]int, len(reports))
	for _, r := range reports {
		count[r.Hostname]++
	}
	ret := make(map[string][]string, len(reports))
	for _, r := range reports {
		key := r.Hostname
		if count[key] > 1 {
			key += "/" + r.DeviceID
		}
		ret[key] = r.Lines()
	}
	return ret, true
}
