package sim

import "fmt"

// Status is the outcome of a request to start a simulation
type Status int

const (
	// StatusCompleted means the simulation ran and every router has stopped
	StatusCompleted Status = iota
	// StatusBusy means a simulation was already active and nothing was done
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusBusy:
		return "busy"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Event is a lifecycle notification from a running simulation
type Event int

const (
	// EventStarted is sent once the routers for a run have been created
	EventStarted Event = iota
	// EventCompleted is sent after every router of a run has stopped
	EventCompleted
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}
