package router

import (
	"fmt"
	"time"
)

// State is the lifecycle stage of a Router
type State int32

const (
	// StateCreated is a router whose Run has not started
	StateCreated State = iota
	// StateRunning is a router inside its poll loop
	StateRunning
	// StateStopped is a router whose Run has returned
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// EntryTimeFormat is the timestamp layout used when printing log entries
const EntryTimeFormat = "15:04:05"

// Entry is one line of a router's event log
type Entry struct {
	Time     time.Time `json:"time" yaml:"time"`
	Hostname string    `json:"hostname" yaml:"hostname"`
	Message  string    `json:"message" yaml:"message"`
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Time.Format(EntryTimeFormat), e.Hostname, e.Message)
}
