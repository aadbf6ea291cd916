package eventfsm

import "log/slog"

// Status describes where the dispatcher is in its own lifecycle
type Status int

const (
	// StatusNotStarted - Run has never been called
	StatusNotStarted Status = iota
	// StatusRunning - the dispatch loop is draining the queue
	StatusRunning
	// StatusIdle - the queue drained; a Push or Run resumes dispatching
	StatusIdle
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusIdle:
		return "idle"
	}
	return "unknown"
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
