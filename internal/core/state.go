package core

// State is a step of a connect run.  A run moves forward only:
//
//	Resolving → Connecting → Connected → Running → Draining → Closed
//
// Resolving and Connecting may end in Failed instead, as may Running
// when a transfer loop cannot be started or crashes.
type State int

const (
	Idle State = iota
	Resolving
	Connecting
	Connected
	Running
	Draining
	Closed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Closed:
		return "closed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can follow.
func (s State) Terminal() bool { return s == Closed || s == Failed }
