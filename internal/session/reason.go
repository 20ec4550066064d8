package session

// Loop names used in logs, metrics and [Session.OnStop].
const (
	SenderLoop   = "sender"
	ReceiverLoop = "receiver"
)

// Reason says why a transfer loop stopped.
type Reason int

const (
	// NotStopped is the zero value: the loop has not finished.
	NotStopped Reason = iota
	// ExitRequested: the sender saw the termination flag.
	ExitRequested
	// InputEnded: the line reader hit end of input.
	InputEnded
	// InputFailed: the line reader returned an error.
	InputFailed
	// WriteFailed: sending a line to the peer failed.
	WriteFailed
	// SentinelReceived: the peer sent the exit message.
	SentinelReceived
	// PeerClosed: the stream reached end of file or a read returned
	// nothing.
	PeerClosed
	// ReadFailed: reading from the stream failed.
	ReadFailed
	// Interrupted: the session was cancelled while the loop was
	// blocked.
	Interrupted
	// Panicked: the loop crashed.
	Panicked
)

func (r Reason) String() string {
	switch r {
	case NotStopped:
		return "not stopped"
	case ExitRequested:
		return "exit requested"
	case InputEnded:
		return "input ended"
	case InputFailed:
		return "input failed"
	case WriteFailed:
		return "write failed"
	case SentinelReceived:
		return "sentinel received"
	case PeerClosed:
		return "peer closed"
	case ReadFailed:
		return "read failed"
	case Interrupted:
		return "interrupted"
	case Panicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Report holds how each loop of a finished session stopped.
type Report struct {
	Sender   Reason
	Receiver Reason
}
