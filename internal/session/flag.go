package session

import "sync"

// Flag is the termination signal shared by a session's two loops.
// Once set it stays set.  Every read and write takes the same lock.
type Flag struct {
	mu   sync.Mutex
	set  bool
	done chan struct{}
}

// NewFlag returns an unset flag.
func NewFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

// ShouldExit reports whether exit has been requested.
func (f *Flag) ShouldExit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

// RequestExit sets the flag.  Setting it again is a no-op.
func (f *Flag) RequestExit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set {
		return
	}
	f.set = true
	close(f.done)
}

// Done is closed when the flag is first set, so a goroutine blocked on
// something else can select on it.
func (f *Flag) Done() <-chan struct{} {
	return f.done
}
