// Package metrics provides lightweight, lock-free counters for one
// tcptalk session: what went over the wire in each direction and how
// the two transfer loops ended.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a tcptalk session.
// A nil Collector is safe to use: all methods become no-ops.
type Collector struct {
	connectionsActive atomic.Int64
	connectionsTotal  atomic.Int64
	bytesIn           atomic.Int64
	bytesOut          atomic.Int64
	linesSent         atomic.Int64
	chunksReceived    atomic.Int64
	errorsTotal       atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
	stops        map[string]string // loop name → reason it stopped
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now(), stops: make(map[string]string)}
}

// ── Connection metrics ───────────────────────────────────────────────

// ConnectionOpened increments both the active and total counters.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.connectionsActive.Add(1)
	c.connectionsTotal.Add(1)
}

// ConnectionClosed decrements the active connection counter.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connectionsActive.Add(-1)
}

// ActiveConnections returns the current number of open connections.
func (c *Collector) ActiveConnections() int64 {
	if c == nil {
		return 0
	}
	return c.connectionsActive.Load()
}

// TotalConnections returns the lifetime connection count.
func (c *Collector) TotalConnections() int64 {
	if c == nil {
		return 0
	}
	return c.connectionsTotal.Load()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// ChunkReceived records one inbound read of n bytes.
func (c *Collector) ChunkReceived(n int) {
	if c == nil {
		return
	}
	c.chunksReceived.Add(1)
	c.bytesIn.Add(int64(n))
}

// LineSent records one outbound line of n bytes.
func (c *Collector) LineSent(n int) {
	if c == nil {
		return
	}
	c.linesSent.Add(1)
	c.bytesOut.Add(int64(n))
}

// TotalBytesIn returns total bytes received.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// LinesSent returns the number of lines written to the peer.
func (c *Collector) LinesSent() int64 {
	if c == nil {
		return 0
	}
	return c.linesSent.Load()
}

// ChunksReceived returns the number of non-empty reads from the peer.
func (c *Collector) ChunksReceived() int64 {
	if c == nil {
		return 0
	}
	return c.chunksReceived.Load()
}

// ── Loop metrics ─────────────────────────────────────────────────────

// LoopStopped records why the named loop ended.
func (c *Collector) LoopStopped(loop, reason string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.stops[loop] = reason
	c.mu.Unlock()
}

// StopReason returns the recorded reason for loop, or "".
func (c *Collector) StopReason(loop string) string {
	if c == nil {
		return ""
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stops[loop]
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime            string            `json:"uptime"`
	ConnectionsActive int64             `json:"connections_active"`
	ConnectionsTotal  int64             `json:"connections_total"`
	BytesIn           int64             `json:"bytes_in"`
	BytesOut          int64             `json:"bytes_out"`
	LinesSent         int64             `json:"lines_sent"`
	ChunksReceived    int64             `json:"chunks_received"`
	ErrorsTotal       int64             `json:"errors_total"`
	LoopStops         map[string]string `json:"loop_stops,omitempty"`
	LastError         string            `json:"last_error,omitempty"`
	LastErrorMessage  string            `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:            time.Since(c.startTime).Truncate(time.Second).String(),
		ConnectionsActive: c.connectionsActive.Load(),
		ConnectionsTotal:  c.connectionsTotal.Load(),
		BytesIn:           c.bytesIn.Load(),
		BytesOut:          c.bytesOut.Load(),
		LinesSent:         c.linesSent.Load(),
		ChunksReceived:    c.chunksReceived.Load(),
		ErrorsTotal:       c.errorsTotal.Load(),
	}
	if len(c.stops) > 0 {
		s.LoopStops = make(map[string]string, len(c.stops))
		for k, v := range c.stops {
			s.LoopStops[k] = v
		}
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
