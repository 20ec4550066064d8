// Package session runs the duplex transfer over one established
// connection: a sender loop that forwards input lines to the peer and
// a receiver loop that shows whatever the peer sends.  The two share a
// termination [Flag]; the peer ends the session by sending the
// sentinel message as one whole chunk.
//
// A Session never closes its connection.  Whoever dialled it closes it
// once [Session.Run] has returned, i.e. after both loops have stopped.
package session

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"tcptalk/config"
	ncerr "tcptalk/internal/errors"
	"tcptalk/internal/metrics"
	"tcptalk/util"
)

// Input yields one line of user input at a time, newline included.
type Input interface {
	ReadLine() (string, error)
}

// Display is what the loops show the user.
type Display interface {
	Progress(format string, args ...interface{})
	Prompt()
	Received(chunk []byte)
}

// Session binds a connection to an input source and a display.
type Session struct {
	Conn    net.Conn
	Input   Input
	Display Display
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Sentinel is compared case-insensitively against each whole
	// received chunk.  A chunk carrying anything else never matches.
	Sentinel string

	// ExitOnClose makes the receiver set the flag when the peer goes
	// away, so the sender stops instead of waiting for more input.
	ExitOnClose bool

	// OnStop, if set, is called from each loop's goroutine as it ends.
	OnStop func(loop string, r Reason)

	exit        *Flag
	interrupted atomic.Bool
}

// New creates a Session with the default sentinel.
func New(conn net.Conn, in Input, disp Display, logger *util.Logger) *Session {
	return &Session{
		Conn:     conn,
		Input:    in,
		Display:  disp,
		Logger:   logger,
		Sentinel: config.DefaultSentinel,
		exit:     NewFlag(),
	}
}

// Exit returns the session's termination flag.
func (s *Session) Exit() *Flag { return s.exit }

// Run starts the sender and the receiver and blocks until both have
// stopped, in whichever order.  Cancelling ctx sets the flag and
// unblocks a pending stream read.  Loop-local failures only end their
// own loop and are reported through the returned Report; the error is
// non-nil only when a loop could not be started or crashed.
func (s *Session) Run(ctx context.Context) (Report, error) {
	var rep Report
	if s.exit == nil {
		s.exit = NewFlag()
	}

	stop := context.AfterFunc(ctx, s.interrupt)
	defer stop()

	var g errgroup.Group
	g.SetLimit(2)

	s.Logger.Debug("starting %s loop", SenderLoop)
	if !s.spawn(&g, SenderLoop, &rep.Sender, s.outbound) {
		return rep, fmt.Errorf("%w: %s", ncerr.ErrSpawnFailed, SenderLoop)
	}

	s.Logger.Debug("starting %s loop", ReceiverLoop)
	if !s.spawn(&g, ReceiverLoop, &rep.Receiver, s.inbound) {
		s.interrupt()
		g.Wait() //nolint:errcheck
		return rep, fmt.Errorf("%w: %s", ncerr.ErrSpawnFailed, ReceiverLoop)
	}

	err := g.Wait()
	s.Logger.Verbose("session drained: %s %s, %s %s",
		SenderLoop, rep.Sender, ReceiverLoop, rep.Receiver)
	return rep, err
}

// spawn runs fn on the group, storing its result in slot.  A panic is
// turned into [ncerr.ErrJoinFailed] and stops the sibling loop too.
func (s *Session) spawn(g *errgroup.Group, loop string, slot *Reason, fn func() Reason) bool {
	return g.TryGo(func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				*slot = Panicked
				err = fmt.Errorf("%w: %s: %v", ncerr.ErrJoinFailed, loop, p)
				s.Logger.Error("%s loop crashed: %v", loop, p)
				s.Metrics.RecordError(err.Error())
				s.interrupt()
			}
			s.stopped(loop, *slot)
		}()
		*slot = fn()
		return nil
	})
}

func (s *Session) stopped(loop string, r Reason) {
	s.Logger.Verbose("%s stopped: %s", loop, r)
	s.Metrics.LoopStopped(loop, r.String())
	if s.OnStop != nil {
		s.OnStop(loop, r)
	}
}

// aLongTimeAgo is a non-zero time in the past, used to expire a
// deadline immediately.
var aLongTimeAgo = time.Unix(1, 0)

// interrupt sets the flag and forces a blocked stream read to return.
func (s *Session) interrupt() {
	s.interrupted.Store(true)
	s.exit.RequestExit()
	if err := s.Conn.SetReadDeadline(aLongTimeAgo); err != nil {
		s.Logger.Debug("expiring read deadline: %v", err)
	}
}
