package core

import (
	"context"
	"net"
	"sync"

	"tcptalk/internal/console"
	ncerr "tcptalk/internal/errors"
	"tcptalk/internal/metrics"
	"tcptalk/internal/session"
	"tcptalk/internal/transport"
	"tcptalk/util"
)

// ConnectMode resolves Host/Port, connects to the first endpoint and
// runs a talk session on the connection until both loops have stopped.
type ConnectMode struct {
	Resolver transport.Resolver
	Dialer   transport.Dialer
	Console  *console.Console
	Input    session.Input
	Logger   *util.Logger
	Metrics  *metrics.Collector

	Host string
	Port string

	// Sentinel overrides the session's exit message when non-empty.
	Sentinel    string
	ExitOnClose bool

	// OnState, if set, is called after every transition.
	OnState func(State)

	mu    sync.Mutex
	state State
}

// State returns where the run currently is.
func (m *ConnectMode) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *ConnectMode) setState(s State) {
	m.mu.Lock()
	prev := m.state
	m.state = s
	m.mu.Unlock()

	m.Logger.Debug("state %s → %s", prev, s)
	if m.OnState != nil {
		m.OnState(s)
	}
}

// fail reports a fatal error on the console and ends the run.
func (m *ConnectMode) fail(what string, err error) error {
	m.Console.Failure("%s error: %v", what, err)
	m.Metrics.RecordError(err.Error())
	m.setState(Failed)
	return err
}

// Run performs the whole connect run.  A resolution, connection, spawn
// or crash failure is returned; however the loops stop otherwise, the
// run ends in Closed and Run returns nil.
func (m *ConnectMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	m.setState(Resolving)
	m.Console.Progress("Getting address information...")
	eps, err := m.Resolver.Resolve(ctx, m.Host, m.Port)
	if err != nil {
		return m.fail("getaddrinfo", err)
	}
	m.Console.Endpoints(eps)

	m.setState(Connecting)
	conn, err := m.dial(ctx, eps[0])
	if err != nil {
		if ncerr.Is(err, ncerr.ErrSocketCreateFailed) {
			return m.fail("socket", err)
		}
		return m.fail("connect", err)
	}

	m.setState(Connected)
	m.Metrics.ConnectionOpened()
	m.Console.Success("Connected.")
	m.Logger.Verbose("connected to %s from %s", conn.RemoteAddr(), conn.LocalAddr())

	err = m.talk(ctx, conn)

	if cerr := conn.Close(); cerr != nil && !util.IsHarmless(cerr) {
		m.Logger.Warn("closing connection: %v", cerr)
	}
	m.Metrics.ConnectionClosed()
	m.Logger.Debug("metrics: %s", m.Metrics.JSON())

	if err != nil {
		return m.fail("session", err)
	}
	m.setState(Closed)
	m.Console.Success("All loops finished.")
	return nil
}

func (m *ConnectMode) dial(ctx context.Context, ep transport.Endpoint) (net.Conn, error) {
	m.Console.Progress("Connecting to %s...", ep)
	m.Logger.Verbose("dialing %s (%s)", ep, ep.Network())

	conn, err := m.Dialer.Dial(ctx, ep.Network(), ep.String())
	if err != nil {
		return nil, ncerr.Dial(ep.String(), err)
	}
	return conn, nil
}

// talk runs the session.  The first loop to stop moves the run into
// Draining; talk returns once the second has stopped too.
func (m *ConnectMode) talk(ctx context.Context, conn net.Conn) error {
	sess := session.New(conn, m.Input, m.Console, m.Logger)
	sess.Metrics = m.Metrics
	sess.ExitOnClose = m.ExitOnClose
	if m.Sentinel != "" {
		sess.Sentinel = m.Sentinel
	}

	var draining sync.Once
	sess.OnStop = func(loop string, r session.Reason) {
		draining.Do(func() { m.setState(Draining) })
		m.Console.Success("%s loop finished (%s).", loop, r)
	}

	m.setState(Running)
	rep, err := sess.Run(ctx)
	m.Logger.Verbose("session over: %s %s, %s %s",
		session.SenderLoop, rep.Sender, session.ReceiverLoop, rep.Receiver)
	return err
}
