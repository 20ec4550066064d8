package session

import (
	"bytes"
	"errors"
	"io"

	"tcptalk/util"
)

// inbound is the receiver loop.  It never looks at the flag: it ends on
// the sentinel, on end of stream, on a read error, or when the session
// is interrupted.
func (s *Session) inbound() Reason {
	s.Display.Progress("READY TO RECEIVE [!]")

	buf := util.GetBuf()
	defer util.PutBuf(buf)

	for {
		n, err := s.Conn.Read(*buf)
		if n > 0 {
			chunk := (*buf)[:n]
			s.Display.Received(chunk)
			s.Metrics.ChunkReceived(n)
			s.Logger.Debug("received %d bytes", n)

			if s.isSentinel(chunk) {
				s.Logger.Verbose("peer said goodbye")
				s.exit.RequestExit()
				return SentinelReceived
			}
		}
		if err != nil {
			return s.receiverDone(s.classifyRead(err))
		}
		if n == 0 {
			return s.receiverDone(PeerClosed)
		}
	}
}

// isSentinel matches the whole chunk, ignoring letter case.
func (s *Session) isSentinel(chunk []byte) bool {
	return len(chunk) == len(s.Sentinel) && bytes.EqualFold(chunk, []byte(s.Sentinel))
}

func (s *Session) classifyRead(err error) Reason {
	switch {
	case s.interrupted.Load():
		return Interrupted
	case errors.Is(err, io.EOF), util.IsHarmless(err):
		return PeerClosed
	default:
		s.Logger.Error("receiving: %v", err)
		s.Metrics.RecordError(err.Error())
		return ReadFailed
	}
}

func (s *Session) receiverDone(r Reason) Reason {
	if s.ExitOnClose && r != Interrupted {
		s.exit.RequestExit()
	}
	return r
}
