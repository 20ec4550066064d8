package session

import (
	"errors"
	"io"

	"tcptalk/util"
)

type lineResult struct {
	line  string
	err   error
	panic interface{}
}

// outbound is the sender loop: check the flag, prompt, read a line,
// write it.  The line is read on a helper goroutine so that a set flag
// wakes the loop even while the user has not typed anything; a line
// that completes after that point is dropped.
func (s *Session) outbound() Reason {
	s.Display.Progress("READY TO SEND [!]")

	for {
		if s.exit.ShouldExit() {
			return ExitRequested
		}
		s.Display.Prompt()

		pending := make(chan lineResult, 1)
		go s.readLine(pending)

		var res lineResult
		select {
		case res = <-pending:
		case <-s.exit.Done():
			return ExitRequested
		}
		if res.panic != nil {
			panic(res.panic)
		}

		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				s.Logger.Verbose("input closed")
				s.closeWrite()
				return InputEnded
			}
			s.Logger.Error("reading input: %v", res.err)
			s.Metrics.RecordError(res.err.Error())
			return InputFailed
		}

		// The flag may have been set while the line was being typed.
		if s.exit.ShouldExit() {
			return ExitRequested
		}

		n, err := io.WriteString(s.Conn, res.line)
		if err != nil {
			if !util.IsHarmless(err) {
				s.Logger.Error("sending: %v", err)
				s.Metrics.RecordError(err.Error())
			} else {
				s.Logger.Verbose("sending: %v", err)
			}
			return WriteFailed
		}
		s.Metrics.LineSent(n)
		s.Logger.Debug("sent %d bytes", n)
	}
}

func (s *Session) readLine(out chan<- lineResult) {
	defer func() {
		if p := recover(); p != nil {
			out <- lineResult{panic: p}
		}
	}()
	line, err := s.Input.ReadLine()
	out <- lineResult{line: line, err: err}
}

// closeWrite half-closes the stream so the peer sees end of file while
// the receiver keeps reading.
func (s *Session) closeWrite() {
	cw, ok := s.Conn.(interface{ CloseWrite() error })
	if !ok {
		return
	}
	if err := cw.CloseWrite(); err != nil {
		s.Logger.Debug("half-close: %v", err)
	}
}
