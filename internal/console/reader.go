package console

import (
	"bufio"
	"errors"
	"io"
)

// LineReader yields one line of input at a time.  It is not safe for
// concurrent use.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r, typically os.Stdin.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line with its trailing newline.  A last
// line without one is returned as-is and the call after it reports
// io.EOF.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
