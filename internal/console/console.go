// Package console is the terminal side of a session: colored progress
// lines, the input prompt, the echo of received chunks and the line
// reader that feeds the sender.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	"tcptalk/internal/transport"
)

// Options configures a Console.
type Options struct {
	Out         io.Writer // progress, prompt, received data
	Err         io.Writer // failures
	Quiet       bool      // drop progress and success lines
	Color       bool
	Interactive bool // show the "#> " prompt
}

// Console writes everything the user sees.  Both transfer loops share
// one Console; each call writes its text in one piece.
type Console struct {
	out, err    io.Writer
	quiet       bool
	interactive bool

	progress *color.Color
	success  *color.Color
	failure  *color.Color
	info     *color.Color
	prompt   *color.Color
	remote   *color.Color

	mu sync.Mutex
}

// New builds a Console from explicit options.
func New(opts Options) *Console {
	c := &Console{
		out:         opts.Out,
		err:         opts.Err,
		quiet:       opts.Quiet,
		interactive: opts.Interactive,
		progress:    color.New(color.FgYellow),
		success:     color.New(color.FgGreen),
		failure:     color.New(color.FgRed),
		info:        color.New(color.FgCyan),
		prompt:      color.New(color.FgRed),
		remote:      color.New(color.FgCyan),
	}
	if c.out == nil {
		c.out = io.Discard
	}
	if c.err == nil {
		c.err = c.out
	}
	for _, col := range []*color.Color{c.progress, c.success, c.failure, c.info, c.prompt, c.remote} {
		if opts.Color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// NewStd builds a Console on stdout/stderr.  Colors follow the
// terminal and NO_COLOR unless noColor forces them off; the prompt is
// shown only when stdin is a terminal.
func NewStd(quiet, noColor bool) *Console {
	return New(Options{
		Out:         os.Stdout,
		Err:         os.Stderr,
		Quiet:       quiet,
		Color:       !noColor && !color.NoColor,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
}

// Interactive reports whether prompts are shown.
func (c *Console) Interactive() bool { return c.interactive }

// Progress prints a yellow "[!]" line.
func (c *Console) Progress(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.line(c.out, c.progress, "[!] ", format, args...)
}

// Success prints a green "[+]" line.
func (c *Console) Success(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.line(c.out, c.success, "[+] ", format, args...)
}

// Failure prints a red "[-]" line to the error stream.  It is never
// suppressed.
func (c *Console) Failure(format string, args ...interface{}) {
	c.line(c.err, c.failure, "[-] ", format, args...)
}

func (c *Console) line(w io.Writer, col *color.Color, tag, format string, args ...interface{}) {
	msg := tag + fmt.Sprintf(format, args...)
	c.mu.Lock()
	defer c.mu.Unlock()
	col.Fprintln(w, msg) //nolint:errcheck
}

// Endpoints prints the address-information block for a resolution.
func (c *Console) Endpoints(eps []transport.Endpoint) {
	if c.quiet {
		return
	}
	var b strings.Builder
	for _, ep := range eps {
		fmt.Fprintf(&b, "Address Family: %s\n", ep.Family())
		fmt.Fprintf(&b, "Socket Type   : %s\n", ep.SocketType())
		fmt.Fprintf(&b, "Protocol      : %d\n", ep.Protocol())
		fmt.Fprintf(&b, "%s Address  : %s\n\n", ep.Family(), ep.Addr.Addr())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.success.Fprintln(c.out, "[+] Address Information:") //nolint:errcheck
	c.success.Fprintln(c.out, "====================")     //nolint:errcheck
	c.info.Fprint(c.out, b.String())                       //nolint:errcheck
}

// Prompt shows "#> " before the sender blocks on input.
func (c *Console) Prompt() {
	if !c.interactive {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompt.Fprint(c.out, "\n#> ") //nolint:errcheck
}

// Received echoes a chunk from the peer.  Piped output gets the raw
// bytes; in interactive mode the chunk is set off on its own line and
// the prompt is redrawn, since the sender is usually waiting.
func (c *Console) Received(chunk []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.interactive {
		c.out.Write(chunk) //nolint:errcheck
		return
	}
	text := string(chunk)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	c.remote.Fprint(c.out, "\n#> "+text) //nolint:errcheck
	c.prompt.Fprint(c.out, "#> ")         //nolint:errcheck
}
