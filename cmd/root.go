// Package cmd wires up the CLI flags and dispatches to the core.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"tcptalk/config"
	"tcptalk/internal/core"
	"tcptalk/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X tcptalk/cmd.version=1.1.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Output streams for usage and informational text.  Tests swap them.
var (
	stdout io.Writer = os.Stdout //nolint:gochecknoglobals
	stderr io.Writer = os.Stderr //nolint:gochecknoglobals
)

// Execute parses args and runs a talk session.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("tcptalk", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── connection ───────────────────────────────────────────────
	fs.BoolVarP(&cfg.NoDNS, "no-dns", "n", cfg.NoDNS, "Numeric-only, no DNS resolution")
	timeoutSec := int(cfg.Timeout / time.Second)
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Connect timeout in seconds")

	// ── session ──────────────────────────────────────────────────
	fs.BoolVar(&cfg.ExitOnClose, "exit-on-close", cfg.ExitOnClose, "Stop sending once the peer closes")

	// ── output ───────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Hide progress lines")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	var verbose int
	fs.CountVarP(&verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "tcptalk %s\n", version)
		return nil
	}

	cfg.Timeout = time.Duration(timeoutSec) * time.Second
	if fs.Changed("verbose") {
		cfg.Verbose = verbose
	}

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}
	if cfg.Host == "" || cfg.Port == "" {
		printUsage(fs)
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintf(stdout, "tcptalk: would connect to %s (timeout %s, exit-on-close %t)\n",
			util.FormatAddr(cfg.Host, cfg.Port), cfg.Timeout, cfg.ExitOnClose)
		return nil
	}

	logger.Debug("config: %+v", *cfg)
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional takes "<host> <port>".  Either may instead come from
// the environment.
func parsePositional(cfg *config.Config, remaining []string) error {
	switch len(remaining) {
	case 0:
	case 1:
		cfg.Host = remaining[0]
	case 2:
		cfg.Host = remaining[0]
		cfg.Port = remaining[1]
	default:
		return fmt.Errorf("too many arguments: %q (use --help for usage)", remaining[2:])
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(stderr, `tcptalk - interactive line-based TCP client v%s

Connects to host:port, sends each line typed on stdin and prints what
the server sends back.  The session ends when the server sends "bye".

Usage:
  tcptalk [options] <host> <port>

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(stderr, `
Examples:
  tcptalk example.com 7                 Talk to an echo service
  tcptalk -n 127.0.0.1 9000             Numeric address, no DNS
  tcptalk -w 5 chat.example.com irc     Service name, 5s connect timeout
  printf 'hi\n' | tcptalk -q host 9000  Pipe input, plain output

Environment:
  TCPTALK_HOST, TCPTALK_PORT, TCPTALK_NO_DNS, TCPTALK_TIMEOUT,
  TCPTALK_EXIT_ON_CLOSE, TCPTALK_VERBOSE, TCPTALK_QUIET, TCPTALK_NO_COLOR
`)
}
