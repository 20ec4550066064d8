package core

import (
	"os"

	"tcptalk/config"
	"tcptalk/internal/console"
	"tcptalk/internal/metrics"
	"tcptalk/internal/transport"
	"tcptalk/util"
)

// Build constructs the Mode for a validated configuration, wired to
// the process's stdin, stdout and stderr.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	if cfg.NoDNS {
		if err := util.RequireNumericHost(cfg.Host); err != nil {
			return nil, err
		}
	}

	return &ConnectMode{
		Resolver:    &transport.DNSResolver{NoDNS: cfg.NoDNS},
		Dialer:      &transport.TCPDialer{Timeout: cfg.Timeout},
		Console:     console.NewStd(cfg.Quiet, cfg.NoColor),
		Input:       console.NewLineReader(os.Stdin),
		Logger:      logger,
		Metrics:     metrics.New(),
		Host:        cfg.Host,
		Port:        cfg.Port,
		Sentinel:    config.DefaultSentinel,
		ExitOnClose: cfg.ExitOnClose,
	}, nil
}
