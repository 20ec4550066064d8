// tcptalk - an interactive, line-based TCP client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"tcptalk/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprint(os.Stderr, "Error: ") //nolint:errcheck
		color.New(color.FgWhite).Fprintln(os.Stderr, err)   //nolint:errcheck
		cancel()
		os.Exit(1)
	}
}
