// Command apportion computes the seat distribution of a mixed-member
// proportional election from a normalized dataset.
//
// Usage:
//
//	apportion run --data btw2017.yaml [--config apportion.yaml] [--output text|json|yaml] [--metrics-file run.prom]
//	apportion validate --data btw2017.yaml
//	apportion version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
