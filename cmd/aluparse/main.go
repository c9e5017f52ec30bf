// Package main provides the CLI for aluparse.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
