// Package main is the asphalt command line.
//
// Usage:
//
//	asphalt estimate --length 50 --width 20 --thickness 3 --price 80
//	asphalt interactive
//	asphalt sections --file lot.yaml --price 80 --xlsx quote.xlsx
//	asphalt curve --length 50 --width 20 --price 80 --html curve.html
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/cli"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
