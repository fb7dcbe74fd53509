// Command stereodp solves scanline stereo problems with dynamic programming.
//
//	stereodp solve costs.json --strategy reference --cost
//	stereodp disparity left.png right.png -o disparity.png --color
//	stereodp verify --trials 500 --seed 7
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
