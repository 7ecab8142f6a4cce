package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mstbench/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	var sig os.Signal
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-ctx.Done():
			return
		case sig = <-sigCh:
			cancel()
		}
	}()

	err := cmd.Execute(ctx)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) && sig != nil {
		fmt.Fprintf(os.Stderr, "mstbench cancelled by signal %s\n", sig)
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "mstbench: %v\n", err)
	os.Exit(1)
}
