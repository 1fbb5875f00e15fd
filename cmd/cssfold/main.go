package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cssfold/state"
)

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	lc := &lifecycle{}
	err := newApp(lc).Run(ctx, os.Args)
	stop()

	if err == nil {
		return
	}
	// logger is either not ready yet or already closed
	if !lc.errLogged {
		fmt.Fprintf(os.Stderr, "cssfold failed: %v\n", err)
	}
	os.Exit(1)
}
