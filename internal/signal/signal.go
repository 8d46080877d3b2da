// Package signal provides utilities for handling OS signals in a graceful manner.
package signal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// SetUpHandler runs action with a context that is cancelled on SIGINT or SIGTERM.
// On the first signal a farewell line is written to out; a second signal
// restores the default behaviour and terminates the process.
func SetUpHandler(ctx context.Context, out io.Writer, action func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\n\nGoodbye!")
			cancel()
			signal.Stop(sigChan)
		case <-done:
		}
	}()

	return action(ctx)
}
