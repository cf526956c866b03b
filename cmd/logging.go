package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/snakeskin/figrender/log"
)

var logger = log.New("figrender")

// Raise the log level to info when verbose output is requested. An explicit
// level set through the environment is left alone.
func setupLogging(verbose bool) {
	if verbose && log.GetLevel() > log.Info {
		log.SetLevel(log.Info)
	}
}

// Returns a context that is cancelled when the process receives SIGINT or
// SIGTERM. The running child process is killed and the remaining jobs are
// skipped.
func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Warningf("received %s; stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
