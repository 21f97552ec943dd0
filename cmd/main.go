package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var sig signalExit
		if errors.As(err, &sig) {
			os.Exit(128 + int(sig.sig))
		}
		os.Exit(1)
	}
}

// signalExit reports that serve stopped because of a termination signal.
type signalExit struct {
	sig syscall.Signal
}

func (e signalExit) Error() string {
	return "stopped by " + e.sig.String()
}

var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func notifyShutdown() chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, shutdownSignals...)
	return quit
}
