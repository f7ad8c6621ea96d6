package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/timescale/intrinsic-names/internal/intrinsics/cmd"
	"github.com/timescale/intrinsic-names/internal/intrinsics/logging"
)

func main() {
	if err := run(); err != nil {
		if exitErr, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(cmd.ExitGeneralError)
	}
	os.Exit(cmd.ExitSuccess)
}

func run() (err error) {
	ctx, cancel := notifyContext(context.Background())
	defer func() {
		cancel()
		if r := recover(); r != nil {
			err = errors.Join(err, fmt.Errorf("panic: %v", r))
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}
	}()
	err = cmd.Execute(ctx)
	return
}

// notifyContext is [signal.NotifyContext] plus a log line on the first
// signal, after which default signal handling is restored.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logging.Info("Received interrupt signal, press control-C again to exit", zap.Stringer("signal", sig))
			signal.Stop(sigChan)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		cancel()
		signal.Stop(sigChan)
	}
}
