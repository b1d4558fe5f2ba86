package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/ekscli/cmd"
	errUtils "github.com/cloudposse/ekscli/errors"
	log "github.com/cloudposse/ekscli/pkg/logger"
)

func main() {
	// SIGINT and SIGTERM cancel the context; in-flight calls return ErrOperationCancelled.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()

	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(code)
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run(ctx context.Context) int {
	defer cmd.Cleanup()

	err := cmd.Execute(ctx)
	if err == nil {
		return 0
	}

	// Capture error to Sentry if configured (safe to call even if Sentry not initialized).
	errUtils.CaptureError(err)
	errUtils.PrintError(err, cmd.FormatterConfig())

	exitCode := errUtils.GetExitCode(err)
	log.Debug("Exiting with exit code", "code", exitCode)
	return exitCode
}
