package cli

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type ctxKey int

const loggerKey ctxKey = 0

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
}

// withLogger stores the logger on the context so deeply nested command
// helpers can log without threading a *CLI through.
func withLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// progress logs a step with its elapsed time at debug level. Call the
// returned func when the step finishes.
func progress(logger *log.Logger, step string) func() {
	start := time.Now()
	logger.Debug("starting", "step", step)
	return func() {
		logger.Debug("finished", "step", step, "elapsed", time.Since(start).Round(time.Millisecond))
	}
}
