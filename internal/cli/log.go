// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger prefixed with the command name.
// The logger writes to w and filters messages below level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration. It is meant for one goroutine; concurrent calls to
// done race on the logger fields they format.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker whose clock starts now.
// Call done once the operation finishes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time rounded to
// the millisecond.
// Example output: "magsep: Checked candidates count=3 infeasible=1 elapsed=12ms"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}

// ctxKey is the type of context keys owned by this package, so they cannot
// collide with keys from other packages.
type ctxKey int

// loggerKey is the context key under which the command logger is stored.
const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l. A nil ctx is treated as
// context.Background(). Retrieve the logger with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx.
// Without one it falls back to log.Default(), so commands always have a
// usable logger even when they run outside RootCommand.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
