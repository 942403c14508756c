package usc

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler is the handler behind the default package logger. It
// reports every level as disabled, so session code that logs transitions
// and failures costs a single Enabled check when nobody is listening.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

var packageLog atomic.Pointer[slog.Logger]

func init() {
	packageLog.Store(silent)
}

// SetLogger sets the logger of sessions and batches whose Options.Logger
// is nil. Nil restores the silent default. It may be called while
// conversions are running; sessions keep the logger they started with.
//
// Sessions log at two levels:
//   - [slog.LevelDebug]: load, convert and metadata transitions, with the
//     session ID, backend, stage and instruction count
//   - [slog.LevelWarn]: operations rejected by the state machine or failed
//     by a backend, and failed batch jobs
//
// Example:
//
//	usc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	packageLog.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return packageLog.Load()
}

// logger returns o.Logger, or the package logger when it is unset.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}
