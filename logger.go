package rpirgbw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so messages are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

//SetLogger sets the logger used by the driver. By default nothing is logged.
/*
Peripheral setup and teardown is logged on debug level, initialization and stopping of a Config on info level.
Pass nil to disable logging again.

	rpirgbw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
*/
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

//Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func logDebug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}
