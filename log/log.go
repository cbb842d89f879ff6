// Package log keeps the small printf-style logging surface the rest of the
// tool uses, on top of a slog logger that writes colorized lines to stderr and
// optionally plain text lines to a file.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	logger.Store(slog.New(consoleHandler(os.Stderr)))
}

func consoleHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})
}

// Setup replaces the log destination: console output always goes to w, and if
// file is non-nil, a plain text copy of every line is written there too.
func Setup(w io.Writer, file io.Writer) {
	h := consoleHandler(w)
	if file != nil {
		h = slogmulti.Fanout(h, slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	}
	logger.Store(slog.New(h))
}

// SetDebug enables or disables output from Debug
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// IsDebug reports if Debug output is enabled
func IsDebug() bool {
	return level.Level() <= slog.LevelDebug
}

func emit(lvl slog.Level, format string, a ...interface{}) {
	l := logger.Load()
	ctx := context.Background()
	if !l.Enabled(ctx, lvl) {
		return
	}
	l.Log(ctx, lvl, fmt.Sprintf(format, a...))
}

// Info writes a formatted message at info level.
func Info(format string, a ...interface{}) {
	emit(slog.LevelInfo, format, a...)
}

// Error writes a formatted message at error level.
func Error(format string, a ...interface{}) {
	emit(slog.LevelError, format, a...)
}

// Debug writes a formatted message at debug level, if enabled by SetDebug.
func Debug(format string, a ...interface{}) {
	emit(slog.LevelDebug, format, a...)
}
