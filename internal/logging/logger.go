// Package logging provides the session logger handle, a small leveled
// interface backed by go-kit/log, in the same style as
// absmach-magistrala/logger.
package logging

import (
	"io"

	kitlog "github.com/go-kit/kit/log"
)

// Logger is the narrow logging surface a Session needs.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
}

type logger struct {
	kit kitlog.Logger
}

// New returns a JSON-formatted Logger writing to out, timestamped the same
// way absmach-magistrala/logger.New does.
func New(out io.Writer) Logger {
	l := kitlog.NewJSONLogger(kitlog.NewSyncWriter(out))
	l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
	return &logger{kit: l}
}

// Nop is a Logger that discards everything, the default for Sessions that
// don't need observability.
func Nop() Logger {
	return &logger{kit: kitlog.NewNopLogger()}
}

func (l *logger) Debug(msg string, keyvals ...interface{}) {
	l.log("debug", msg, keyvals...)
}

func (l *logger) Info(msg string, keyvals ...interface{}) {
	l.log("info", msg, keyvals...)
}

func (l *logger) Warn(msg string, keyvals ...interface{}) {
	l.log("warn", msg, keyvals...)
}

func (l *logger) log(level, msg string, keyvals ...interface{}) {
	args := append([]interface{}{"level", level, "message", msg}, keyvals...)
	l.kit.Log(args...)
}
