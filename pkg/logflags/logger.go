package logflags

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the disassembler layers.
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

// Fields are the key/value pairs attached to a Logger.
type Fields map[string]interface{}

// LoggerFactory builds the Logger of a layer. fields and out may be nil.
type LoggerFactory func(level logrus.Level, fields Fields, out io.Writer) Logger

var loggerFactory LoggerFactory

// SetLoggerFactory replaces the logrus based default for every Logger
// created afterwards. A nil factory restores the default.
func SetLoggerFactory(lf LoggerFactory) {
	loggerFactory = lf
}

// WithAddr returns l annotated with a machine address, printed in hex.
func WithAddr(l Logger, addr uint64) Logger {
	return l.WithField("addr", fmt.Sprintf("%#x", addr))
}

type logrusLogger struct {
	*logrus.Entry
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &logrusLogger{l.Entry.WithField(key, value)}
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{l.Entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) WithError(err error) Logger {
	return &logrusLogger{l.Entry.WithError(err)}
}
