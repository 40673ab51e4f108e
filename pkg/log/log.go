// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return NewWithLevel(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing to w, discarding entries
// below level.
func NewWithLevel(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
