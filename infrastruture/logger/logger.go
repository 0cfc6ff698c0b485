// Package logger provides the prefixed, coloured logger shared by every component.
package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-jumpmaze/config"
	"github.com/sirupsen/logrus"
)

var ErrNilWriter = errors.New("logger writer must not be nil")

// Logger writes messages tagged with a coloured component prefix.
type Logger struct {
	prefix string
	entry  *logrus.Logger
}

// New creates a Logger that writes to out. An empty color disables colouring of the prefix.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		DisableQuote:     true,
		QuoteEmptyFields: false,
	})

	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + config.ColorReset
	}

	return &Logger{prefix: tag, entry: l}, nil
}

// SetLevel changes the minimum level written. Unknown levels are rejected.
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.SetLevel(lvl)
	return nil
}

func (l *Logger) Debug(msg string) {
	l.entry.Debug(l.format(msg))
}

func (l *Logger) Info(msg string) {
	l.entry.Info(l.format(msg))
}

func (l *Logger) Warning(msg string) {
	l.entry.Warn(l.format(msg))
}

func (l *Logger) Error(msg string) {
	l.entry.Error(l.format(msg))
}

func (l *Logger) format(msg string) string {
	return l.prefix + " " + msg
}
