// Package logging wires logrus into the engine's Logger interface.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects the level and output format.
type Options struct {
	Level string
	JSON  bool
	Out   io.Writer
}

// New builds a configured logrus logger. An unknown level falls back to info.
func New(opts Options) *logrus.Logger {
	log := logrus.New()
	if opts.Out != nil {
		log.SetOutput(opts.Out)
	} else {
		log.SetOutput(os.Stderr)
	}

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", opts.Level, err)
	} else {
		log.SetLevel(level)
	}

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return log
}

// EngineLogger adapts a logrus entry to calculation.Logger.
type EngineLogger struct {
	entry *logrus.Entry
}

// NewEngineLogger tags every line with the component name.
func NewEngineLogger(log *logrus.Logger, component string) EngineLogger {
	return EngineLogger{entry: log.WithField("component", component)}
}

func (l EngineLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l EngineLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l EngineLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l EngineLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// Entry exposes the underlying entry for callers that want structured fields.
func (l EngineLogger) Entry() *logrus.Entry { return l.entry }
