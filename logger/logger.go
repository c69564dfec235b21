package logger

import (
	"errors"
	"sync"

	"github.com/decred/slog"
)

type logger struct {
	subsystemLoggers map[string]slog.Logger
}

var instance *logger
var initCtx sync.Once

// New registers the subsystem loggers whose levels are managed by this
// package. Only the first call has an effect.
func New(sLoggers map[string]slog.Logger) {
	initCtx.Do(func() {
		instance = &logger{
			subsystemLoggers: sLoggers,
		}
	})
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func (l *logger) setLogLevel(subsystemID string, logLevel string) {
	// Ignore invalid subsystems.
	subsystem, ok := l.subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := slog.LevelFromString(logLevel)
	subsystem.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) error {
	if instance == nil {
		return errors.New("cannot set log level on nil logger")
	}
	if _, ok := slog.LevelFromString(logLevel); !ok {
		return errors.New("invalid log level: " + logLevel)
	}
	for subsystemID := range instance.subsystemLoggers {
		instance.setLogLevel(subsystemID, logLevel)
	}
	return nil
}

// SetLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	if instance == nil {
		return
	}
	instance.setLogLevel(subsystemID, logLevel)
}

// SupportedSubsystems returns the registered subsystem ids.
func SupportedSubsystems() []string {
	if instance == nil {
		return nil
	}
	ids := make([]string, 0, len(instance.subsystemLoggers))
	for id := range instance.subsystemLoggers {
		ids = append(ids, id)
	}
	return ids
}
