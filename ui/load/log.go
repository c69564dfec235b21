package load

import "github.com/decred/slog"

var log = slog.Disabled

// UseLogger sets the subsystem logs to use the provided loggers.
func UseLogger(sLogger slog.Logger) {
	log = sLogger
}
