package chainapi

import "github.com/decred/slog"

var log = slog.Disabled

// DisableLog disables all library log output.  Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = slog.Disabled
}

// UseLogger sets the subsystem logs to use the provided loggers.
func UseLogger(sLogger slog.Logger) {
	log = sLogger
}
