package logger

import (
	"go.uber.org/zap"
)

// Log is the shared logger for the whole application.
var Log *zap.Logger

// Init sets up the global logger. Safe to call more than once.
func Init() {
	if Log != nil {
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		// Logging is not worth crashing over
		Log = zap.NewNop()
		return
	}
	Log = logger
}
