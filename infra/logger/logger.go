package logger

import corelogger "github.com/gebusstephane-bit/fleet-master-pro-sub000/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger mirrors the core no-op logger.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. APP_ENV selects the output
// format and LOG_LEVEL the minimum level.
func New(component string) Logger {
	return NewZerologLogger(component)
}
