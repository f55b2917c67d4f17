package logger

import (
	"os"

	corelogger "github.com/kilianp07/fabric/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component writing to stdout. The output
// format is selected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NewDiagnostic returns a Logger writing to stderr. It needs no configuration
// and is safe to build from package init functions.
func NewDiagnostic(component string) Logger {
	return NewZerologLoggerTo(os.Stderr, component)
}
