//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

import (
	"fmt"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// LogLevel represents xcomp diagnostic severities.
type LogLevel int32

const (
	LevelError LogLevel = iota // Native call failed
	LevelWarn                  // Something unexpected but recoverable
	LevelInfo                  // Standard information
	LevelDebug                 // Stuff for debugging
	LevelTrace                 // Extremely verbose debugging
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// LoggerFunc receives each xcomp diagnostic message. The core itself only
// emits at LevelError (native status failures); the other levels exist for
// callback bodies and future surface area.
type LoggerFunc func(level LogLevel, message string)

var (
	loggerMu sync.Mutex
	logger   LoggerFunc
)

// SetLogger installs a process-wide diagnostics sink.
// Pass nil to disable logging; that is also the default, and with no logger
// installed the logging paths reduce to a mutex-guarded nil check.
func SetLogger(fn LoggerFunc) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = fn
}

// logf formats and delivers a diagnostic message, or does nothing when no
// logger is installed.
func logf(level LogLevel, format string, args ...any) {
	loggerMu.Lock()
	fn := logger
	loggerMu.Unlock()

	if fn == nil {
		return
	}
	fn(level, fmt.Sprintf(format, args...))
}

// CharmLogger adapts a charmbracelet/log Logger into a LoggerFunc.
//
//	xcomp.SetLogger(xcomp.CharmLogger(log.New(os.Stderr)))
func CharmLogger(l *charmlog.Logger) LoggerFunc {
	return func(level LogLevel, message string) {
		switch level {
		case LevelError:
			l.Error(message)
		case LevelWarn:
			l.Warn(message)
		case LevelInfo:
			l.Info(message)
		default: // trace folds into debug; charm has no trace level
			l.Debug(message)
		}
	}
}
