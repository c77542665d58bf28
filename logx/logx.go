// Package logx is a small leveled-logging wrapper around the standard
// library log package. It exists because netawait's --log-level flag
// offers a five-level scheme (error, warn, info, debug, trace) finer than
// the boolean gate github.com/m-lab/go/logx provides, while keeping the
// same "wrap the standard logger, don't replace it" shape.
package logx

import (
	"fmt"
	"log"
)

// Level is a logging severity threshold.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// ParseLevel parses one of "error", "warn", "info", "debug", "trace".
func ParseLevel(s string) (Level, error) {
	switch s {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("logx: invalid log level %q", s)
	}
}

func (l Level) String() string {
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
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Logger gates standard-library log output by a configured threshold.
type Logger struct {
	threshold Level
}

// New builds a Logger that emits lines at or below threshold.
func New(threshold Level) *Logger {
	return &Logger{threshold: threshold}
}

func (lg *Logger) log(level Level, format string, args ...interface{}) {
	if lg == nil || level > lg.threshold {
		return
	}
	log.Printf("[%s] "+format, append([]interface{}{level}, args...)...)
}

func (lg *Logger) Error(format string, args ...interface{}) { lg.log(LevelError, format, args...) }
func (lg *Logger) Warn(format string, args ...interface{})  { lg.log(LevelWarn, format, args...) }
func (lg *Logger) Info(format string, args ...interface{})  { lg.log(LevelInfo, format, args...) }
func (lg *Logger) Debug(format string, args ...interface{}) { lg.log(LevelDebug, format, args...) }
func (lg *Logger) Trace(format string, args ...interface{}) { lg.log(LevelTrace, format, args...) }
