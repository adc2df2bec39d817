// Package logger provides a leveled logger with per-component tagging.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// LogLevel controls which messages a Logger emits.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// Logger writes leveled, component-tagged log lines.
type Logger struct {
	mu        sync.Mutex
	level     LogLevel
	out       *log.Logger
	component string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// InitLogger initializes the process-wide default logger. Later calls are
// no-ops.
func InitLogger(level LogLevel, component string) {
	once.Do(func() {
		defaultLogger = New(level, component, os.Stdout)
	})
}

// GetLogger returns the default logger, initializing it at INFO if needed.
func GetLogger() *Logger {
	if defaultLogger == nil {
		InitLogger(INFO, "default")
	}
	return defaultLogger
}

// New creates a logger writing to w.
func New(level LogLevel, component string, w io.Writer) *Logger {
	return &Logger{
		level:     level,
		out:       log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		component: component,
	}
}

// WithComponent returns a logger sharing this logger's output and level but
// tagged with a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		out:       l.out,
		component: component,
	}
}

// SetLevel changes the minimum level this logger emits.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	l.out.Printf("[%s][%s] %s", levelNames[level], l.component, fmt.Sprintf(format, args...))

	if level == FATAL {
		os.Exit(1)
	}
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs at FATAL level and exits the process.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}
