package cacherine

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// LogLevel defines the severity level for logging
type LogLevel int

const (
	// LogLevelDebug enables all log messages including detailed debugging
	LogLevelDebug LogLevel = iota

	// LogLevelInfo enables informational messages and above
	LogLevelInfo

	// LogLevelWarn enables warning messages and above
	LogLevelWarn

	// LogLevelError enables only error messages
	LogLevelError

	// LogLevelNone disables all logging
	LogLevelNone
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the interface for cache logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F is a convenience function to create a logging field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// DefaultLogger implements Logger interface using Go's standard log package
type DefaultLogger struct {
	level  LogLevel
	logger *log.Logger
	fields []Field
}

// NewDefaultLogger creates a new logger with the specified level
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		level:  level,
		logger: log.New(os.Stdout, "[CACHERINE] ", log.LstdFlags|log.Lmicroseconds),
		fields: make([]Field, 0),
	}
}

// Debug logs a debug message
func (dl *DefaultLogger) Debug(msg string, fields ...Field) {
	if dl.level <= LogLevelDebug {
		dl.log("DEBUG", msg, fields...)
	}
}

// Info logs an info message
func (dl *DefaultLogger) Info(msg string, fields ...Field) {
	if dl.level <= LogLevelInfo {
		dl.log("INFO", msg, fields...)
	}
}

// Warn logs a warning message
func (dl *DefaultLogger) Warn(msg string, fields ...Field) {
	if dl.level <= LogLevelWarn {
		dl.log("WARN", msg, fields...)
	}
}

// Error logs an error message
func (dl *DefaultLogger) Error(msg string, fields ...Field) {
	if dl.level <= LogLevelError {
		dl.log("ERROR", msg, fields...)
	}
}

// With creates a new logger with additional fields
func (dl *DefaultLogger) With(fields ...Field) Logger {
	newFields := make([]Field, len(dl.fields)+len(fields))
	copy(newFields, dl.fields)
	copy(newFields[len(dl.fields):], fields)

	return &DefaultLogger{
		level:  dl.level,
		logger: dl.logger,
		fields: newFields,
	}
}

func (dl *DefaultLogger) log(level, msg string, fields ...Field) {
	allFields := make([]Field, len(dl.fields)+len(fields))
	copy(allFields, dl.fields)
	copy(allFields[len(dl.fields):], fields)

	var fieldStrings []string
	for _, field := range allFields {
		fieldStrings = append(fieldStrings, fmt.Sprintf("%s=%v", field.Key, field.Value))
	}

	var logMsg string
	if len(fieldStrings) > 0 {
		logMsg = fmt.Sprintf("[%s] %s | %s", level, msg, strings.Join(fieldStrings, " "))
	} else {
		logMsg = fmt.Sprintf("[%s] %s", level, msg)
	}

	dl.logger.Println(logMsg)
}

// NoOpLogger is a logger that does nothing - useful for disabling logging
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that discards all messages
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (nol *NoOpLogger) Debug(string, ...Field) {}
func (nol *NoOpLogger) Info(string, ...Field)  {}
func (nol *NoOpLogger) Warn(string, ...Field)  {}
func (nol *NoOpLogger) Error(string, ...Field) {}
func (nol *NoOpLogger) With(...Field) Logger   { return nol }
