package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Logger is the logging interface shared by the chat packages.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// Fields is the usual structured payload passed as obj.
type Fields map[string]any

// Level tags a log line.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

// writerLogger emits "<RFC3339> <LEVEL> <msg>[ obj=<json>]" lines.
type writerLogger struct {
	w   io.Writer
	now func() time.Time
}

// NewWriterLogger builds a logger that writes one line per entry to w.
// Callers keep stdout for user-facing output and pass os.Stderr here.
func NewWriterLogger(w io.Writer) Logger {
	return writerLogger{w: w, now: time.Now}
}

func (l writerLogger) Info(msg string, obj any)  { l.log(LevelInfo, msg, obj) }
func (l writerLogger) Warn(msg string, obj any)  { l.log(LevelWarn, msg, obj) }
func (l writerLogger) Debug(msg string, obj any) { l.log(LevelDebug, msg, obj) }
func (l writerLogger) Error(msg string, obj any) { l.log(LevelError, msg, obj) }

func (l writerLogger) log(level Level, msg string, obj any) {
	if l.w == nil {
		return
	}
	line := fmt.Sprintf("%s %-5s %s", l.now().Format(time.RFC3339), level, msg)
	if suffix := encodeFields(obj); suffix != "" {
		line += " obj=" + suffix
	}
	_, _ = io.WriteString(l.w, line+"\n")
}

// encodeFields renders obj as JSON, falling back to a quoted %+v form for
// values json cannot encode.
func encodeFields(obj any) string {
	if obj == nil {
		return ""
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprintf("%+v", obj))
	}
	return string(b)
}

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger != nil {
		logger.Warn(msg, obj)
	}
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger != nil {
		logger.Error(msg, obj)
	}
}

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
