// Package log is a small colorized console logger. Lines written through the
// ...WithContext variants carry the request ID set by the requestid middleware.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const requestIDKey contextKey = "request_id"

type level struct {
	name  string
	label *color.Color
}

var (
	levelDebug = level{"DEBUG", color.New(color.FgCyan)}
	levelInfo  = level{"INFO", color.New(color.FgWhite, color.BgGreen)}
	levelWarn  = level{"WARN", color.New(color.FgBlack, color.BgYellow)}
	levelError = level{"ERROR", color.New(color.FgRed)}
)

var (
	mu     sync.Mutex
	out    io.Writer = os.Stdout
	debugf           = false
)

// SetOutput redirects all log lines. Tests use it to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetDebug toggles Debug and DebugWithContext output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugf = enabled
}

// WithRequestID stores the request ID used to prefix context-aware lines.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func format(requestID, msg string, a ...interface{}) string {
	line := fmt.Sprintf(msg, a...)
	if requestID != "" {
		return fmt.Sprintf("[req_id=%s] %s", requestID, line)
	}
	return line
}

func write(l level, line string) {
	mu.Lock()
	defer mu.Unlock()
	if l == levelDebug && !debugf {
		return
	}
	fmt.Fprintf(out, "%s %s\n", l.label.Sprintf("[%s]", l.name), line)
}

func Debug(msg string, a ...interface{}) {
	write(levelDebug, format("", msg, a...))
}

func DebugWithContext(ctx context.Context, msg string, a ...interface{}) {
	write(levelDebug, format(RequestID(ctx), msg, a...))
}

// Info log information
func Info(msg string, a ...interface{}) {
	write(levelInfo, format("", msg, a...))
}

func InfoWithContext(ctx context.Context, msg string, a ...interface{}) {
	write(levelInfo, format(RequestID(ctx), msg, a...))
}

// Warn log warning
func Warn(msg string, a ...interface{}) {
	write(levelWarn, format("", msg, a...))
}

func WarnWithContext(ctx context.Context, msg string, a ...interface{}) {
	write(levelWarn, format(RequestID(ctx), msg, a...))
}

// Error log error
func Error(msg string, a ...interface{}) {
	write(levelError, format("", msg, a...))
}

func ErrorWithContext(ctx context.Context, msg string, a ...interface{}) {
	write(levelError, format(RequestID(ctx), msg, a...))
}

// DebugStruct dumps v with its field types under label. Nothing is rendered
// unless debug output is on.
func DebugStruct(ctx context.Context, label string, v interface{}) {
	mu.Lock()
	enabled := debugf
	mu.Unlock()
	if !enabled {
		return
	}
	write(levelDebug, format(RequestID(ctx), "%s: %s", label, spew.Sdump(v)))
}
