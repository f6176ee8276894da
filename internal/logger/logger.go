package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// LogLevel represents log severity
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels
type LogFunc func(level LogLevel, msg string, keyvals ...interface{})

var (
	mu      sync.RWMutex
	logFunc LogFunc = func(level LogLevel, msg string, keyvals ...interface{}) {}
)

// SetLogger sets the global logger function
func SetLogger(f LogFunc) {
	if f == nil {
		return
	}
	mu.Lock()
	logFunc = f
	mu.Unlock()
}

func current() LogFunc {
	mu.RLock()
	defer mu.RUnlock()
	return logFunc
}

// Debug logs a message at debug level
func Debug(msg string, keyvals ...interface{}) {
	current()(DebugLevel, msg, keyvals...)
}

// Info logs a message at info level
func Info(msg string, keyvals ...interface{}) {
	current()(InfoLevel, msg, keyvals...)
}

// Error logs a message at error level
func Error(msg string, keyvals ...interface{}) {
	current()(ErrorLevel, msg, keyvals...)
}

// NewWriterLogger returns a LogFunc printing key=value lines to w.
// Debug messages are dropped unless verbose is set.
func NewWriterLogger(w io.Writer, verbose bool) LogFunc {
	var wmu sync.Mutex
	return func(level LogLevel, msg string, keyvals ...interface{}) {
		if level == DebugLevel && !verbose {
			return
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s %-5s %s", time.Now().Format("15:04:05.000"), strings.ToUpper(string(level)), msg)
		for i := 0; i < len(keyvals); i += 2 {
			if i+1 < len(keyvals) {
				fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
			} else {
				fmt.Fprintf(&b, " %v", keyvals[i])
			}
		}
		b.WriteByte('\n')

		wmu.Lock()
		defer wmu.Unlock()
		io.WriteString(w, b.String())
	}
}
