package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	level   LogLevel
	msg     string
	keyvals []interface{}
}

func TestSetLogger(t *testing.T) {
	var got []entry
	SetLogger(func(level LogLevel, msg string, keyvals ...interface{}) {
		got = append(got, entry{level, msg, keyvals})
	})
	defer SetLogger(func(LogLevel, string, ...interface{}) {})

	SetLogger(nil) // ignored
	Debug("paginated", "pages", 3)
	Info("rendered")
	Error("failed", "path", "a.xml")

	assert.Equal(t, []entry{
		{DebugLevel, "paginated", []interface{}{"pages", 3}},
		{InfoLevel, "rendered", nil},
		{ErrorLevel, "failed", []interface{}{"path", "a.xml"}},
	}, got)
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewWriterLogger(&buf, false)
	quiet(DebugLevel, "hidden")
	quiet(InfoLevel, "shown", "key", "35240", "odd")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO  shown key=35240 odd\n")

	buf.Reset()
	NewWriterLogger(&buf, true)(DebugLevel, "visible", "pages", 2)
	assert.Contains(t, buf.String(), "DEBUG visible pages=2")
}
