package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		value string
		level LogLevel
	}{
		{value: "ERROR", level: ERROR},
		{value: "warn", level: WARN},
		{value: "Info", level: INFO},
		{value: "debug", level: DEBUG},
		{value: " TRACE ", level: TRACE},
		{value: "verbose", level: INFO},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			a.Equal(tt.level, StringToLogLevel(tt.value))
		})
	}
}

func TestInitializeWithWriter(t *testing.T) {
	a := assert.New(t)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	InitializeWithWriter(WARN, out, errOut)
	defer InitializeWithWriter(ERROR, nullWriter, nullWriter)

	Error.Print("error message")
	Warn.Print("warn message")
	Info.Print("info message")
	Debug.Print("debug message")

	a.Contains(errOut.String(), "error message")
	a.Contains(out.String(), "warn message")
	a.NotContains(out.String(), "info message")
	a.NotContains(out.String(), "debug message")

	a.True(IsLogLevel(ERROR))
	a.True(IsLogLevel(WARN))
	a.False(IsLogLevel(INFO))
}
