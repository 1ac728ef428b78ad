package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter   = &NullWriter{}
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	// Errors are visible even before Initialize is called
	Error = log.New(os.Stderr, "ERROR: ", logFlags)
	Warn = log.New(nullWriter, "WARN:  ", logFlags)
	Info = log.New(nullWriter, "INFO:  ", logFlags)
	Debug = log.New(nullWriter, "DEBUG: ", logFlags)
	Trace = log.New(nullWriter, "TRACE: ", logFlags)
}

func Initialize(logLevel LogLevel) {
	InitializeWithWriter(logLevel, os.Stdout, os.Stderr)
	Info.Printf("Loggers initialized with level '%s'", logLevel.String())
}

// InitializeWithWriter routes every enabled level except ERROR to out.
func InitializeWithWriter(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	currentLevel = logLevel

	Error = log.New(writerFor(logLevel, ERROR, errOut), "ERROR: ", logFlags)
	Warn = log.New(writerFor(logLevel, WARN, out), "WARN:  ", logFlags)
	Info = log.New(writerFor(logLevel, INFO, out), "INFO:  ", logFlags)
	Debug = log.New(writerFor(logLevel, DEBUG, out), "DEBUG: ", logFlags)
	Trace = log.New(writerFor(logLevel, TRACE, out), "TRACE: ", logFlags)
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}

func writerFor(current LogLevel, level LogLevel, writer io.Writer) io.Writer {
	if current >= level {
		return writer
	}
	return nullWriter
}
