package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	DebugLogger *log.Logger
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger

	threshold atomic.Int32
)

// callDepth makes Lshortfile report the caller, not this file.
const callDepth = 2

func init() {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	DebugLogger = log.New(os.Stdout, "DEBUG: ", flags)
	InfoLogger = log.New(os.Stdout, "INFO: ", flags)
	WarnLogger = log.New(os.Stdout, "WARN: ", flags)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", flags)
	threshold.Store(int32(LevelInfo))
}

// ParseLevel maps "debug", "info", "warn" and "error"; anything else is info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func SetLevel(l Level) {
	threshold.Store(int32(l))
}

// SetOutput redirects every level, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	DebugLogger.SetOutput(w)
	InfoLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}

func enabled(l Level) bool {
	return int32(l) >= threshold.Load()
}

func Debug(msg string, v ...interface{}) {
	if enabled(LevelDebug) {
		_ = DebugLogger.Output(callDepth, fmt.Sprintf(msg, v...))
	}
}

func Info(msg string, v ...interface{}) {
	if enabled(LevelInfo) {
		_ = InfoLogger.Output(callDepth, fmt.Sprintf(msg, v...))
	}
}

func Warn(msg string, v ...interface{}) {
	if enabled(LevelWarn) {
		_ = WarnLogger.Output(callDepth, fmt.Sprintf(msg, v...))
	}
}

func Error(msg string, err error, v ...interface{}) {
	if !enabled(LevelError) {
		return
	}
	if err != nil {
		_ = ErrorLogger.Output(callDepth, fmt.Sprintf(msg+": %v", append(v, err)...))
	} else {
		_ = ErrorLogger.Output(callDepth, fmt.Sprintf(msg, v...))
	}
}
