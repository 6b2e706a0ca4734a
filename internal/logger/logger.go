// Package logger provides levelled logging for the osmswap CLI.
// Warnings are always printed; info lines and section headers appear at
// LevelInfo, debug lines at LevelDebug (the --verbose flag).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls which messages are printed.
type Level int

// Logging levels, from least to most chatty.
const (
	LevelQuiet Level = iota
	LevelInfo
	LevelDebug
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelQuiet:
		return "quiet"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

var (
	mu     sync.RWMutex
	level  = LevelQuiet
	output io.Writer = os.Stderr
)

// SetLevel sets the logging level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetVerbose switches between LevelDebug and LevelInfo.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelInfo)
}

// IsVerbose returns true if debug messages are printed.
func IsVerbose() bool {
	return GetLevel() >= LevelDebug
}

// SetOutput sets the output writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(min Level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if level >= min {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message at LevelDebug.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Section prints a section header at LevelInfo.
func Section(name string) {
	logf(LevelInfo, "\n=== ", "%s ===", name)
}

// Info prints an informational message at LevelInfo.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning at every level.
func Warn(format string, args ...any) {
	logf(LevelQuiet, "[WARN] ", format, args...)
}
