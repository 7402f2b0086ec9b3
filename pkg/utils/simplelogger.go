// Package utils provides a simple file logger for TUI applications.
//
// A TUI owns the terminal, so logs go to a .log file in the current
// directory with a timestamp in the name. Thread-safe via sync.Mutex.
package utils

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	logFile     *os.File
	logMutex    sync.Mutex
	initialized bool
)

// InitLogger creates/opens a .log file in the current directory.
//
// File name: finagent-YYYY-MM-DD-HH-MM.log.
func InitLogger() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if initialized {
		return nil
	}

	timestamp := time.Now().Format("2006-01-02-15-04")
	filename := fmt.Sprintf("finagent-%s.log", timestamp)

	var err error
	logFile, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	initialized = true
	// Write directly, not via Info: the mutex is already held.
	timestampNow := time.Now().Format("2006-01-02 15:04:05")
	initLine := fmt.Sprintf("[%s] INFO: Logger initialized file=%s\n", timestampNow, filename)

	if _, err := logFile.WriteString(initLine); err != nil {
		fmt.Fprintf(os.Stderr, "%s", initLine)
		fmt.Fprintf(os.Stderr, "[LOGGER ERROR: WriteString failed: %v]\n", err)
	}

	return nil
}

// Info logs an informational message.
func Info(msg string, keyvals ...any) {
	logLine("INFO", msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logLine("ERROR", msg, keyvals...)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logLine("DEBUG", msg, keyvals...)
}

// Warn logs a warning.
func Warn(msg string, keyvals ...any) {
	logLine("WARN", msg, keyvals...)
}

// logLine writes one entry in the format:
//
//	[YYYY-MM-DD HH:MM:SS] LEVEL: message key1=value1 key2=value2
//
// Falls back to stderr when the file write fails.
func logLine(level, msg string, keyvals ...any) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %s: %s", timestamp, level, msg)

	for i := 0; i < len(keyvals); i += 2 {
		if i+1 < len(keyvals) {
			line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
		}
	}

	line += "\n"

	if _, err := logFile.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "%s", line)
		fmt.Fprintf(os.Stderr, "[LOGGER ERROR: WriteString failed: %v]\n", err)
	}
}

// Close closes the log file. Called via defer in main().
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "[LOGGER WARNING: Close failed: %v]\n", err)
		}
		logFile = nil
		initialized = false
	}
}
