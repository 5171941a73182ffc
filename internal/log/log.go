// Package log provides leveled, categorized file logging for quillpad.
// Logging is off until Init is called (via --log-file or QUILLPAD_DEBUG);
// entries are timestamped lines with key=value fields.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatCommand   Category = "command"   // command execute/undo
	CatClipboard Category = "clipboard" // clipboard access
	CatFile      Category = "file"      // open/save
	CatWatcher   Category = "watcher"   // fsnotify events
	CatConfig    Category = "config"    // config and session state
	CatUI        Category = "ui"        // TUI lifecycle
)

type logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	minLevel Level
}

var defaultLogger *logger

// Init opens path for appending and enables logging. Returns a cleanup func
// closing the file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defaultLogger = &logger{file: f, writer: f, minLevel: LevelDebug}
	return func() { _ = f.Close() }, nil
}

// SetMinLevel raises the threshold below which entries are dropped.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields...) }

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields...) }

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields...) }

// ErrorErr logs an error with the error value attached as a field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	if level < defaultLogger.minLevel {
		return
	}

	// Format: 2026-08-23T10:45:00 [ERROR] [clipboard] message key=value
	entry := fmt.Sprintf("%s [%s] [%s] %s",
		time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	_, _ = defaultLogger.writer.Write([]byte(entry + "\n"))
}
