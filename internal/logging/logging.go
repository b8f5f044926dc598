// Package logging is the process-wide diagnostic log. It writes every
// entry to a file sink once Setup has opened one, and echoes entries at
// or above a threshold to the console through the standard log package.
// The log is never torn down; the file handle lives for the process.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level classifies a diagnostic entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a level name to its Level. Names are case-insensitive;
// "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level '%s'", s)
}

var (
	mu         sync.Mutex
	fileOut    io.Writer
	consoleMin = LevelWarn
	setupOnce  sync.Once
	setupErr   error
)

// Setup opens the file sink and fixes the console threshold. The first
// call wins; later calls return the first call's result without touching
// anything. An empty path leaves the file sink disabled. The console
// sink is active even before Setup, at the default warn threshold.
func Setup(path string, console Level) error {
	setupOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		consoleMin = console
		if path == "" {
			return
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			setupErr = fmt.Errorf("failed to open log file: %w", err)
			return
		}
		fileOut = file
	})
	return setupErr
}

// Logger tags entries with the subsystem that produced them.
type Logger struct {
	component string
}

// Named returns a logger for the given subsystem.
func Named(component string) *Logger {
	return &Logger{component: component}
}

func (l *Logger) Debugf(format string, args ...any) { emit(LevelDebug, l.component, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { emit(LevelInfo, l.component, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { emit(LevelWarn, l.component, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { emit(LevelError, l.component, format, args...) }

func emit(level Level, component, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	mu.Lock()
	if fileOut != nil {
		fmt.Fprintf(fileOut, "%s %s %s: %s\n",
			time.Now().Format("2006/01/02 15:04:05"), level, component, message)
	}
	echo := level >= consoleMin
	mu.Unlock()

	if echo {
		log.Printf("%s: %s", level, message)
	}
}

// resetForTest swaps the sinks and rearms Setup so tests run isolated.
func resetForTest(file io.Writer, console Level) {
	mu.Lock()
	defer mu.Unlock()
	fileOut = file
	consoleMin = console
	setupOnce = sync.Once{}
	setupErr = nil
}
