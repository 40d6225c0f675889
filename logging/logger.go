package logging

import (
	"sync"
)

// Logger is the type responsible for storing and displaying output from the
// generation pipeline as necessary
type Logger struct {
	errorCount int // total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be displayed at the end of a run
	warnings []LogMessage

	// m is the mutex used to synchronize the printing of messages -- command
	// classification runs on multiple goroutines and their messages must not
	// interleave
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and the closing run notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, run header and progress, closing message (DEFAULT)
)

// LogMessage is the common interface for everything the logger can display
type LogMessage interface {
	display()
	isError() bool
}

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts the logger to process a message -- this message could be
// coming in concurrently so there is a mutex in place to make sure we are not
// printing multiple things at the same time
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}

	l.m.Unlock()
}

// flushWarnings displays all accumulated warnings and clears the accumulator
func (l *Logger) flushWarnings() {
	l.m.Lock()

	if l.LogLevel >= LogLevelWarning {
		for _, w := range l.warnings {
			w.display()
		}
	}
	l.warnings = nil

	l.m.Unlock()
}
