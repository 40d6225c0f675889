package logging

// logger is a global reference to a shared Logger (created/initialized with
// the generator, but separated for general usage)
var logger Logger

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered an
// error.  This is useful because commands are classified concurrently and an
// error accumulator is more practical than threading error state through the
// workers
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their
// appropriate log level.

// LogConfigError logs an error related to the tool or run configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogCommandSkipped logs that an intercepted command contributed no entries.
// This is never an error: unrecognized programs, info queries, dependency
// generation runs, and even unclassifiable argument vectors all just mean the
// command has no record in the database.  The run as a whole continues.
func LogCommandSkipped(program, reason string) {
	logger.handleMsg(&CommandMessage{Program: program, Message: reason})
}

// LogBeginPhase notes the start of a pipeline phase (loading, classifying,
// writing) if the log level calls for progress display
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase closes the phase opened by LogBeginPhase
func LogEndPhase(success bool) {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}

// LogRunHeader displays the tool version and the report being processed
func LogRunHeader(reportPath string) {
	if logger.LogLevel == LogLevelVerbose {
		displayRunHeader(reportPath)
	}
}

// LogRunFinished displays the closing summary of a generation run
func LogRunFinished(entryCount int) {
	logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		displayRunFinished(logger.errorCount == 0, entryCount, logger.errorCount)
	}
}
