package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldJobID   = "job_id"
	FieldBatchID = "batch_id"

	// Components
	FieldComponent = "component"

	// Chart domain
	FieldGraha     = "graha"
	FieldRasi      = "rasi"
	FieldBhava     = "bhava"
	FieldAyanamsa  = "ayanamsa"
	FieldMoment    = "moment"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError     = "error"
	FieldErrorType = "error_type"

	// Counts and sizes
	FieldCount     = "count"
	FieldBatchSize = "batch_size"
	FieldWorkers   = "workers"

	// Status
	FieldStatus = "status"

	// Files
	FieldFile = "file"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Pool struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewPool() *Pool {
//	    return &Pool{
//	        logger: logger.ComponentLogger("batch.pool"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	jobLogger := logger.ChildLogger(baseLogger, logger.FieldJobID, job.ID)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
