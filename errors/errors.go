// Package errors provides error handling for the jyotish engine.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel marking for the engine error taxonomy
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Taxonomy-aware errors
//	return errors.Inputf("latitude %f out of range [-90, 90]", lat)
//
//	// Check errors
//	if errors.IsInput(err) {
//	    // reject the birth input, do not retry
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Engine error taxonomy. Every error the chart engine returns is marked with
// exactly one of these sentinels; callers dispatch with errors.Is or the
// IsX helpers below.
var (
	// ErrInput indicates a malformed or out-of-range birth instant or
	// coordinate pair. User-caused; never retried.
	ErrInput = New("invalid input")

	// ErrConfiguration indicates an unknown ayanamsa, house system, or
	// invalid engine configuration value.
	ErrConfiguration = New("invalid configuration")

	// ErrEphemeris indicates the position provider failed or returned an
	// out-of-range longitude. Aborts the affected chart only.
	ErrEphemeris = New("ephemeris failure")

	// ErrInvariant indicates an internal calculation invariant was violated
	// (unnormalized longitude, broken house partition). Always a defect,
	// never bad input.
	ErrInvariant = New("calculation invariant violated")
)

// Inputf creates an input error with a formatted message.
func Inputf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInput)
}

// Configf creates a configuration error with a formatted message.
func Configf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfiguration)
}

// Ephemerisf creates an ephemeris error with a formatted message.
func Ephemerisf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrEphemeris)
}

// Invariantf creates an invariant-violation error with a formatted message.
// Invariant violations carry an assertion so they surface with full stacks.
func Invariantf(format string, args ...interface{}) error {
	return Mark(AssertionFailedf(format, args...), ErrInvariant)
}

// WrapEphemeris wraps a provider failure, preserving the taxonomy mark.
func WrapEphemeris(err error, context string) error {
	return Mark(Wrap(err, context), ErrEphemeris)
}

// IsInput reports whether err is or wraps an input error.
func IsInput(err error) bool {
	return err != nil && Is(err, ErrInput)
}

// IsConfiguration reports whether err is or wraps a configuration error.
func IsConfiguration(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsEphemeris reports whether err is or wraps an ephemeris error.
func IsEphemeris(err error) bool {
	return err != nil && Is(err, ErrEphemeris)
}

// IsInvariant reports whether err is or wraps an invariant violation.
func IsInvariant(err error) bool {
	return err != nil && Is(err, ErrInvariant)
}
