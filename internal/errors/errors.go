// Package errors defines typed errors for load and enrichment failures.
// Lookup misses are not errors anywhere in the addon; they are empty
// results. These types only classify failures from the outside world:
// source files, the cache database, TMDB.
package errors

import (
	"fmt"
)

// AddonError carries a classification alongside the underlying cause.
type AddonError struct {
	Type    string
	Message string
	Cause   error
}

func (e *AddonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AddonError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeSourceUnavailable    = "SOURCE_UNAVAILABLE"
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeDatabaseFailure      = "DATABASE_FAILURE"
	ErrorTypeTMDBFailure          = "TMDB_FAILURE"
	ErrorTypeAPIKeyMissing        = "API_KEY_MISSING"
)

// New creates a new AddonError
func New(errorType, message string, cause error) *AddonError {
	return &AddonError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewSourceError classifies a missing or unparsable record source file.
func NewSourceError(path string, cause error) *AddonError {
	return New(ErrorTypeSourceUnavailable, fmt.Sprintf("record source %s unavailable", path), cause)
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *AddonError {
	return New(ErrorTypeConfigurationInvalid, message, cause)
}

// NewDatabaseError creates a cache-database error
func NewDatabaseError(message string, cause error) *AddonError {
	return New(ErrorTypeDatabaseFailure, message, cause)
}

// NewTMDBError creates a TMDB-related error
func NewTMDBError(message string, cause error) *AddonError {
	return New(ErrorTypeTMDBFailure, message, cause)
}

// NewAPIKeyMissingError creates an API key missing error
func NewAPIKeyMissingError(service string) *AddonError {
	return New(ErrorTypeAPIKeyMissing, fmt.Sprintf("API key missing for %s", service), nil)
}
