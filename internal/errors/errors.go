// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidBirthDetails   = errors.New("invalid birth details")
	ErrCoordinatesOutOfRange = errors.New("coordinates out of range")
	ErrTimeOutOfRange        = errors.New("birth time out of supported range")
	ErrMoonUnavailable       = errors.New("moon position unavailable")
	ErrPlanetUnavailable     = errors.New("planet position unavailable")
	ErrAscendantUnavailable  = errors.New("ascendant unavailable")
	ErrSectionFailed         = errors.New("analysis section failed")
	ErrChartNotFound         = errors.New("chart not found")
	ErrDataNotFound          = errors.New("data not found")
	ErrDatabaseError         = errors.New("database error")
	ErrConfigInvalid         = errors.New("invalid configuration")
	ErrTimeout               = errors.New("operation timed out")
)

// ProviderError represents an error from an ephemeris provider.
type ProviderError struct {
	Provider string
	Body     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ephemeris error [%s] %s: %s: %v", e.Provider, e.Body, e.Message, e.Err)
	}
	return fmt.Sprintf("ephemeris error [%s] %s: %s", e.Provider, e.Body, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new ProviderError.
func NewProviderError(provider, body, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Body:     body,
		Message:  message,
		Err:      err,
	}
}

// SectionError represents a failure in one analysis section. The chart
// builder records these and keeps deriving the remaining sections.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section error [%s]: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// NewSectionError creates a new SectionError.
func NewSectionError(section string, err error) *SectionError {
	return &SectionError{
		Section: section,
		Err:     err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// DataError represents a data-related error.
type DataError struct {
	DataType string
	Key      string
	Message  string
	Err      error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data error [%s] %s: %s: %v", e.DataType, e.Key, e.Message, e.Err)
	}
	return fmt.Sprintf("data error [%s] %s: %s", e.DataType, e.Key, e.Message)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError creates a new DataError.
func NewDataError(dataType, key, message string, err error) *DataError {
	return &DataError{
		DataType: dataType,
		Key:      key,
		Message:  message,
		Err:      err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
