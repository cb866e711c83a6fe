// Package errors provides custom error types for the uwgo system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the uwgo system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrEngineNotFound indicates that the external UWG engine executable
	// could not be located on the system
	ErrEngineNotFound = errors.New("uwg engine not found")

	// ErrSimulationFailed indicates that the external UWG engine ran but
	// did not produce a morphed weather file
	ErrSimulationFailed = errors.New("simulation failed")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// EngineError represents a failure from the external UWG engine process
type EngineError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("uwg engine %q exited with code %d: %s",
			e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("uwg engine %q exited with code %d", e.Command, e.ExitCode)
}

// Unwrap implements errors.Unwrap
func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *EngineError) Is(target error) bool {
	return target == ErrSimulationFailed
}

// IOError represents a file system operation error
type IOError struct {
	Operation string // read, write, create, delete
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps a file system error with context
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
