package deploy

import (
	"errors"
	"fmt"
)

// Error categories for the deployment pipeline. Each maps to a distinct CLI
// exit code, so categories are part of the tool's contract.
const (
	// ErrValidation represents a bad descriptor or a pre-flight check
	// failure. No remote mutation has been made when this is returned.
	ErrValidation = "validation_failed"

	// ErrRemoteAPI represents a platform API call that failed while applying
	// a change operation. Remaining operations are never attempted.
	ErrRemoteAPI = "remote_api_failed"

	// ErrConvergenceTimeout represents a service that did not reach steady
	// state within the configured timeout after all operations applied.
	ErrConvergenceTimeout = "convergence_timeout"

	// ErrRollbackFailure represents a rollback that itself failed to
	// converge. The deployment is unrecoverable without operator action.
	ErrRollbackFailure = "rollback_failed"
)

// Error is a categorized deployment error carrying enough context to map to
// an exit code and to point at the plan step that failed.
type Error struct {
	// Category for programmatic error handling
	Category string

	// Message provides human-readable details
	Message string

	// OperationIndex is the zero-based plan index of the failing operation,
	// or -1 when the error is not tied to a specific operation.
	OperationIndex int

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.OperationIndex >= 0 {
		return fmt.Sprintf("%s: %s (operation %d)", e.Category, e.Message, e.OperationIndex)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying error (for errors.Is/As support)
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewValidationError creates a validation error. Nothing remote has changed.
func NewValidationError(message string, underlying error) *Error {
	return &Error{Category: ErrValidation, Message: message, OperationIndex: -1, Underlying: underlying}
}

// NewRemoteAPIError creates an error for a failed platform call at the given
// plan index.
func NewRemoteAPIError(operationIndex int, message string, underlying error) *Error {
	return &Error{Category: ErrRemoteAPI, Message: message, OperationIndex: operationIndex, Underlying: underlying}
}

// NewConvergenceTimeoutError creates an error for a deployment that applied
// cleanly but never reached steady state.
func NewConvergenceTimeoutError(message string, underlying error) *Error {
	return &Error{Category: ErrConvergenceTimeout, Message: message, OperationIndex: -1, Underlying: underlying}
}

// NewRollbackFailureError creates the fatal error for a rollback that did
// not converge.
func NewRollbackFailureError(message string, underlying error) *Error {
	return &Error{Category: ErrRollbackFailure, Message: message, OperationIndex: -1, Underlying: underlying}
}

// IsCategory checks if an error belongs to a specific error category.
func IsCategory(err error, category string) bool {
	if err == nil {
		return false
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Category == category
	}

	return false
}

// OperationIndex extracts the failing plan index from an error, returning -1
// when the error carries none.
func OperationIndex(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.OperationIndex
	}
	return -1
}
