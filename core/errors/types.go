// ABOUTME: Custom error types for the fetch and process steps
// ABOUTME: Lets callers tell transport, shape and input failures apart with errors.As

package errors

import (
	"errors"
	"fmt"
)

// ReasonExpectedArray is the reason carried by MalformedResponseError when the
// body is not a JSON array.
const ReasonExpectedArray = "expected an array of users"

// FetchFailedError represents a transport-level failure reaching the users endpoint
type FetchFailedError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *FetchFailedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("fetch failed for %s", e.URL)
	}
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying transport error
func (e *FetchFailedError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents a response whose body is not the expected shape
type MalformedResponseError struct {
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("malformed response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Cause)
}

// Unwrap returns the decode error, if any
func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// InvalidInputError represents a processor call with unusable input
type InvalidInputError struct {
	Message string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// ProblemWrongType marks a MalformedRecordError for a field whose JSON type is wrong
const ProblemWrongType = "has the wrong type"

// MalformedRecordError represents a record missing a required field or
// carrying one with the wrong JSON type
type MalformedRecordError struct {
	// Index is the position of the record in the batch
	Index int
	ID    int
	Field string
	// Problem is empty for a missing field
	Problem string
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	if e.Problem == "" {
		return fmt.Sprintf("malformed record at index %d (ID %d): missing field '%s'", e.Index, e.ID, e.Field)
	}
	return fmt.Sprintf("malformed record at index %d (ID %d): field '%s' %s", e.Index, e.ID, e.Field, e.Problem)
}

// IsFetchFailed checks if an error is a FetchFailedError
func IsFetchFailed(err error) bool {
	var fetchErr *FetchFailedError
	return errors.As(err, &fetchErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var respErr *MalformedResponseError
	return errors.As(err, &respErr)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var inputErr *InvalidInputError
	return errors.As(err, &inputErr)
}

// IsMalformedRecord checks if an error is a MalformedRecordError
func IsMalformedRecord(err error) bool {
	var recordErr *MalformedRecordError
	return errors.As(err, &recordErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
