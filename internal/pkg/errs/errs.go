package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
	ErrNetwork         = errors.New("network error")
	ErrRemoteRejection = errors.New("remote rejection")
	ErrSync            = errors.New("repository sync failed")

	// ErrNoActiveOrder is returned when a destructive action is attempted
	// while no order is selected.
	ErrNoActiveOrder = errors.New("no active order")

	// ErrUserDeclined ends a confirmation-gated pipeline without side effects.
	// It is a normal outcome, not a failure.
	ErrUserDeclined = errors.New("user declined")
)

// ObjectNotFoundError reports an id that is absent from the current snapshot.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a value that is empty after trimming.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NetworkError is a transport-level failure: no response was received.
type NetworkError struct {
	Method string
	URL    string
	Cause  error
}

func NewNetworkError(method, url string, cause error) *NetworkError {
	return &NetworkError{Method: method, URL: url, Cause: cause}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s %s (cause: %v)", ErrNetwork, e.Method, e.URL, e.Cause)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Cause}
}

// RemoteRejectionError means the remote store answered with a status >= 400.
type RemoteRejectionError struct {
	Method  string
	URL     string
	Status  int
	Message string
}

func NewRemoteRejectionError(method, url string, status int, message string) *RemoteRejectionError {
	return &RemoteRejectionError{Method: method, URL: url, Status: status, Message: message}
}

func (e *RemoteRejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s %s responded %d", ErrRemoteRejection, e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s: %s %s responded %d: %s",
		ErrRemoteRejection, e.Method, e.URL, e.Status, sanitize(e.Message))
}

func (e *RemoteRejectionError) Unwrap() error {
	return ErrRemoteRejection
}

// SyncError is returned by a refresh whose fetch failed; the previous
// snapshot is still in place.
type SyncError struct {
	Cause error
}

func NewSyncError(cause error) *SyncError {
	return &SyncError{Cause: cause}
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s (cause: %v)", ErrSync, e.Cause)
}

func (e *SyncError) Unwrap() []error {
	return []error{ErrSync, e.Cause}
}

// IsValidation reports whether err carries a required or invalid value error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) || errors.Is(err, ErrValueIsInvalid)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
