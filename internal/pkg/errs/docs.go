// Package errs provides standardized error types for the order admin panel.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a wizard or edit field is blank
//   - ValueIsInvalidError: For when a value cannot be interpreted
//   - ObjectNotFoundError: For when an id is absent from the current snapshot
//   - NetworkError and RemoteRejectionError: For remote store failures
//   - SyncError: For a refresh that could not rebuild the snapshot
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// ErrNoActiveOrder and ErrUserDeclined are plain sentinels. ErrUserDeclined
// marks a confirmation that was refused and is never reported to the user.
package errs
