// Package errors provides standardized error handling for the dired
// application. It defines the error kinds raised by directory listing, file
// operations and rename commits, plus helpers for consistent creation,
// wrapping and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Filesystem error kinds
	NotFound
	NotADirectory
	PermissionDenied
	AlreadyExists
	OperationFailed
	// Rename-commit error kinds
	LineCountMismatch
	DuplicateName
	// Config error kinds
	InvalidConfig
)

// BrowseError is the error type for filesystem and rename-commit failures.
// It carries the path (or name) the failure relates to so callers can build
// a user-facing message without re-deriving context.
type BrowseError struct {
	msg  string
	path string
	kind ErrorKind
	err  error
}

// New creates a new BrowseError.
func New(msg, path string, kind ErrorKind, err error) *BrowseError {
	return &BrowseError{
		msg:  msg,
		path: path,
		kind: kind,
		err:  err,
	}
}

// Newf creates a new BrowseError with a formatted message and no path.
func Newf(kind ErrorKind, format string, args ...interface{}) *BrowseError {
	return &BrowseError{
		msg:  fmt.Sprintf(format, args...),
		kind: kind,
	}
}

// Error returns the error message
func (e *BrowseError) Error() string {
	switch {
	case e.path != "" && e.err != nil:
		return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
	case e.path != "":
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *BrowseError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *BrowseError) Kind() ErrorKind {
	return e.kind
}

// Path returns the path associated with the error
func (e *BrowseError) Path() string {
	return e.path
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &BrowseError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &BrowseError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of err, or Unknown if err is not a BrowseError.
func KindOf(err error) ErrorKind {
	var be *BrowseError
	if errors.As(err, &be) {
		return be.Kind()
	}
	return Unknown
}

// IsNotFound checks if the error indicates a missing file or directory
func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

// IsNotADirectory checks if the error indicates a non-directory path
func IsNotADirectory(err error) bool {
	return KindOf(err) == NotADirectory
}

// IsPermissionDenied checks if the error indicates denied access
func IsPermissionDenied(err error) bool {
	return KindOf(err) == PermissionDenied
}

// IsAlreadyExists checks if the error indicates an existing target path
func IsAlreadyExists(err error) bool {
	return KindOf(err) == AlreadyExists
}

// IsLineCountMismatch checks if the error indicates added or removed lines
// in a rename-commit buffer
func IsLineCountMismatch(err error) bool {
	return KindOf(err) == LineCountMismatch
}

// IsDuplicateName checks if the error indicates duplicate resulting names
// in a rename-commit buffer
func IsDuplicateName(err error) bool {
	return KindOf(err) == DuplicateName
}
