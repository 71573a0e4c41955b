// Package errors provides error types and error codes for extended attribute
// access. This is a leaf package with no internal dependencies, designed to be
// imported by the codecs, the attribute stores and the accessor without
// causing circular imports.
//
// Import graph: errors <- gfid/xtime/store <- georep
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrAttributeUnavailable indicates the named attribute does not exist
	// on the path, or the path itself does not exist.
	ErrAttributeUnavailable ErrorCode = iota + 1

	// ErrMalformedIdentifier indicates identifier text is not a valid
	// hyphenated UUID, or stored identifier bytes are not exactly 16 long.
	ErrMalformedIdentifier

	// ErrWriteFailure indicates the store rejected a write for a reason not
	// covered by a more specific code.
	ErrWriteFailure

	// ErrNotSupported indicates the filesystem or platform has no extended
	// attribute support.
	ErrNotSupported

	// ErrPermissionDenied indicates the caller may not access the attribute
	// (trusted.* requires CAP_SYS_ADMIN on Linux).
	ErrPermissionDenied

	// ErrReadOnly indicates a write on a read-only filesystem.
	ErrReadOnly

	// ErrNoSpace indicates no space or quota left for the attribute.
	ErrNoSpace

	// ErrIOError indicates a read failed for a reason not covered by a more
	// specific code.
	ErrIOError

	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrAttributeUnavailable:
		return "AttributeUnavailable"
	case ErrMalformedIdentifier:
		return "MalformedIdentifier"
	case ErrWriteFailure:
		return "WriteFailure"
	case ErrNotSupported:
		return "NotSupported"
	case ErrPermissionDenied:
		return "PermissionDenied"
	case ErrReadOnly:
		return "ReadOnly"
	case ErrNoSpace:
		return "NoSpace"
	case ErrIOError:
		return "IOError"
	case ErrInvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// AttrError represents an attribute access or codec error with an error code.
type AttrError struct {
	Code    ErrorCode
	Message string
	Path    string
	Name    string

	// Err is the underlying cause (usually a syscall.Errno), if any.
	Err error
}

// Error implements the error interface.
func (e *AttrError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Name != "" {
		msg += fmt.Sprintf(" (name: %s)", e.Name)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *AttrError) Unwrap() error {
	return e.Err
}

// ============================================================================
// Factory Functions
// ============================================================================

// NewUnavailableError creates an AttributeUnavailable error.
func NewUnavailableError(path, name string, cause error) *AttrError {
	return &AttrError{
		Code:    ErrAttributeUnavailable,
		Message: "attribute not available",
		Path:    path,
		Name:    name,
		Err:     cause,
	}
}

// NewMalformedIdentifierError creates a MalformedIdentifier error.
func NewMalformedIdentifierError(message string, cause error) *AttrError {
	return &AttrError{
		Code:    ErrMalformedIdentifier,
		Message: message,
		Err:     cause,
	}
}

// NewWriteFailureError creates a WriteFailure error.
func NewWriteFailureError(path, name string, cause error) *AttrError {
	return &AttrError{
		Code:    ErrWriteFailure,
		Message: "failed to write attribute",
		Path:    path,
		Name:    name,
		Err:     cause,
	}
}

// NewNotSupportedError creates a NotSupported error.
func NewNotSupportedError(path string, cause error) *AttrError {
	return &AttrError{
		Code:    ErrNotSupported,
		Message: "extended attributes not supported",
		Path:    path,
		Err:     cause,
	}
}

// NewInvalidArgumentError creates an InvalidArgument error.
func NewInvalidArgumentError(message string) *AttrError {
	return &AttrError{
		Code:    ErrInvalidArgument,
		Message: message,
	}
}

// ============================================================================
// Classification
// ============================================================================

// CodeOf returns the ErrorCode carried by err, or 0 if err is not an AttrError.
func CodeOf(err error) ErrorCode {
	var attrErr *AttrError
	if stderrors.As(err, &attrErr) {
		return attrErr.Code
	}
	return 0
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// IsUnavailable reports whether err means the attribute could not be found,
// either because it, its path, or xattr support itself is missing.
func IsUnavailable(err error) bool {
	code := CodeOf(err)
	return code == ErrAttributeUnavailable || code == ErrNotSupported
}

// IsMalformed reports whether err is a MalformedIdentifier error.
func IsMalformed(err error) bool {
	return IsCode(err, ErrMalformedIdentifier)
}
