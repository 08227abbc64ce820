package errors

import (
	"fmt"
)

// DecodeError represents a failure to decode a serialized design spec,
// with optional source path and line metadata.
type DecodeError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &DecodeError{Path: path, Line: line, Message: message, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("decode error: %s:%d: %s", e.Path, e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("decode error: %s: %s", e.Path, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("decode error: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures schema validation issues in a decoded spec.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EncodeError represents a failure while serializing a spec. Encoding a
// valid in-memory spec is expected never to fail; this surfaces only for
// programming-error-class conditions.
type EncodeError struct {
	Message string
	Err     error
}

// NewEncodeError constructs an EncodeError.
func NewEncodeError(err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &EncodeError{Message: message, Err: err}
}

func (e *EncodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
