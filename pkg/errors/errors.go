package errors

import (
	"fmt"
)

// ParseError represents a settings-file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures settings validation issues.
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

// CorruptError reports a theme override source that does not follow the
// name=value schema. Line is 1-based; Path is empty for in-memory sources.
type CorruptError struct {
	Path   string
	Line   int
	Field  string
	Reason string
	Err    error
}

// NewCorruptError constructs a CorruptError.
func NewCorruptError(line int, field, reason string, err error) error {
	return &CorruptError{Line: line, Field: field, Reason: reason, Err: err}
}

func (e *CorruptError) Error() string {
	if e == nil {
		return ""
	}

	location := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		location = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Field != "" {
		return fmt.Sprintf("corrupt theme: %s: %s: %s", location, e.Field, e.Reason)
	}
	return fmt.Sprintf("corrupt theme: %s: %s", location, e.Reason)
}

// Unwrap exposes the underlying error.
func (e *CorruptError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
