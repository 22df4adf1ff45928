package errors

import (
	"errors"
	"fmt"
)

// ErrThemeNotFound is returned when a named theme is not part of a registry.
var ErrThemeNotFound = errors.New("theme not found")

// ParseError represents a theme document that could not be read or decoded.
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

// ValidationError captures theme document validation issues found at load time.
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

// ColorError reports a hex color value that is not exactly six hex digits.
type ColorError struct {
	Value   string
	Message string
}

// NewColorError constructs a ColorError for the offending raw value.
func NewColorError(value, message string) error {
	return &ColorError{Value: value, Message: message}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("color error: %q: %s", e.Value, e.Message)
}

// MissingSpecifierError reports a composite specifier absent from a theme and all of its ancestors.
type MissingSpecifierError struct {
	Theme string
	Key   string
	Kind  string
}

// NewMissingSpecifierError constructs a MissingSpecifierError.
func NewMissingSpecifierError(theme, key, kind string) error {
	return &MissingSpecifierError{Theme: theme, Key: key, Kind: kind}
}

func (e *MissingSpecifierError) Error() string {
	if e == nil {
		return ""
	}
	if e.Theme != "" {
		return fmt.Sprintf("missing %s specifier for key %q in theme %s", e.Kind, e.Key, e.Theme)
	}
	return fmt.Sprintf("missing %s specifier for key %q", e.Kind, e.Key)
}
