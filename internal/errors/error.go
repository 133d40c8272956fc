package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryUsage     Category = "usage"
	CategoryStructure Category = "structure"
	CategoryIdentity  Category = "identity"
	CategoryConfig    Category = "config"
	CategoryProtocol  Category = "protocol"
	CategoryCLI       Category = "cli"
)

// LoomError is a structured error with a stable code, category, and
// optional fix suggestion.
type LoomError struct {
	// Code is a unique error identifier (e.g., "E200").
	Code string

	// Category is the error type (usage, structure, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LoomError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LoomError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *LoomError) WithDetail(format string, args ...any) *LoomError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LoomError) WithSuggestion(s string) *LoomError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *LoomError) Wrap(err error) *LoomError {
	e.Wrapped = err
	return e
}

// New creates a LoomError from a registered error code.
func New(code string) *LoomError {
	template, ok := registry[code]
	if !ok {
		return &LoomError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LoomError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new LoomError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LoomError {
	return &LoomError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LoomError.
func FromError(err error, code string) *LoomError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LoomError); ok {
		return le
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is a LoomError carrying the given code.
func HasCode(err error, code string) bool {
	le, ok := err.(*LoomError)
	return ok && le.Code == code
}
