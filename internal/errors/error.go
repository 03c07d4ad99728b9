package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryDefinition Category = "definition"
	CategoryRender     Category = "render"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// KitError is a structured error with a code, the offending property and a
// suggested fix.
type KitError struct {
	// Code is a unique error identifier (e.g., "D001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Property names the definition property or config field at fault.
	Property string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *KitError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *KitError) Unwrap() error {
	return e.Wrapped
}

// WithProperty records the offending property.
func (e *KitError) WithProperty(name string) *KitError {
	e.Property = name
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *KitError) WithSuggestion(s string) *KitError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *KitError) WithDetail(d string) *KitError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *KitError) Wrap(err error) *KitError {
	e.Wrapped = err
	return e
}

// New creates a KitError from a registered error code.
func New(code string) *KitError {
	template, ok := registry[code]
	if !ok {
		return &KitError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &KitError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a KitError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *KitError {
	return &KitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Coded is implemented by errors that carry a registered code and the
// property at fault.
type Coded interface {
	error
	ErrorCode() string
	ErrorProperty() string
}

// FromError converts err to a KitError. Errors that carry a code keep it;
// anything else is wrapped under fallback.
func FromError(err error, fallback string) *KitError {
	if err == nil {
		return nil
	}
	var ke *KitError
	if stderrors.As(err, &ke) {
		return ke
	}
	var coded Coded
	if stderrors.As(err, &coded) {
		return New(coded.ErrorCode()).WithProperty(coded.ErrorProperty()).Wrap(err)
	}
	return New(fallback).Wrap(err)
}
