package defcomp

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition matches every *InvalidDefinitionError with errors.Is.
var ErrInvalidDefinition = errors.New("defcomp: invalid component definition")

// Error codes, registered in the CLI diagnostics.
const (
	CodeMissingDefinition = "D001"
	CodeMissingRender     = "D002"
	CodeBadLifecycle      = "D003"
	CodeBadSetup          = "D004"
	CodeBadNextState      = "D005"
	CodeUnbindable        = "D006"
	CodeNotCacheable      = "D007"
)

// InvalidDefinitionError reports a malformed definition. Property names the
// offending property when there is one.
type InvalidDefinitionError struct {
	Code     string
	Property string
	Message  string
}

func (e *InvalidDefinitionError) Error() string {
	return "defcomp: " + e.Message
}

// Is makes errors.Is(err, ErrInvalidDefinition) hold.
func (e *InvalidDefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// ErrorCode returns the diagnostic code.
func (e *InvalidDefinitionError) ErrorCode() string { return e.Code }

// ErrorProperty returns the offending property.
func (e *InvalidDefinitionError) ErrorProperty() string { return e.Property }

func invalid(code, property, format string, args ...any) *InvalidDefinitionError {
	return &InvalidDefinitionError{
		Code:     code,
		Property: property,
		Message:  fmt.Sprintf(format, args...),
	}
}
