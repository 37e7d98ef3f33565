package errors

import (
	"fmt"
	"strings"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
)

// ErrorType categorizes the type of error encountered while preparing a
// contract for deployment.
type ErrorType string

const (
	ErrorTypeSyntax  ErrorType = "syntax"  // Source could not be parsed
	ErrorTypeCost    ErrorType = "cost"    // Operator or node kind could not be costed
	ErrorTypeLimit   ErrorType = "limit"   // Tree exceeds the configured size ceiling
	ErrorTypeIO      ErrorType = "io"      // File or stream I/O error
	ErrorTypeStorage ErrorType = "storage" // Audit record could not be persisted
)

// Error represents a rich contract-rejection error with location and an
// optional suggested fix. A contract that produces one of these is not
// deployable.
type Error struct {
	Type       ErrorType           // Category of error
	Message    string              // Error message
	Location   *ast.SourceLocation // Source location, when the parser provided one
	Suggestion string              // Suggested fix (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location))
	}
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// New creates a contract error with the given category and message.
func New(errType ErrorType, format string, args ...any) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorList accumulates multiple errors instead of failing on the first one,
// so a rejected contract reports every problem at once.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*Error, 0)}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message string, loc *ast.SourceLocation) {
	el.Add(&Error{Type: errType, Message: message, Location: loc})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// HasErrorType returns true if the list contains at least one error of the
// given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}

// Error implements the error interface, formatting every accumulated error.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n", el.Count()))
	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("\nerror %d:\n%s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
