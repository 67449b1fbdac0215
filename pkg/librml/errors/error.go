package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes the errors of this package.
type ErrorType string

const (
	ErrorTypeUnknownKind  ErrorType = "unknown_kind"  // Enum lookup failed
	ErrorTypeTypeMismatch ErrorType = "type_mismatch" // Wrong element type in a typed list
	ErrorTypeNotValid     ErrorType = "not_valid"     // Structural validation failure
	ErrorTypeCoercion     ErrorType = "coercion"      // Value conversion failure
)

// KindFamily names the enumeration an UnknownKindError belongs to.
type KindFamily string

const (
	FamilyAction      KindFamily = "action"
	FamilyRestriction KindFamily = "restriction"
)

// UnknownKindError is returned when a name does not match any member of the
// action or restriction enumeration.
type UnknownKindError struct {
	Family     KindFamily // Enumeration that was searched
	Name       string     // Offending name
	Suggestion string     // Closest valid name (optional)
}

// NewUnknownKindError creates an UnknownKindError and fills in a suggestion
// computed against the valid member names.
func NewUnknownKindError(family KindFamily, name string, valid []string) *UnknownKindError {
	return &UnknownKindError{
		Family:     family,
		Name:       name,
		Suggestion: SuggestKind(strings.ToLower(name), valid),
	}
}

// Type returns ErrorTypeUnknownKind.
func (e *UnknownKindError) Type() ErrorType { return ErrorTypeUnknownKind }

func (e *UnknownKindError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] unknown %s type %q", e.Type(), e.Family, e.Name))
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}
	return sb.String()
}

// TypeMismatchError is returned when a typed list rejects an element.
type TypeMismatchError struct {
	Want string // Declared element type
	Got  string // Dynamic type of the rejected value
}

// Type returns ErrorTypeTypeMismatch.
func (e *TypeMismatchError) Type() ErrorType { return ErrorTypeTypeMismatch }

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("[%s] list of %s cannot hold %s", e.Type(), e.Want, e.Got)
}

// NotValidError is returned when a decoded document violates the structural
// rules of LibRML.
type NotValidError struct {
	Path    string // Location inside the document, e.g. "item.action[2]"
	Message string
}

// NewNotValidError creates a NotValidError for the given path.
func NewNotValidError(path, format string, args ...any) *NotValidError {
	return &NotValidError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// Type returns ErrorTypeNotValid.
func (e *NotValidError) Type() ErrorType { return ErrorTypeNotValid }

func (e *NotValidError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Type(), e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type(), e.Path, e.Message)
}

// CoercionError is returned when a field value cannot be converted to the
// type the model expects.
type CoercionError struct {
	Path  string // Location of the owning entity
	Field string // Field or attribute name
	Value any    // Raw value that failed to convert
	Cause error  // Underlying parse error (optional)
}

// Type returns ErrorTypeCoercion.
func (e *CoercionError) Type() ErrorType { return ErrorTypeCoercion }

func (e *CoercionError) Error() string {
	location := e.Field
	if e.Path != "" {
		location = e.Path + "." + e.Field
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: cannot convert %v: %v", e.Type(), location, e.Value, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: cannot convert %v (%T)", e.Type(), location, e.Value, e.Value)
}

// Unwrap implements the errors.Unwrap interface for error chain support.
func (e *CoercionError) Unwrap() error {
	return e.Cause
}
