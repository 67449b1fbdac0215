package template

import "fmt"

// TemplateNotValidError reports a template that cannot be loaded or used:
// a missing or malformed sidecar, a template that fails to parse, or output
// that is not a valid document.
type TemplateNotValidError struct {
	// Template is the template id, or the file path when the id is not known
	// yet.
	Template string

	// Message describes the problem.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *TemplateNotValidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %q is not valid: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template %q is not valid: %s", e.Template, e.Message)
}

// Unwrap implements the errors.Unwrap interface for error chain support.
func (e *TemplateNotValidError) Unwrap() error {
	return e.Cause
}

// UnknownTemplateError is returned when no template with the requested id is
// loaded. It unwraps to a *TemplateNotValidError so callers that only check
// for invalid templates also catch it.
type UnknownTemplateError struct {
	ID string
}

// Error implements the error interface.
func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("no template %q found", e.ID)
}

// Unwrap implements the errors.Unwrap interface for error chain support.
func (e *UnknownTemplateError) Unwrap() error {
	return &TemplateNotValidError{Template: e.ID, Message: "not loaded"}
}
