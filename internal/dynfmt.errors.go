package internal

import (
	"errors"
	"fmt"
)

// Error classes. Every error produced by this package unwraps to one of them.
var (
	ErrUnexpectedToken    = errors.New(ErrMsgUnexpectedToken)
	ErrArgumentNotFound   = errors.New(ErrMsgArgumentNotFound)
	ErrDuplicateArgument  = errors.New(ErrMsgDuplicateArgument)
	ErrCapabilityMismatch = errors.New(ErrMsgCapabilityMismatch)
	ErrWriter             = errors.New(ErrMsgWriterFailed)
)

// SyntaxError represents a malformed template with the position of the offending token.
type SyntaxError struct {
	Message  string
	Position Position
}

// newSyntaxError creates a syntax error at a byte offset; the line and column are
// filled in by the parser once the offset is relative to the whole source.
func newSyntaxError(message string, offset int) *SyntaxError {
	return &SyntaxError{
		Message:  message,
		Position: Position{Offset: offset},
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position.String())
}

// Unwrap classifies every syntax error as an unexpected token.
func (e *SyntaxError) Unwrap() error {
	return ErrUnexpectedToken
}

// ArgumentError reports a binding or lookup failure for one argument key.
type ArgumentError struct {
	Kind     error
	Key      ArgumentKey
	Form     Form
	HasForm  bool
	Required FormSet
	Offered  FormSet
}

// NewArgumentNotFoundError reports a key the template or binder does not know.
func NewArgumentNotFoundError(key ArgumentKey) *ArgumentError {
	return &ArgumentError{Kind: ErrArgumentNotFound, Key: key}
}

// NewDuplicateArgumentError reports forms bound twice for the same key.
func NewDuplicateArgumentError(key ArgumentKey, forms FormSet) *ArgumentError {
	return &ArgumentError{Kind: ErrDuplicateArgument, Key: key, Required: forms}
}

// NewCapabilityMismatchError reports a value that cannot serve the required forms.
func NewCapabilityMismatchError(key ArgumentKey, required, offered FormSet) *ArgumentError {
	return &ArgumentError{Kind: ErrCapabilityMismatch, Key: key, Required: required, Offered: offered}
}

// NewFormNotBoundError reports a bound key with no binding for the requested form.
func NewFormNotBoundError(key ArgumentKey, form Form, offered FormSet) *ArgumentError {
	return &ArgumentError{
		Kind:     ErrCapabilityMismatch,
		Key:      key,
		Form:     form,
		HasForm:  true,
		Required: NewFormSet(form),
		Offered:  offered,
	}
}

func (e *ArgumentError) Error() string {
	if e.HasForm {
		return fmt.Sprintf(ErrFmtArgumentForm, e.Kind, e.Key, e.Form)
	}
	return fmt.Sprintf(ErrFmtArgument, e.Kind, e.Key)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// WriteError wraps a failure of the output sink.
type WriteError struct {
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf(ErrFmtWithCause, ErrMsgWriterFailed, e.Cause)
}

// Unwrap exposes both the writer error class and the sink's own error.
func (e *WriteError) Unwrap() []error {
	return []error{ErrWriter, e.Cause}
}
