package dynfmt

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-dynfmt/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgParseFailed  = "template parsing failed"
	ErrMsgBindFailed   = "argument binding failed"
	ErrMsgRenderFailed = "template rendering failed"
	ErrMsgWriteFailed  = "writing rendered output failed"
	ErrMsgInvalidForm  = "unknown form"
)

// Error code constants for categorization
const (
	ErrCodeParse  = "DYNFMT_PARSE"
	ErrCodeBind   = "DYNFMT_BIND"
	ErrCodeRender = "DYNFMT_RENDER"
	ErrCodeWrite  = "DYNFMT_WRITE"
)

// Error classes. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	// ErrUnexpectedToken reports a malformed template.
	ErrUnexpectedToken = internal.ErrUnexpectedToken
	// ErrArgumentNotFound reports a key the template does not reference, or a
	// referenced key with nothing bound at render time.
	ErrArgumentNotFound = internal.ErrArgumentNotFound
	// ErrDuplicateArgument reports a second binding for forms already bound.
	ErrDuplicateArgument = internal.ErrDuplicateArgument
	// ErrCapabilityMismatch reports a value that cannot be rendered in a required form.
	ErrCapabilityMismatch = internal.ErrCapabilityMismatch
	// ErrWriter reports a failure of the output writer.
	ErrWriter = internal.ErrWriter
)

// NewParseError wraps a parser failure with its source position.
func NewParseError(cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgParseFailed)
	var syntaxErr *internal.SyntaxError
	if errors.As(cause, &syntaxErr) {
		pos := syntaxErr.Position
		err = err.
			WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
			WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
			WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset)).
			WithMetadata(MetaKeyReason, syntaxErr.Message)
	}
	return err
}

// NewBindError wraps a rejected binding with the argument it concerns.
func NewBindError(cause error) error {
	return withArgumentMetadata(cuserr.WrapStdError(cause, ErrCodeBind, ErrMsgBindFailed), cause)
}

// NewRenderError wraps a render failure. Writer failures get their own code.
func NewRenderError(cause error) error {
	var writeErr *internal.WriteError
	if errors.As(cause, &writeErr) {
		return cuserr.WrapStdError(cause, ErrCodeWrite, ErrMsgWriteFailed)
	}
	return withArgumentMetadata(cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed), cause)
}

// NewInvalidFormError creates an error for a form outside the closed form set.
func NewInvalidFormError(form Form) error {
	return cuserr.WrapStdError(ErrCapabilityMismatch, ErrCodeBind, ErrMsgInvalidForm).
		WithMetadata(MetaKeyForm, strconv.Itoa(int(form)))
}

func withArgumentMetadata(err *cuserr.CustomError, cause error) error {
	var argErr *internal.ArgumentError
	if !errors.As(cause, &argErr) {
		return err
	}
	err = err.WithMetadata(MetaKeyKey, argErr.Key.String())
	if argErr.HasForm {
		err = err.WithMetadata(MetaKeyForm, argErr.Form.String())
	}
	if !argErr.Required.IsEmpty() {
		err = err.WithMetadata(MetaKeyRequired, argErr.Required.String())
	}
	if !argErr.Offered.IsEmpty() {
		err = err.WithMetadata(MetaKeyOffered, argErr.Offered.String())
	}
	return err
}
