package dynfmt

import "github.com/itsatony/go-dynfmt/internal"

// Key identifies an argument: a positional index or a name. Keys are
// comparable and can be used as map keys.
type Key = internal.ArgumentKey

// Index returns the key of the positional argument n.
func Index(n int) Key {
	return internal.IndexKey(n)
}

// Name returns the key of a named argument.
func Name(name string) Key {
	return internal.NameKey(name)
}

// Form is the rendering mode a placeholder requests.
type Form = internal.Form

// Forms of the placeholder grammar
const (
	FormDisplay  = internal.FormDisplay
	FormDebug    = internal.FormDebug
	FormBinary   = internal.FormBinary
	FormOctal    = internal.FormOctal
	FormLowerHex = internal.FormLowerHex
	FormUpperHex = internal.FormUpperHex
	FormLowerExp = internal.FormLowerExp
	FormUpperExp = internal.FormUpperExp
	FormPointer  = internal.FormPointer
	// FormAmount is requested from keys used as a dynamic width or precision.
	FormAmount = internal.FormAmount
)

// FormSet is a set of forms, used for template requirements.
type FormSet = internal.FormSet

// NewFormSet creates a set holding forms.
func NewFormSet(forms ...Form) FormSet {
	return internal.NewFormSet(forms...)
}

// OfferedForms returns the forms value can be rendered through when bound.
func OfferedForms(value any) FormSet {
	return internal.OfferedForms(value)
}

func validForm(form Form) bool {
	return form <= FormAmount
}
