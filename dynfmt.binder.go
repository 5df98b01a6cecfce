package dynfmt

import (
	"io"
	"sort"

	"github.com/itsatony/go-dynfmt/internal"
	"go.uber.org/zap"
)

// Binder collects the arguments of one render of a Template.
// A Binder is not safe for concurrent use; create one per render.
type Binder struct {
	template *Template
	checked  bool
	bindings *internal.Bindings
	err      error
	logger   *zap.Logger
}

func newBinder(t *Template, checked bool) *Binder {
	logger := t.logger()
	logger.Debug(LogMsgBinderCreated, zap.Bool(LogFieldChecked, checked))
	return &Binder{
		template: t,
		checked:  checked,
		bindings: internal.NewBindings(t.reqs().Len()),
		logger:   logger,
	}
}

// Checked reports whether the binder validates bindings.
func (b *Binder) Checked() bool {
	return b.checked
}

// Add binds value to key. A checked binder requires key to be referenced by
// the template and value to support every form the template requests for it;
// the value is bound through the smallest capability bundle that covers the
// request. Forms already bound for key are rejected as duplicates and leave the
// existing bindings untouched. An unchecked binder behaves like AddUnchecked.
func (b *Binder) Add(key Key, value any) error {
	if !b.checked {
		b.AddUnchecked(key, value)
		return nil
	}

	required, ok := b.template.reqs().Get(key)
	if !ok {
		return b.reject(internal.NewArgumentNotFoundError(key))
	}

	offered := internal.OfferedForms(value)
	bundles, ok := internal.CoverRequirement(required, offered)
	if !ok {
		return b.reject(internal.NewCapabilityMismatchError(key, required, offered))
	}

	if bound := b.bindings.BoundForms(key); bound.Overlaps(required) {
		return b.reject(internal.NewDuplicateArgumentError(key, bound))
	}

	for _, bundle := range bundles {
		b.bindings.Append(internal.BoundValue{
			Key:    key,
			Value:  value,
			Forms:  bundle.Forms(),
			Bundle: bundle,
		})
		b.logger.Debug(LogMsgBindAdded,
			zap.Stringer(LogFieldKey, key),
			zap.Stringer(LogFieldBundle, bundle))
	}
	return nil
}

// AddForm binds value to key for a single form. The form need not be one the
// template requests, but a checked binder still requires the key to be
// referenced and the value to support the form.
func (b *Binder) AddForm(key Key, form Form, value any) error {
	if !validForm(form) {
		return NewInvalidFormError(form)
	}

	offered := internal.OfferedForms(value)
	forms := internal.NewFormSet(form)
	bundle, ok := internal.SelectBundle(forms, forms)
	if !ok {
		return NewInvalidFormError(form)
	}

	if b.checked {
		if _, ok := b.template.reqs().Get(key); !ok {
			return b.reject(internal.NewArgumentNotFoundError(key))
		}
		if !offered.Has(form) {
			return b.reject(internal.NewCapabilityMismatchError(key, forms, offered))
		}
		if bound := b.bindings.BoundForms(key); bound.Has(form) {
			return b.reject(internal.NewDuplicateArgumentError(key, bound))
		}
	}

	b.bindings.Append(internal.BoundValue{
		Key:    key,
		Value:  value,
		Forms:  forms,
		Bundle: bundle,
	})
	b.logger.Debug(LogMsgBindAdded,
		zap.Stringer(LogFieldKey, key),
		zap.Stringer(LogFieldBundle, bundle))
	return nil
}

// AddUnchecked binds value to key without validation. The value is tagged
// with every form its type offers; when a key is bound more than once, the
// first binding serving a form wins.
func (b *Binder) AddUnchecked(key Key, value any) {
	offered := internal.OfferedForms(value)
	b.bindings.Append(internal.BoundValue{
		Key:    key,
		Value:  value,
		Forms:  offered,
		Bundle: internal.BundleOffered,
	})
	b.logger.Debug(LogMsgBindUnchecked,
		zap.Stringer(LogFieldKey, key),
		zap.Stringer(LogFieldForms, offered))
}

// Arg binds value to the positional key index and returns the binder for
// chaining. The first failure is kept and reported by Err and Render.
func (b *Binder) Arg(index int, value any) *Binder {
	return b.chain(Index(index), value)
}

// Named binds value to the named key and returns the binder for chaining.
func (b *Binder) Named(name string, value any) *Binder {
	return b.chain(Name(name), value)
}

// Err returns the first error recorded by Arg or Named.
func (b *Binder) Err() error {
	return b.err
}

// Positional binds values to the keys 0..len(values)-1 and stops at the first error.
func (b *Binder) Positional(values ...any) error {
	for i, value := range values {
		if err := b.Add(Index(i), value); err != nil {
			return err
		}
	}
	return nil
}

// NamedMap binds values by name in sorted key order and stops at the first error.
func (b *Binder) NamedMap(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := b.Add(Name(name), values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Render renders the template with the bound arguments.
func (b *Binder) Render() (string, error) {
	if b.err != nil {
		return StrEmpty, b.err
	}
	out, err := b.template.owner().renderer.Render(b.template.pieces, b.bindings)
	if err != nil {
		return StrEmpty, NewRenderError(err)
	}
	return out, nil
}

// RenderTo writes the rendered template to w piece by piece and returns the
// number of bytes written. A failing writer aborts the render with ErrWriter.
func (b *Binder) RenderTo(w io.Writer) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	n, err := b.template.owner().renderer.RenderTo(w, b.template.pieces, b.bindings)
	if err != nil {
		return n, NewRenderError(err)
	}
	return n, nil
}

// MustRender renders the template and panics on error.
func (b *Binder) MustRender() string {
	out, err := b.Render()
	if err != nil {
		panic(err)
	}
	return out
}

func (b *Binder) chain(key Key, value any) *Binder {
	if b.err != nil {
		return b
	}
	if err := b.Add(key, value); err != nil {
		b.err = err
	}
	return b
}

func (b *Binder) reject(cause error) error {
	b.logger.Debug(LogMsgBindRejected, zap.Error(cause))
	return NewBindError(cause)
}
