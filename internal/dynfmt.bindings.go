package internal

// BoundValue is one value bound to a key, tagged with the forms it may be
// rendered through.
type BoundValue struct {
	Key    ArgumentKey
	Value  any
	Forms  FormSet
	Bundle Bundle
}

// Bindings is the ordered binding list of one render. Lookups scan in insertion
// order, so the first binding serving a (key, form) pair wins.
type Bindings struct {
	values []BoundValue
}

// NewBindings creates an empty binding list.
func NewBindings(capacity int) *Bindings {
	return &Bindings{values: make([]BoundValue, 0, capacity)}
}

// Append adds a binding without any checks.
func (b *Bindings) Append(v BoundValue) {
	b.values = append(b.values, v)
}

// BoundForms returns the union of forms bound for key.
func (b *Bindings) BoundForms(key ArgumentKey) FormSet {
	var forms FormSet
	for _, v := range b.values {
		if v.Key == key {
			forms |= v.Forms
		}
	}
	return forms
}

// Lookup returns the value bound for key that serves form.
func (b *Bindings) Lookup(key ArgumentKey, form Form) (any, error) {
	found := false
	var offered FormSet
	for _, v := range b.values {
		if v.Key != key {
			continue
		}
		if v.Forms.Has(form) {
			return v.Value, nil
		}
		found = true
		offered |= v.Forms
	}
	if !found {
		return nil, NewArgumentNotFoundError(key)
	}
	return nil, NewFormNotBoundError(key, form, offered)
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	return len(b.values)
}

// Values returns a copy of the bindings in insertion order.
func (b *Bindings) Values() []BoundValue {
	values := make([]BoundValue, len(b.values))
	copy(values, b.values)
	return values
}
