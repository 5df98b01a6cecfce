package internal

// Requirements maps every argument key referenced by a template to the union of
// forms the template requests for it. Keys keep discovery order.
type Requirements struct {
	keys  []ArgumentKey
	forms map[ArgumentKey]FormSet
}

// NewRequirements creates an empty requirement table.
func NewRequirements() *Requirements {
	return &Requirements{
		forms: make(map[ArgumentKey]FormSet),
	}
}

// AggregateRequirements walks pieces once and collects the requirement table.
// Dynamic width and precision references add FormAmount to the referenced key.
func AggregateRequirements(pieces []Piece) *Requirements {
	r := NewRequirements()
	for _, piece := range pieces {
		if piece.Type != PiecePlaceholder {
			continue
		}
		r.Add(piece.Key, piece.Form())
		if piece.Spec == nil {
			continue
		}
		if piece.Spec.Width.Dynamic {
			r.Add(piece.Spec.Width.Key, FormAmount)
		}
		if piece.Spec.Precision.Kind == PrecisionDynamic {
			r.Add(piece.Spec.Precision.Key, FormAmount)
		}
	}
	return r
}

// Add ORs form into the requirement of key.
func (r *Requirements) Add(key ArgumentKey, form Form) {
	current, ok := r.forms[key]
	if !ok {
		r.keys = append(r.keys, key)
	}
	r.forms[key] = current.With(form)
}

// Get returns the requirement of key.
func (r *Requirements) Get(key ArgumentKey) (FormSet, bool) {
	forms, ok := r.forms[key]
	return forms, ok
}

// Keys returns the keys in discovery order.
func (r *Requirements) Keys() []ArgumentKey {
	keys := make([]ArgumentKey, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of distinct keys.
func (r *Requirements) Len() int {
	return len(r.keys)
}
