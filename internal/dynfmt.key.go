package internal

import "strconv"

// ArgumentKey identifies an argument either by position or by name.
// The zero value is the positional key 0.
type ArgumentKey struct {
	name  string
	index int
	named bool
}

// IndexKey returns the positional key for index.
func IndexKey(index int) ArgumentKey {
	return ArgumentKey{index: index}
}

// NameKey returns the named key for name.
func NameKey(name string) ArgumentKey {
	return ArgumentKey{name: name, named: true}
}

// IsNamed reports whether the key is a name rather than an index.
func (k ArgumentKey) IsNamed() bool {
	return k.named
}

// Index returns the position of a positional key, -1 for named keys.
func (k ArgumentKey) Index() int {
	if k.named {
		return -1
	}
	return k.index
}

// Name returns the name of a named key, "" for positional keys.
func (k ArgumentKey) Name() string {
	return k.name
}

func (k ArgumentKey) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}
