// Package bag provides an opaque payload container for weft nodes: an
// ordered sequence of positional entries combined with named entries.
//
// The container does double duty as the node payload of choice for clients
// coming from dynamically typed structures: values are untyped, lookup works
// positionally or by name, and a materialized view merges both kinds of
// entries into one mapping (with the positional index as key). weft itself
// never inspects bag contents.
package bag

import (
	"iter"
	"reflect"
	"sort"
)

// Bag holds positional and named entries. The zero Bag and the nil *Bag are
// valid, empty containers for read access; mutation needs a non-nil bag.
type Bag struct {
	positional []any
	named      map[string]any
}

// New creates a bag from positional values.
func New(positional ...any) *Bag {
	return &Bag{positional: positional}
}

// Len returns the total number of entries, positional plus named.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.positional) + len(b.named)
}

// IsEmpty reports whether the bag holds no entries.
func (b *Bag) IsEmpty() bool {
	return b.Len() == 0
}

// At returns the positional entry at index i.
func (b *Bag) At(i int) (any, error) {
	if b == nil || i < 0 || i >= len(b.positional) {
		return nil, ErrIndexOutOfBounds
	}
	return b.positional[i], nil
}

// SetAt updates the positional entry at index i in place.
func (b *Bag) SetAt(i int, value any) error {
	if b == nil || i < 0 || i >= len(b.positional) {
		return ErrIndexOutOfBounds
	}
	b.positional[i] = value
	return nil
}

// Append adds values at the end of the positional entries.
func (b *Bag) Append(values ...any) {
	b.positional = append(b.positional, values...)
}

// Named returns the entry stored under name.
func (b *Bag) Named(name string) (any, bool) {
	if b == nil {
		return nil, false
	}
	value, ok := b.named[name]
	return value, ok
}

// SetNamed stores value under name, replacing an existing entry.
func (b *Bag) SetNamed(name string, value any) {
	if b.named == nil {
		b.named = make(map[string]any)
	}
	b.named[name] = value
}

// WithNamed stores value under name and returns the bag, for chained
// construction: bag.New(1, 2).WithNamed("mode", "fast").
func (b *Bag) WithNamed(name string, value any) *Bag {
	b.SetNamed(name, value)
	return b
}

// Contains reports whether any entry, positional or named, deep-equals
// value.
func (b *Bag) Contains(value any) bool {
	if b == nil {
		return false
	}
	for _, v := range b.positional {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}
	for _, v := range b.named {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}
	return false
}

// View materializes the merged mapping of all entries: positional entries
// keyed by their index (int), named entries by their name (string).
func (b *Bag) View() map[any]any {
	view := make(map[any]any, b.Len())
	if b == nil {
		return view
	}
	for i, v := range b.positional {
		view[i] = v
	}
	for name, v := range b.named {
		view[name] = v
	}
	return view
}

// Range iterates over all entries, positional entries first (by index),
// named entries after (sorted by name, for deterministic iteration).
func (b *Bag) Range() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if b == nil {
			return
		}
		for i, v := range b.positional {
			if !yield(i, v) {
				return
			}
		}
		names := make([]string, 0, len(b.named))
		for name := range b.named {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !yield(name, b.named[name]) {
				return
			}
		}
	}
}

// Merge combines two bags into a new one: positional entries concatenated,
// named entries merged with entries of other winning on collision. Neither
// receiver nor argument are modified; both may be nil.
func (b *Bag) Merge(other *Bag) *Bag {
	merged := &Bag{}
	if b != nil {
		merged.positional = append(merged.positional, b.positional...)
		for name, v := range b.named {
			merged.SetNamed(name, v)
		}
	}
	if other != nil {
		merged.positional = append(merged.positional, other.positional...)
		for name, v := range other.named {
			merged.SetNamed(name, v)
		}
	}
	return merged
}

// Equal compares the merged views of two bags, deep-comparing values. A
// positional entry equals a named one only if their keys coincide, which
// cannot happen (int vs. string keys).
func (b *Bag) Equal(other *Bag) bool {
	return reflect.DeepEqual(b.View(), other.View())
}
