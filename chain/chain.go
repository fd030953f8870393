// Package chain provides a singly-linked list façade over weft arena nodes.
//
// A List does not own its nodes; it references nodes of an arena and wires
// their next links through the regular consistency engine. Chained nodes
// therefore obey all weft invariants: links are mutual, and chaining nodes
// which sit in a tree makes them siblings (parent propagation).
package chain

import (
	"iter"

	"github.com/npillmayer/weft"
)

// List is an ordered sequence of arena nodes plus an optional head node,
// chained via next links.
type List[T any] struct {
	arena    *weft.Arena[T]
	head     weft.Ref
	elements []weft.Ref
}

// New creates a list over arena, wiring the given elements into a chain.
// Every element must be a live node; validation precedes any linking.
func New[T any](arena *weft.Arena[T], elements ...weft.Ref) (*List[T], error) {
	l := &List[T]{arena: arena}
	if err := l.SetElements(elements); err != nil {
		return nil, err
	}
	return l, nil
}

// Len returns the number of elements (the head not counted).
func (l *List[T]) Len() int {
	return len(l.elements)
}

// Head returns the head node, or Absent.
func (l *List[T]) Head() weft.Ref {
	return l.head
}

// SetHead installs head (which may be Absent) and chains it to the first
// element, if any.
func (l *List[T]) SetHead(head weft.Ref) error {
	if !head.IsAbsent() && !l.arena.Valid(head) {
		return weft.ErrInvalidRelation
	}
	if !l.head.IsAbsent() {
		if err := l.arena.SetNext(l.head, weft.Absent); err != nil {
			return err
		}
	}
	l.head = head
	if !head.IsAbsent() && len(l.elements) > 0 {
		return l.arena.SetNext(head, l.elements[0])
	}
	return nil
}

// Elements returns a copy of the element sequence.
func (l *List[T]) Elements() []weft.Ref {
	return append([]weft.Ref(nil), l.elements...)
}

// SetElements replaces the element sequence. Old elements are unchained
// first, then consecutive new elements are linked via the engine, and the
// head (if present) is chained to the first element.
func (l *List[T]) SetElements(elements []weft.Ref) error {
	for _, el := range elements {
		if !l.arena.Valid(el) {
			return weft.ErrInvalidRelation
		}
	}
	for _, el := range l.elements {
		if err := l.arena.SetNext(el, weft.Absent); err != nil {
			return err
		}
	}
	if !l.head.IsAbsent() {
		if err := l.arena.SetNext(l.head, weft.Absent); err != nil {
			return err
		}
	}
	l.elements = append(l.elements[:0], elements...)
	for i := 0; i+1 < len(l.elements); i++ {
		if err := l.arena.SetNext(l.elements[i], l.elements[i+1]); err != nil {
			return err
		}
	}
	if !l.head.IsAbsent() && len(l.elements) > 0 {
		return l.arena.SetNext(l.head, l.elements[0])
	}
	return nil
}

// At returns the element at index i.
func (l *List[T]) At(i int) (weft.Ref, error) {
	if i < 0 || i >= len(l.elements) {
		return weft.Absent, ErrIndexOutOfBounds
	}
	return l.elements[i], nil
}

// SetAt replaces the element at index i and re-chains it to both neighbors.
func (l *List[T]) SetAt(i int, el weft.Ref) error {
	if i < 0 || i >= len(l.elements) {
		return ErrIndexOutOfBounds
	}
	if !l.arena.Valid(el) {
		return weft.ErrInvalidRelation
	}
	old := l.elements[i]
	if err := l.arena.SetNext(old, weft.Absent); err != nil {
		return err
	}
	if err := l.arena.SetPrevious(old, weft.Absent); err != nil {
		return err
	}
	l.elements[i] = el
	if i > 0 {
		if err := l.arena.SetNext(l.elements[i-1], el); err != nil {
			return err
		}
	} else if !l.head.IsAbsent() {
		if err := l.arena.SetNext(l.head, el); err != nil {
			return err
		}
	}
	if i+1 < len(l.elements) {
		return l.arena.SetNext(el, l.elements[i+1])
	}
	return nil
}

// Contains reports whether el is an element of the list (handle identity,
// the head not counted).
func (l *List[T]) Contains(el weft.Ref) bool {
	for _, e := range l.elements {
		if e == el {
			return true
		}
	}
	return false
}

// Concat creates a new list holding the receiver's head and the elements of
// both lists. Both lists must share one arena.
func (l *List[T]) Concat(other *List[T]) (*List[T], error) {
	if other == nil || other.arena != l.arena {
		return nil, ErrArenaMismatch
	}
	merged, err := New(l.arena, append(l.Elements(), other.Elements()...)...)
	if err != nil {
		return nil, err
	}
	if err := merged.SetHead(l.head); err != nil {
		return nil, err
	}
	return merged, nil
}

// Append extends the list in place with the elements of other, which must
// share the arena.
func (l *List[T]) Append(other *List[T]) error {
	if other == nil || other.arena != l.arena {
		return ErrArenaMismatch
	}
	return l.SetElements(append(l.Elements(), other.Elements()...))
}

// Range iterates over the elements in list order.
func (l *List[T]) Range() iter.Seq[weft.Ref] {
	return func(yield func(weft.Ref) bool) {
		for _, el := range l.elements {
			if !yield(el) {
				return
			}
		}
	}
}
