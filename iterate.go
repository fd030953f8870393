package weft

import "iter"

// RangeChildren returns an iterator over the children of n, in child order.
// An invalid handle yields nothing. The child sequence is copied up front,
// so the arena may be mutated while iterating.
func (a *Arena[T]) RangeChildren(n Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		nd := a.deref(n)
		if nd == nil {
			return
		}
		for _, c := range append([]Ref(nil), nd.children...) {
			if !yield(c) {
				return
			}
		}
	}
}

// RangeChain returns an iterator following next links, starting at n
// inclusive. The walk stops at the end of the chain, when a cycle closes, or
// after as many steps as there are live nodes.
func (a *Arena[T]) RangeChain(n Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		cur := n
		for steps := a.Len(); steps > 0; steps-- {
			nd := a.deref(cur)
			if nd == nil {
				return
			}
			if !yield(cur) {
				return
			}
			cur = nd.next
			if cur.IsAbsent() || cur == n {
				return
			}
		}
	}
}
