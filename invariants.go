package weft

import "fmt"

// Check validates the structural invariants of the complete arena.
//
// This checker is intentionally strict and meant to be called from tests
// after scripted mutation sequences. It verifies, for every live node:
//
//   - all relation targets are absent or live handles,
//   - parent/child symmetry: the node is listed exactly once in its
//     parent's child sequence, and every child points back,
//   - unique membership: no node is listed under two parents or twice
//     under one,
//   - chain symmetry: next/previous links are mutual.
func (a *Arena[T]) Check() error {
	owner := make(map[Ref]Ref)
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		n := Ref{index: uint32(i) + 1, gen: s.gen}
		nd := &s.node
		for _, target := range []Ref{nd.parent, nd.prev, nd.next} {
			if !target.IsAbsent() && a.deref(target) == nil {
				return fmt.Errorf("%w: node %v holds stale handle %v", ErrInconsistent, n, target)
			}
		}
		seen := make(map[Ref]bool, len(nd.children))
		for _, c := range nd.children {
			cd := a.deref(c)
			if cd == nil {
				return fmt.Errorf("%w: node %v lists stale child %v", ErrInconsistent, n, c)
			}
			if seen[c] {
				return fmt.Errorf("%w: node %v lists child %v twice", ErrInconsistent, n, c)
			}
			seen[c] = true
			if p, dup := owner[c]; dup {
				return fmt.Errorf("%w: node %v listed under %v and %v", ErrInconsistent, c, p, n)
			}
			owner[c] = n
			if cd.parent != n {
				return fmt.Errorf("%w: child %v of %v points to parent %v", ErrInconsistent, c, n, cd.parent)
			}
		}
		if !nd.parent.IsAbsent() && a.childIndex(nd.parent, n) < 0 {
			return fmt.Errorf("%w: node %v missing from children of %v", ErrInconsistent, n, nd.parent)
		}
		if !nd.next.IsAbsent() {
			if sd := a.deref(nd.next); sd != nil && sd.prev != n {
				return fmt.Errorf("%w: chain asymmetry %v → %v", ErrInconsistent, n, nd.next)
			}
		}
		if !nd.prev.IsAbsent() {
			if pd := a.deref(nd.prev); pd != nil && pd.next != n {
				return fmt.Errorf("%w: chain asymmetry %v ← %v", ErrInconsistent, n, nd.prev)
			}
		}
	}
	return nil
}
