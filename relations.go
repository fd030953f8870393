package weft

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// This file is the relation consistency engine. The four public setters
// validate their arguments and delegate to one reconcile routine each. The
// reconcile routines run in a fixed order (membership detach, back-reference
// store, membership attach, chain splice, parent propagation) instead of the
// classic mutually recursive setter formulation, so that termination does not
// hinge on re-entrancy guards.
//
// Membership is exclusive: a node is listed under at most one parent, and a
// chain link is mutual or not present at all. Re-wiring a relation splices
// the node out of the conflicting old relation first.

// SetParent assigns parent as the parent of n. parent may be Absent, which
// detaches n from its current parent.
//
// When n was not already a child of parent, it is appended to parent's child
// sequence and chained to the former last child (n.Previous becomes that
// child, or Absent if parent had no children). Re-assigning an existing link
// is a no-op: it neither duplicates the membership nor alters n's chain.
func (a *Arena[T]) SetParent(n, parent Ref) error {
	if _, err := a.lookup(n); err != nil {
		return err
	}
	if err := a.checkTarget(parent); err != nil {
		return err
	}
	a.setParent(n, parent)
	a.notify(Event{Op: OpParent, Node: n, Target: parent})
	return nil
}

// SetChildren replaces the child sequence of n. Every element must be a live
// node; validation of the complete sequence precedes any mutation. The old
// children are detached, then each element is re-bound to n via the regular
// parent reconcile. Duplicate mentions of a node are dropped, keeping the
// first position (membership is unique).
func (a *Arena[T]) SetChildren(n Ref, children []Ref) error {
	if _, err := a.lookup(n); err != nil {
		return err
	}
	for _, child := range children {
		if _, err := a.lookup(child); err != nil {
			return err
		}
	}
	a.setChildren(n, children)
	a.notify(Event{Op: OpChildren, Node: n})
	return nil
}

// SetPrevious assigns prev as the chain predecessor of n. prev may be
// Absent, which unlinks n from its current predecessor.
//
// If the link was not already mutual, it is made mutual (prev.Next becomes
// n) and n adopts prev's parent, inserted into the child sequence
// immediately after prev if prev is a sibling, appended otherwise.
func (a *Arena[T]) SetPrevious(n, prev Ref) error {
	if _, err := a.lookup(n); err != nil {
		return err
	}
	if err := a.checkTarget(prev); err != nil {
		return err
	}
	a.setPrevious(n, prev)
	a.notify(Event{Op: OpPrevious, Node: n, Target: prev})
	return nil
}

// SetNext assigns next as the chain successor of n. next may be Absent,
// which unlinks n from its current successor.
//
// If the link was not already mutual, it is made mutual (next.Previous
// becomes n) and next, the newly attached successor, adopts n's parent,
// inserted immediately after n if n is a sibling, appended otherwise.
func (a *Arena[T]) SetNext(n, next Ref) error {
	if _, err := a.lookup(n); err != nil {
		return err
	}
	if err := a.checkTarget(next); err != nil {
		return err
	}
	a.setNext(n, next)
	a.notify(Event{Op: OpNext, Node: n, Target: next})
	return nil
}

// --- Reconcile routines ----------------------------------------------------
//
// All arguments are pre-validated; the routines cannot fail.

// setParent reconciles the parent relation of n.
func (a *Arena[T]) setParent(n, parent Ref) {
	nd := a.deref(n)
	if nd.parent == parent && (parent.IsAbsent() || a.childIndex(parent, n) >= 0) {
		return // already linked
	}
	if !nd.parent.IsAbsent() && nd.parent != parent {
		a.removeChild(nd.parent, n)
	}
	nd.parent = parent
	if parent.IsAbsent() {
		return
	}
	if a.childIndex(parent, n) >= 0 {
		return // membership kept; position and chain untouched
	}
	pd := a.deref(parent)
	var last Ref
	if len(pd.children) > 0 {
		last = pd.children[len(pd.children)-1]
	}
	pd.children = append(pd.children, n)
	tracer().Debugf("relations: %v appended to children of %v", n, parent)
	if last.IsAbsent() {
		a.unlinkPrev(n)
	} else {
		a.linkChain(last, n)
	}
}

// setChildren reconciles a replacement of the complete child sequence.
func (a *Arena[T]) setChildren(n Ref, children []Ref) {
	nd := a.deref(n)
	for _, c := range nd.children {
		if cd := a.deref(c); cd != nil && cd.parent == n {
			cd.parent = Absent
		}
	}
	nd.children = nd.children[:0]
	for _, c := range children {
		if a.childIndex(n, c) >= 0 {
			continue // membership is unique
		}
		nd.children = append(nd.children, c)
	}
	// Re-binding runs the regular parent reconcile per child. Membership is
	// already present, so only the back-reference is stored (plus detachment
	// from a previous parent, if any).
	for _, c := range nd.children {
		a.setParent(c, n)
	}
}

// setPrevious reconciles the chain-predecessor relation of n.
func (a *Arena[T]) setPrevious(n, prev Ref) {
	nd := a.deref(n)
	if prev.IsAbsent() {
		a.unlinkPrev(n)
		return
	}
	if nd.prev == prev && a.deref(prev).next == n {
		return // link already mutual
	}
	a.linkChain(prev, n)
	a.adoptParent(n, a.deref(prev).parent, prev)
}

// setNext reconciles the chain-successor relation of n.
func (a *Arena[T]) setNext(n, next Ref) {
	nd := a.deref(n)
	if next.IsAbsent() {
		a.unlinkNext(n)
		return
	}
	if nd.next == next && a.deref(next).prev == n {
		return // link already mutual
	}
	a.linkChain(n, next)
	a.adoptParent(next, nd.parent, n)
}

// adoptParent propagates a parent adoption triggered by a chain link: the
// chain successor n adopts parent. pred is the chain predecessor that caused
// the adoption; if pred is a child of the new parent, n is inserted into the
// child sequence immediately after it, otherwise n is appended. The chain is
// not re-wired here; the triggering link is the ordering cue.
func (a *Arena[T]) adoptParent(n, parent, pred Ref) {
	nd := a.deref(n)
	if nd.parent == parent && (parent.IsAbsent() || a.childIndex(parent, n) >= 0) {
		return
	}
	if !nd.parent.IsAbsent() && nd.parent != parent {
		a.removeChild(nd.parent, n)
	}
	nd.parent = parent
	if parent.IsAbsent() {
		return
	}
	if a.childIndex(parent, n) >= 0 {
		return
	}
	pd := a.deref(parent)
	at := len(pd.children)
	if i := a.childIndex(parent, pred); i >= 0 {
		at = i + 1
	}
	pd.children = append(pd.children, Absent)
	copy(pd.children[at+1:], pd.children[at:])
	pd.children[at] = n
	tracer().Debugf("relations: %v adopts parent %v at position %d", n, parent, at)
}

// linkChain makes the prev/next link between pred and succ mutual, splicing
// both out of conflicting chain links first so that chain symmetry holds
// globally.
func (a *Arena[T]) linkChain(pred, succ Ref) {
	pd, sd := a.deref(pred), a.deref(succ)
	if pd.next == succ && sd.prev == pred {
		return
	}
	if !sd.prev.IsAbsent() && sd.prev != pred {
		if old := a.deref(sd.prev); old != nil {
			old.next = Absent
		}
	}
	if !pd.next.IsAbsent() && pd.next != succ {
		if old := a.deref(pd.next); old != nil {
			old.prev = Absent
		}
	}
	pd.next = succ
	sd.prev = pred
}

// unlinkPrev removes the mutual link between n and its chain predecessor.
func (a *Arena[T]) unlinkPrev(n Ref) {
	nd := a.deref(n)
	if nd.prev.IsAbsent() {
		return
	}
	if pd := a.deref(nd.prev); pd != nil && pd.next == n {
		pd.next = Absent
	}
	nd.prev = Absent
}

// unlinkNext removes the mutual link between n and its chain successor.
func (a *Arena[T]) unlinkNext(n Ref) {
	nd := a.deref(n)
	if nd.next.IsAbsent() {
		return
	}
	if sd := a.deref(nd.next); sd != nil && sd.prev == n {
		sd.prev = Absent
	}
	nd.next = Absent
}

// childIndex returns the position of child in parent's child sequence, or -1.
func (a *Arena[T]) childIndex(parent, child Ref) int {
	pd := a.deref(parent)
	if pd == nil {
		return -1
	}
	for i, c := range pd.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChild removes child from parent's child sequence (membership only;
// back-references and chain links are untouched).
func (a *Arena[T]) removeChild(parent, child Ref) {
	pd := a.deref(parent)
	if pd == nil {
		return
	}
	if i := a.childIndex(parent, child); i >= 0 {
		pd.children = append(pd.children[:i], pd.children[i+1:]...)
	}
}
