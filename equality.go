package weft

import "reflect"

// Eq compares two nodes structurally: payload, action and the complete
// linked neighborhood (parent, children, previous, next), compared
// recursively. Handle identity implies equality; two absent handles compare
// equal; stale handles compare unequal to everything.
//
// Beware: structural equality is O(subtree) and sensitive to the full
// relation web, not just the two nodes at hand. Payload and action are
// compared with reflect.DeepEqual. The relation web is cyclic, so the
// comparison memoizes node pairs in progress.
func (a *Arena[T]) Eq(x, y Ref) bool {
	return a.eq(x, y, make(map[[2]Ref]bool))
}

func (a *Arena[T]) eq(x, y Ref, open map[[2]Ref]bool) bool {
	if x == y {
		return true
	}
	if x.IsAbsent() || y.IsAbsent() {
		return false
	}
	xd, yd := a.deref(x), a.deref(y)
	if xd == nil || yd == nil {
		return false
	}
	pair := [2]Ref{x, y}
	if open[pair] {
		return true // this pair is already being compared up the stack
	}
	open[pair] = true
	if !reflect.DeepEqual(xd.payload, yd.payload) {
		return false
	}
	if !reflect.DeepEqual(xd.action, yd.action) {
		return false
	}
	if len(xd.children) != len(yd.children) {
		return false
	}
	if !a.eq(xd.parent, yd.parent, open) {
		return false
	}
	for i := range xd.children {
		if !a.eq(xd.children[i], yd.children[i], open) {
			return false
		}
	}
	if !a.eq(xd.prev, yd.prev, open) {
		return false
	}
	return a.eq(xd.next, yd.next, open)
}
