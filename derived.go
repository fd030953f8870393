package weft

// Derived node properties. None of these are stored; they are computed from
// the relation slots on every call and have no side effects.

// Degree returns the number of children of n.
func (a *Arena[T]) Degree(n Ref) (int, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return 0, err
	}
	return len(nd.children), nil
}

// Depth returns the number of parent hops from n to a node without a parent.
// A root has depth 0.
//
// The walk is guarded against degenerate parent cycles: it stops after as
// many hops as there are live nodes. Check reports such cycles.
func (a *Arena[T]) Depth(n Ref) (int, error) {
	if _, err := a.lookup(n); err != nil {
		return 0, err
	}
	depth := 0
	cur := n
	for limit := a.Len(); depth <= limit; {
		nd := a.deref(cur)
		if nd == nil || nd.parent.IsAbsent() {
			break
		}
		cur = nd.parent
		depth++
	}
	return depth, nil
}

// IsRoot reports whether n has no parent.
func (a *Arena[T]) IsRoot(n Ref) (bool, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return false, err
	}
	return nd.parent.IsAbsent(), nil
}

// IsInternal reports whether n has at least one child.
func (a *Arena[T]) IsInternal(n Ref) (bool, error) {
	degree, err := a.Degree(n)
	if err != nil {
		return false, err
	}
	return degree >= 1, nil
}

// IsExternal reports whether n has no children (a leaf).
func (a *Arena[T]) IsExternal(n Ref) (bool, error) {
	degree, err := a.Degree(n)
	if err != nil {
		return false, err
	}
	return degree == 0, nil
}

// Siblings returns the other children of n's parent, in child order,
// excluding n itself. A root has no siblings.
func (a *Arena[T]) Siblings(n Ref) ([]Ref, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return nil, err
	}
	if nd.parent.IsAbsent() {
		return nil, nil
	}
	pd := a.deref(nd.parent)
	if pd == nil {
		return nil, nil
	}
	siblings := make([]Ref, 0, len(pd.children))
	for _, c := range pd.children {
		if c != n {
			siblings = append(siblings, c)
		}
	}
	return siblings, nil
}
