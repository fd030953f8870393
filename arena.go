package weft

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Ref is a generational handle to a node of an arena.
//
// The zero Ref is the explicit "absent" relation target: a node without a
// parent holds an absent parent Ref, the last node of a chain holds an
// absent next Ref, and so on. Handles of freed nodes turn stale and are
// rejected by all arena operations.
type Ref struct {
	index uint32 // 1-based slot position; 0 is reserved for Absent
	gen   uint32
}

// Absent is the zero Ref, denoting "no node".
var Absent = Ref{}

// IsAbsent reports whether the handle denotes "no node".
func (ref Ref) IsAbsent() bool {
	return ref == Absent
}

func (ref Ref) String() string {
	if ref.IsAbsent() {
		return "∅"
	}
	return fmt.Sprintf("#%d.%d", ref.index, ref.gen)
}

// Arena is a dense store for nodes of payload type T.
//
// All relation reads and writes go through the arena. The relation web is
// naturally cyclic (parent back-references, mutual chain links), which is
// why nodes are addressed by Ref handles instead of pointers.
//
// An arena created by
//
//	&Arena[T]{}
//
// is valid and empty; clients may use NewArena. Arenas must not be mutated
// concurrently without external synchronization.
type Arena[T any] struct {
	slots    []slot[T]
	free     []uint32
	observer func(Event)
}

type slot[T any] struct {
	gen  uint32
	live bool
	node nodeData[T]
}

// nodeData is the per-node storage: the opaque payload and action tag plus
// the four relation slots.
type nodeData[T any] struct {
	payload  T
	action   any
	parent   Ref
	children []Ref
	prev     Ref
	next     Ref
}

// NewArena creates a new and empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Len returns the number of live nodes in the arena.
func (a *Arena[T]) Len() int {
	return len(a.slots) - len(a.free)
}

// Valid reports whether ref denotes a live node of this arena.
func (a *Arena[T]) Valid(ref Ref) bool {
	return a.deref(ref) != nil
}

// deref returns the node storage for a handle, or nil for absent and stale
// handles.
func (a *Arena[T]) deref(ref Ref) *nodeData[T] {
	if ref.IsAbsent() {
		return nil
	}
	i := int(ref.index) - 1
	if i < 0 || i >= len(a.slots) {
		return nil
	}
	s := &a.slots[i]
	if !s.live || s.gen != ref.gen {
		return nil
	}
	return &s.node
}

// lookup is deref with an ErrInvalidRelation for anything but a live node.
func (a *Arena[T]) lookup(ref Ref) (*nodeData[T], error) {
	if nd := a.deref(ref); nd != nil {
		return nd, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidRelation, ref)
}

// checkTarget validates a relation target, which may be absent or a live
// node of this arena.
func (a *Arena[T]) checkTarget(ref Ref) error {
	if ref.IsAbsent() {
		return nil
	}
	_, err := a.lookup(ref)
	return err
}

func (a *Arena[T]) alloc() Ref {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[i]
		s.live = true
		s.node = nodeData[T]{}
		return Ref{index: i + 1, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{gen: 1, live: true})
	return Ref{index: uint32(len(a.slots)), gen: 1}
}

// NodeOption configures relation wiring and the action tag at node
// construction time.
type NodeOption func(*nodeSpec)

type nodeSpec struct {
	parent       Ref
	children     []Ref
	haveChildren bool
	prev         Ref
	next         Ref
	action       any
}

// WithParent wires the new node below parent.
func WithParent(parent Ref) NodeOption {
	return func(spec *nodeSpec) { spec.parent = parent }
}

// WithChildren wires the given nodes as the new node's children, in order.
func WithChildren(children ...Ref) NodeOption {
	return func(spec *nodeSpec) {
		spec.children = children
		spec.haveChildren = true
	}
}

// WithPrevious wires prev as the new node's chain predecessor.
func WithPrevious(prev Ref) NodeOption {
	return func(spec *nodeSpec) { spec.prev = prev }
}

// WithNext wires next as the new node's chain successor.
func WithNext(next Ref) NodeOption {
	return func(spec *nodeSpec) { spec.next = next }
}

// WithAction attaches an opaque action tag to the new node. The engine does
// not interpret it.
func WithAction(action any) NodeOption {
	return func(spec *nodeSpec) { spec.action = action }
}

// NewNode creates a node holding payload and wires the relations given as
// options. Wiring re-runs the same consistency engine as post-construction
// mutation (there is no special-cased construction mode), in the order
// parent, children, previous, next.
//
// All relation targets are validated before the node is allocated; an
// invalid target fails with ErrInvalidRelation and leaves the arena
// unchanged.
func (a *Arena[T]) NewNode(payload T, opts ...NodeOption) (Ref, error) {
	var spec nodeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	for _, target := range []Ref{spec.parent, spec.prev, spec.next} {
		if err := a.checkTarget(target); err != nil {
			return Absent, err
		}
	}
	for _, child := range spec.children {
		if _, err := a.lookup(child); err != nil {
			return Absent, err
		}
	}
	ref := a.alloc()
	nd := a.deref(ref)
	nd.payload = payload
	nd.action = spec.action
	if !spec.parent.IsAbsent() {
		a.setParent(ref, spec.parent)
	}
	if spec.haveChildren {
		a.setChildren(ref, spec.children)
	}
	if !spec.prev.IsAbsent() {
		a.setPrevious(ref, spec.prev)
	}
	if !spec.next.IsAbsent() {
		a.setNext(ref, spec.next)
	}
	tracer().Debugf("arena: created node %v", ref)
	a.notify(Event{Op: OpCreate, Node: ref})
	return ref, nil
}

// Free releases a node slot and invalidates its handle.
//
// The node must be fully detached: no parent, no children, no chain
// neighbors. The engine never detaches on its own behalf; that is the
// client's responsibility (set the relations to Absent first).
func (a *Arena[T]) Free(ref Ref) error {
	nd, err := a.lookup(ref)
	if err != nil {
		return err
	}
	if !nd.parent.IsAbsent() || !nd.prev.IsAbsent() || !nd.next.IsAbsent() || len(nd.children) > 0 {
		return fmt.Errorf("%w: %v", ErrNodeLinked, ref)
	}
	i := ref.index - 1
	s := &a.slots[i]
	s.live = false
	s.gen++
	s.node = nodeData[T]{}
	a.free = append(a.free, i)
	a.notify(Event{Op: OpFree, Node: ref})
	return nil
}

// Payload returns the payload stored in node n.
func (a *Arena[T]) Payload(n Ref) (T, error) {
	nd, err := a.lookup(n)
	if err != nil {
		var zero T
		return zero, err
	}
	return nd.payload, nil
}

// SetPayload replaces the payload of node n. The engine never inspects
// payload contents.
func (a *Arena[T]) SetPayload(n Ref, payload T) error {
	nd, err := a.lookup(n)
	if err != nil {
		return err
	}
	nd.payload = payload
	return nil
}

// Action returns the opaque action tag of node n.
func (a *Arena[T]) Action(n Ref) (any, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return nil, err
	}
	return nd.action, nil
}

// SetAction replaces the action tag of node n.
func (a *Arena[T]) SetAction(n Ref, action any) error {
	nd, err := a.lookup(n)
	if err != nil {
		return err
	}
	nd.action = action
	return nil
}

// Parent returns the parent of n, or Absent for a root.
func (a *Arena[T]) Parent(n Ref) (Ref, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return Absent, err
	}
	return nd.parent, nil
}

// Previous returns the chain predecessor of n, or Absent.
func (a *Arena[T]) Previous(n Ref) (Ref, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return Absent, err
	}
	return nd.prev, nil
}

// Next returns the chain successor of n, or Absent.
func (a *Arena[T]) Next(n Ref) (Ref, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return Absent, err
	}
	return nd.next, nil
}

// Children returns a copy of the child sequence of n, in order.
func (a *Arena[T]) Children(n Ref) ([]Ref, error) {
	nd, err := a.lookup(n)
	if err != nil {
		return nil, err
	}
	return append([]Ref(nil), nd.children...), nil
}
