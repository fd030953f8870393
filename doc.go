/*
Package weft implements a hybrid node structure which is a tree and a
doubly linked chain at the same time.

# Nodes and Relations

Every node carries four relation slots: a parent, an ordered sequence of
children, and a previous/next pair of chain neighbors. The tree and the
chain are woven over the very same node instances, which is where the
package name comes from: weft threads crossing the warp.

Relations are never written in isolation. Assigning a single relation runs
a small consistency engine which restores the dual relations before the
call returns:

▪︎ parent/child symmetry: a node with a parent is listed exactly once in
that parent's child sequence,

▪︎ chain symmetry: node.Next == other implies other.Previous == node,

▪︎ parent propagation: chaining two nodes makes them siblings, adopting
the parent of the already-placed neighbor and inserting at the matching
position of the child sequence.

The classic formulation of structures like this uses mutually recursive
setters, terminated by an "is the link already mutual?" guard. weft
expresses each write as a single reconcile pass with a fixed order
(membership detach, back-reference store, membership attach, chain splice),
so that termination is structurally obvious.

# Arena and Handles

The relation web is naturally cyclic. Nodes therefore live in an arena and
refer to each other through generational handles (type Ref) instead of
pointers. The zero Ref is the explicit "absent" relation target; any
non-absent handle is validated against the arena before a mutation touches
the structure. Stale handles (freed slots, out-of-range indexes) are
rejected with ErrInvalidRelation, leaving the arena unchanged.

Arenas are not safe for concurrent mutation. All writes go through the
arena value; clients sharing an arena across goroutines have to
synchronize externally, per connected node cluster at minimum.

The node payload is opaque to the engine (a type parameter), as is the
per-node action tag. Payload containers, list façades, rendering and
ingestion live in subpackages.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package weft

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'weft'
func tracer() tracing.Trace {
	return tracing.Select("weft")
}
