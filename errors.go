package weft

import "errors"

var (
	// ErrInvalidRelation signals a relation target which is neither absent nor
	// a live node of this arena. Validation precedes mutation: a call failing
	// with this error has not touched the structure.
	ErrInvalidRelation = errors.New("weft: relation target must be a node or absent")
	// ErrNodeLinked signals an attempt to free a node which still participates
	// in relations. Detaching is the client's responsibility.
	ErrNodeLinked = errors.New("weft: node is still linked")
	// ErrInconsistent is reported by Check for violated structural invariants.
	// The consistency engine itself never produces such a state; it can only
	// arise from unsynchronized concurrent mutation.
	ErrInconsistent = errors.New("weft: structure inconsistent")
)
