package chain

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid element index.
	ErrIndexOutOfBounds = errors.New("chain: index out of bounds")
	// ErrArenaMismatch signals an operation combining lists over different
	// arenas. Chain links only exist between nodes of one arena.
	ErrArenaMismatch = errors.New("chain: lists belong to different arenas")
)
