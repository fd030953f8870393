// Package watch broadcasts arena mutations to any number of subscribers.
//
// A Hub hooks into an arena's observer slot and re-publishes every mutation
// event over a broadcaster. Subscribers receive events in mutation order.
// Publishing happens on the mutating goroutine; arenas stay single-writer.
package watch

import (
	"github.com/guiguan/caster"
	"github.com/npillmayer/weft"
)

// Observable is the part of the arena API the hub hooks into. Both
// *weft.Arena[T] instantiations and test doubles satisfy it.
type Observable interface {
	Observe(func(weft.Event))
}

// Hub fans arena mutation events out to subscriber channels.
type Hub struct {
	cast *caster.Caster
}

// NewHub creates a hub with a running broadcaster.
func NewHub() *Hub {
	return &Hub{cast: caster.New(nil)}
}

// Attach installs the hub as the observer of a, replacing any previous
// observer. One hub may be attached to several arenas.
func (h *Hub) Attach(a Observable) {
	a.Observe(func(e weft.Event) {
		h.cast.Pub(e)
	})
}

// Subscribe registers a new subscriber channel with the given buffer
// capacity. The channel delivers weft.Event values published after the
// subscription; it is closed when the hub closes.
func (h *Hub) Subscribe(capacity uint) (chan interface{}, bool) {
	return h.cast.Sub(nil, capacity)
}

// Unsubscribe removes a subscriber channel and closes it.
func (h *Hub) Unsubscribe(ch chan interface{}) bool {
	return h.cast.Unsub(ch)
}

// Close shuts the broadcaster down and closes all subscriber channels.
func (h *Hub) Close() bool {
	return h.cast.Close()
}
