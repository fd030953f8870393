package weft

// Op identifies the kind of a structural mutation.
type Op uint8

const (
	OpCreate Op = iota + 1
	OpParent
	OpChildren
	OpPrevious
	OpNext
	OpFree
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpParent:
		return "parent"
	case OpChildren:
		return "children"
	case OpPrevious:
		return "previous"
	case OpNext:
		return "next"
	case OpFree:
		return "free"
	}
	return "unknown"
}

// Event describes one successful top-level mutation of the arena. Internal
// invariant restoration triggered by a mutation is part of that mutation and
// does not produce events of its own.
type Event struct {
	Op     Op
	Node   Ref
	Target Ref // the assigned relation target, Absent for create/children/free
}

// Observe installs fn as the arena's mutation observer, replacing any
// previous one. A nil fn disables observation. The observer is called
// synchronously after each successful mutation, in mutation order.
func (a *Arena[T]) Observe(fn func(Event)) {
	a.observer = fn
}

func (a *Arena[T]) notify(e Event) {
	if a.observer != nil {
		a.observer(e)
	}
}
