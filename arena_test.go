package weft

import (
	"errors"
	"strings"
	"testing"
)

func TestEmptyArena(t *testing.T) {
	a := NewArena[int]()
	if a.Len() != 0 {
		t.Fatalf("expected empty arena, len=%d", a.Len())
	}
	if a.Valid(Absent) {
		t.Fatalf("Absent must not be a valid handle")
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestNewNodeStoresPayloadAndAction(t *testing.T) {
	a := NewArena[int]()
	n, err := a.NewNode(42, WithAction("visit"))
	if err != nil {
		t.Fatal(err)
	}
	if payload, _ := a.Payload(n); payload != 42 {
		t.Fatalf("expected payload 42, got %v", payload)
	}
	if action, _ := a.Action(n); action != "visit" {
		t.Fatalf("expected action 'visit', got %v", action)
	}
	if err := a.SetPayload(n, 7); err != nil {
		t.Fatal(err)
	}
	if payload, _ := a.Payload(n); payload != 7 {
		t.Fatalf("expected payload 7 after update, got %v", payload)
	}
}

func TestNewNodeValidatesBeforeAllocating(t *testing.T) {
	a := NewArena[int]()
	stale := Ref{index: 99, gen: 1}
	if _, err := a.NewNode(1, WithParent(stale)); !errors.Is(err, ErrInvalidRelation) {
		t.Fatalf("expected ErrInvalidRelation, got %v", err)
	}
	if _, err := a.NewNode(1, WithChildren(Absent)); !errors.Is(err, ErrInvalidRelation) {
		t.Fatalf("expected ErrInvalidRelation for absent child, got %v", err)
	}
	if a.Len() != 0 {
		t.Fatalf("failed construction must not allocate, len=%d", a.Len())
	}
}

func TestConstructionWiringMatchesMutation(t *testing.T) {
	a := NewArena[int]()
	c1, _ := a.NewNode(1)
	c2, _ := a.NewNode(2)
	parent, err := a.NewNode(0, WithChildren(c1, c2))
	if err != nil {
		t.Fatal(err)
	}
	children, _ := a.Children(parent)
	if len(children) != 2 || children[0] != c1 || children[1] != c2 {
		t.Fatalf("expected children [1, 2], got %v", children)
	}
	for _, c := range children {
		if p, _ := a.Parent(c); p != parent {
			t.Fatalf("expected child %v to point back to parent", c)
		}
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestFreeRequiresDetachedNode(t *testing.T) {
	a := NewArena[int]()
	root, _ := a.NewNode(0)
	child, _ := a.NewNode(1, WithParent(root))
	if err := a.Free(child); !errors.Is(err, ErrNodeLinked) {
		t.Fatalf("expected ErrNodeLinked, got %v", err)
	}
	if err := a.SetParent(child, Absent); err != nil {
		t.Fatal(err)
	}
	if err := a.Free(child); err != nil {
		t.Fatalf("expected Free to succeed after detach, got %v", err)
	}
	if a.Valid(child) {
		t.Fatalf("freed handle must be stale")
	}
	if a.Len() != 1 {
		t.Fatalf("expected one live node, len=%d", a.Len())
	}
}

func TestFreedSlotIsReusedWithFreshGeneration(t *testing.T) {
	a := NewArena[int]()
	first, _ := a.NewNode(1)
	if err := a.Free(first); err != nil {
		t.Fatal(err)
	}
	second, _ := a.NewNode(2)
	if first == second {
		t.Fatalf("recycled slot must carry a new generation")
	}
	if a.Valid(first) {
		t.Fatalf("stale handle revived by slot reuse")
	}
	if payload, _ := a.Payload(second); payload != 2 {
		t.Fatalf("expected fresh payload, got %v", payload)
	}
}

func TestDotOutputsGraph(t *testing.T) {
	a := NewArena[string]()
	root, _ := a.NewNode("R")
	a.NewNode("A", WithParent(root))
	a.NewNode("B", WithParent(root))
	var sb strings.Builder
	a.Dot(&sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("unexpected DOT preamble: %q", out)
	}
	if !strings.Contains(out, "->") {
		t.Fatalf("expected edges in DOT output:\n%s", out)
	}
	if !strings.Contains(out, "style=dashed") {
		t.Fatalf("expected dashed chain edge in DOT output:\n%s", out)
	}
}

func TestObserverSeesMutationsInOrder(t *testing.T) {
	a := NewArena[string]()
	var ops []Op
	a.Observe(func(e Event) { ops = append(ops, e.Op) })
	root, _ := a.NewNode("R")
	child, _ := a.NewNode("A", WithParent(root))
	b, _ := a.NewNode("B")
	_ = a.SetPrevious(b, child)
	_ = a.SetParent(child, Absent)
	want := []Op{OpCreate, OpCreate, OpCreate, OpPrevious, OpParent}
	if len(ops) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("event %d: expected %v, got %v", i, want[i], ops[i])
		}
	}
}
