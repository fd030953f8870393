package weft

import "testing"

func TestEqIdentityAndAbsent(t *testing.T) {
	a := NewArena[string]()
	n, _ := a.NewNode("N")
	if !a.Eq(n, n) {
		t.Fatalf("identity must imply equality")
	}
	if !a.Eq(Absent, Absent) {
		t.Fatalf("two absent handles must compare equal")
	}
	if a.Eq(n, Absent) {
		t.Fatalf("node must not equal absent")
	}
}

func TestEqComparesPayloadAndAction(t *testing.T) {
	a := NewArena[string]()
	x, _ := a.NewNode("same")
	y, _ := a.NewNode("same")
	z, _ := a.NewNode("other")
	if !a.Eq(x, y) {
		t.Fatalf("detached nodes with equal payload must compare equal")
	}
	if a.Eq(x, z) {
		t.Fatalf("differing payloads must compare unequal")
	}
	if err := a.SetAction(y, "tag"); err != nil {
		t.Fatal(err)
	}
	if a.Eq(x, y) {
		t.Fatalf("differing actions must compare unequal")
	}
}

func TestEqComparesNeighborhood(t *testing.T) {
	a := NewArena[string]()
	p1, _ := a.NewNode("P")
	p2, _ := a.NewNode("P")
	x, _ := a.NewNode("C", WithParent(p1))
	y, _ := a.NewNode("C", WithParent(p2))
	if !a.Eq(x, y) {
		t.Fatalf("structurally identical subtrees must compare equal")
	}
	if !a.Eq(p1, p2) {
		t.Fatalf("structurally identical parents must compare equal")
	}
	if err := a.SetPayload(y, "D"); err != nil {
		t.Fatal(err)
	}
	if a.Eq(p1, p2) {
		t.Fatalf("parents must compare unequal after child payload change")
	}
}

func TestEqTerminatesOnMutualChainLinks(t *testing.T) {
	a := NewArena[string]()
	x1, _ := a.NewNode("X")
	y1, _ := a.NewNode("Y", WithPrevious(x1))
	x2, _ := a.NewNode("X")
	y2, _ := a.NewNode("Y", WithPrevious(x2))
	// mutual prev/next links form a cycle; Eq must terminate anyway
	if !a.Eq(x1, x2) {
		t.Fatalf("chained pairs must compare equal")
	}
	if !a.Eq(y1, y2) {
		t.Fatalf("chained pairs must compare equal from either end")
	}
}
