package weft

import "testing"

func buildFamily(t *testing.T) (*Arena[string], Ref, Ref, Ref, Ref) {
	t.Helper()
	a := NewArena[string]()
	root, _ := a.NewNode("R")
	n, _ := a.NewNode("N", WithParent(root))
	x, _ := a.NewNode("X", WithParent(root))
	y, _ := a.NewNode("Y", WithParent(root))
	return a, root, n, x, y
}

func TestDegreeCountsChildren(t *testing.T) {
	a, root, n, _, _ := buildFamily(t)
	if degree, _ := a.Degree(root); degree != 3 {
		t.Fatalf("expected degree 3, got %d", degree)
	}
	if degree, _ := a.Degree(n); degree != 0 {
		t.Fatalf("expected leaf degree 0, got %d", degree)
	}
}

func TestDepthCountsParentHops(t *testing.T) {
	a, root, n, _, _ := buildFamily(t)
	grandchild, _ := a.NewNode("G", WithParent(n))
	if depth, _ := a.Depth(root); depth != 0 {
		t.Fatalf("expected root depth 0, got %d", depth)
	}
	if depth, _ := a.Depth(n); depth != 1 {
		t.Fatalf("expected depth 1, got %d", depth)
	}
	if depth, _ := a.Depth(grandchild); depth != 2 {
		t.Fatalf("expected depth 2, got %d", depth)
	}
}

func TestDepthTerminatesOnParentCycle(t *testing.T) {
	a := NewArena[string]()
	x, _ := a.NewNode("X")
	y, _ := a.NewNode("Y", WithParent(x))
	// force a degenerate cycle; the engine is permissive here
	if err := a.SetParent(x, y); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Depth(y); err != nil {
		t.Fatalf("Depth must terminate on cycles, got error %v", err)
	}
}

func TestRootAndLeafClassification(t *testing.T) {
	a, root, n, _, _ := buildFamily(t)
	if isroot, _ := a.IsRoot(root); !isroot {
		t.Fatalf("expected R to be root")
	}
	if isroot, _ := a.IsRoot(n); isroot {
		t.Fatalf("expected N not to be root")
	}
	if internal, _ := a.IsInternal(root); !internal {
		t.Fatalf("expected R to be internal")
	}
	if external, _ := a.IsExternal(root); external {
		t.Fatalf("expected R not to be external")
	}
	if external, _ := a.IsExternal(n); !external {
		t.Fatalf("expected N to be external")
	}
}

func TestSiblingsExcludeSelf(t *testing.T) {
	a, root, n, x, y := buildFamily(t)
	siblings, err := a.Siblings(n)
	if err != nil {
		t.Fatal(err)
	}
	if len(siblings) != 2 || siblings[0] != x || siblings[1] != y {
		t.Fatalf("expected siblings [X, Y], got %v", siblings)
	}
	if siblings, _ := a.Siblings(root); len(siblings) != 0 {
		t.Fatalf("expected root to have no siblings, got %v", siblings)
	}
}
