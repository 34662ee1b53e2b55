package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/scaffold/pkg/container"
)

func node(t *testing.T, payload string, edges int) *Node[string] {
	t.Helper()
	n, err := NewNode(&payload, edges)
	if err != nil {
		t.Fatalf("NewNode(%q, %d): %v", payload, edges, err)
	}
	return n
}

// diamond builds A→B (edge 0), A→C (edge 1), B→D (edge 0), C→D (edge 0)
// and returns the four nodes.
func diamond(t *testing.T) (a, b, c, d *Node[string]) {
	t.Helper()
	a = node(t, "A", 2)
	b = node(t, "B", 1)
	c = node(t, "C", 1)
	d = node(t, "D", 0)
	a.SetLink(0, b)
	a.SetLink(1, c)
	b.SetLink(0, d)
	c.SetLink(0, d)
	return a, b, c, d
}

func path(t *testing.T, steps ...int) *container.Container[int] {
	t.Helper()
	p, err := container.Project(steps, len(steps), 1)
	if err != nil {
		t.Fatalf("Project(%v): %v", steps, err)
	}
	return p
}

func TestNewNode(t *testing.T) {
	payload := "root"
	n, err := NewNode(&payload, 3)
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	if n.Payload != &payload {
		t.Errorf("Payload not preserved")
	}
	if n.Edges().Len() != 3 {
		t.Errorf("edges = %d, want 3", n.Edges().Len())
	}
	for i := 0; i < 3; i++ {
		if got, _ := n.Edges().Get(i); got != nil {
			t.Errorf("edge %d = %v, want empty", i, got)
		}
	}

	if _, err := NewNode(&payload, -1); !errors.Is(err, container.ErrAllocation) {
		t.Errorf("NewNode with negative edges error = %v, want ErrAllocation", err)
	}
}

func TestLinkAt(t *testing.T) {
	t.Run("WritableSlot", func(t *testing.T) {
		root := node(t, "root", 1)
		leaf := node(t, "leaf", 2)

		slot, err := root.LinkAt(0, 1)
		if err != nil {
			t.Fatalf("LinkAt: %v", err)
		}
		*slot = leaf

		got, err := root.Traverse(0, 1)
		if err != nil {
			t.Fatalf("Traverse after write: %v", err)
		}
		if got != leaf {
			t.Errorf("link write through slot did not take")
		}
	})

	t.Run("Depth", func(t *testing.T) {
		a := node(t, "a", 1)
		b := node(t, "b", 1)
		c := node(t, "c", 1)
		a.SetLink(0, b)
		b.SetLink(0, c)

		slot, err := a.LinkAt(0, 2)
		if err != nil {
			t.Fatalf("LinkAt depth 2: %v", err)
		}
		if *slot != c {
			t.Errorf("LinkAt(0, 2) resolved wrong slot")
		}
	})

	t.Run("BrokenIntermediate", func(t *testing.T) {
		a := node(t, "a", 1)
		b := node(t, "b", 1)
		a.SetLink(0, b)
		// b's edge 0 is empty, so depth 3 breaks at the intermediate.
		if _, err := a.LinkAt(0, 3); !errors.Is(err, ErrBrokenLink) {
			t.Errorf("error = %v, want ErrBrokenLink", err)
		}
	})

	t.Run("IndexOutsideEdges", func(t *testing.T) {
		a := node(t, "a", 1)
		if _, err := a.LinkAt(5, 1); !errors.Is(err, ErrBrokenLink) {
			t.Errorf("error = %v, want ErrBrokenLink", err)
		}
	})

	t.Run("ZeroDepth", func(t *testing.T) {
		a := node(t, "a", 1)
		if _, err := a.LinkAt(0, 0); !errors.Is(err, ErrDepth) {
			t.Errorf("error = %v, want ErrDepth", err)
		}
	})
}

func TestTraverse(t *testing.T) {
	t.Run("DepthZeroIsIdentity", func(t *testing.T) {
		a := node(t, "a", 2)
		for _, idx := range []int{0, 1, 99, -1} {
			got, err := a.Traverse(idx, 0)
			if err != nil || got != a {
				t.Errorf("Traverse(%d, 0) = %v, %v; want the node itself", idx, got, err)
			}
		}
	})

	t.Run("FollowsFixedIndex", func(t *testing.T) {
		a := node(t, "a", 1)
		b := node(t, "b", 1)
		c := node(t, "c", 1)
		a.SetLink(0, b)
		b.SetLink(0, c)

		got, err := a.Traverse(0, 2)
		if err != nil {
			t.Fatalf("Traverse: %v", err)
		}
		if got != c {
			t.Errorf("Traverse(0, 2) landed on %v, want c", got.Payload)
		}
	})

	t.Run("AbsentDestination", func(t *testing.T) {
		a := node(t, "a", 1)
		if _, err := a.Traverse(0, 1); !errors.Is(err, ErrBrokenLink) {
			t.Errorf("error = %v, want ErrBrokenLink", err)
		}
	})
}

func TestRoute(t *testing.T) {
	t.Run("EmptyPathIsIdentity", func(t *testing.T) {
		a := node(t, "a", 1)
		empty, _ := container.New[int](0)
		got, err := a.Route(empty)
		if err != nil || got != a {
			t.Errorf("Route(empty) = %v, %v; want the node itself", got, err)
		}
	})

	t.Run("DiamondConverges", func(t *testing.T) {
		a, _, _, d := diamond(t)

		viaB, err := a.Route(path(t, 0, 0))
		if err != nil {
			t.Fatalf("route via B: %v", err)
		}
		viaC, err := a.Route(path(t, 1, 0))
		if err != nil {
			t.Fatalf("route via C: %v", err)
		}
		if viaB != d || viaC != d {
			t.Errorf("routes [0 0] and [1 0] should both reach D")
		}
	})

	t.Run("BrokenStep", func(t *testing.T) {
		a, _, _, _ := diamond(t)
		// D has no edges, so a third step breaks.
		if _, err := a.Route(path(t, 0, 0, 0)); !errors.Is(err, ErrBrokenLink) {
			t.Errorf("error = %v, want ErrBrokenLink", err)
		}
	})

	t.Run("AbsentPathEntry", func(t *testing.T) {
		a, _, _, _ := diamond(t)
		p, _ := container.New[int](2) // entries never set
		if _, err := a.Route(p); !errors.Is(err, ErrBrokenLink) {
			t.Errorf("error = %v, want ErrBrokenLink", err)
		}
	})
}

func TestIsCyclic(t *testing.T) {
	t.Run("SingleNode", func(t *testing.T) {
		a := node(t, "a", 1)
		if IsCyclic(a) {
			t.Errorf("isolated node reported cyclic")
		}
	})

	t.Run("SelfLoop", func(t *testing.T) {
		a := node(t, "a", 1)
		a.SetLink(0, a)
		if !IsCyclic(a) {
			t.Errorf("self loop not reported cyclic")
		}
	})

	t.Run("TwoNodeCycle", func(t *testing.T) {
		a := node(t, "a", 1)
		b := node(t, "b", 1)
		a.SetLink(0, b)
		b.SetLink(0, a)
		if !IsCyclic(a) {
			t.Errorf("A→B→A not reported cyclic")
		}
	})

	t.Run("DiamondIsNotACycle", func(t *testing.T) {
		a, _, _, _ := diamond(t)
		if IsCyclic(a) {
			t.Errorf("diamond sharing reported as a cycle")
		}
	})

	t.Run("CycleBelowRoot", func(t *testing.T) {
		root := node(t, "root", 1)
		a := node(t, "a", 1)
		b := node(t, "b", 1)
		root.SetLink(0, a)
		a.SetLink(0, b)
		b.SetLink(0, a)
		if !IsCyclic(root) {
			t.Errorf("cycle below the start node not reported")
		}
	})
}

func TestCopy(t *testing.T) {
	t.Run("PreservesTopologyAndPayloads", func(t *testing.T) {
		a, _, _, _ := diamond(t)

		clone, err := Copy(a)
		if err != nil {
			t.Fatalf("Copy: %v", err)
		}
		if clone == a {
			t.Fatalf("copy returned the original node")
		}
		if clone.Payload != a.Payload {
			t.Errorf("payload reference not preserved")
		}

		// Shared descendant must stay shared: both routes land on the
		// same cloned D, which is not the original D.
		origD, _ := a.Route(path(t, 0, 0))
		viaB, err := clone.Route(path(t, 0, 0))
		if err != nil {
			t.Fatalf("clone route via B: %v", err)
		}
		viaC, err := clone.Route(path(t, 1, 0))
		if err != nil {
			t.Fatalf("clone route via C: %v", err)
		}
		if viaB != viaC {
			t.Errorf("diamond sharing not preserved in copy")
		}
		if viaB == origD {
			t.Errorf("copy shares node records with the original")
		}
		if viaB.Payload != origD.Payload {
			t.Errorf("copied node does not reference the original payload")
		}
	})

	t.Run("EdgeCountsMatch", func(t *testing.T) {
		a, _, _, _ := diamond(t)
		clone, err := Copy(a)
		if err != nil {
			t.Fatalf("Copy: %v", err)
		}
		if clone.Edges().Len() != a.Edges().Len() {
			t.Errorf("clone edges = %d, want %d", clone.Edges().Len(), a.Edges().Len())
		}
	})

	t.Run("CyclicInput", func(t *testing.T) {
		a := node(t, "a", 1)
		b := node(t, "b", 1)
		a.SetLink(0, b)
		b.SetLink(0, a)
		if _, err := Copy(a); !errors.Is(err, ErrCyclic) {
			t.Errorf("error = %v, want ErrCyclic", err)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		clone, err := Copy[string](nil)
		if clone != nil || err != nil {
			t.Errorf("Copy(nil) = %v, %v; want nil, nil", clone, err)
		}
	})
}

func TestDestroy(t *testing.T) {
	a, b, c, d := diamond(t)
	Destroy(a)

	for name, n := range map[string]*Node[string]{"a": a, "b": b, "c": c, "d": d} {
		if n.Payload != nil {
			t.Errorf("node %s payload not dropped", name)
		}
		if n.Edges().Len() != 0 || n.Edges().Cap() != 0 {
			t.Errorf("node %s edge container not released", name)
		}
	}
}
