package graph

import (
	"github.com/matzehuels/scaffold/pkg/container"
	"github.com/matzehuels/scaffold/pkg/stack"
)

// IsCyclic reports whether any path starting at n revisits a node already
// on the active traversal path. Detection is a depth-first search with
// white/gray/black coloring: revisiting a gray (on-stack) node is a
// genuine cycle, while revisiting a black (finished) node is diamond
// sharing and is not reported. The search terminates on cyclic input.
func IsCyclic[T any](n *Node[T]) bool {
	if n == nil {
		return false
	}

	const (
		white = iota
		gray
		black
	)

	color := make(map[*Node[T]]int)

	var dfs func(*Node[T]) bool
	dfs = func(node *Node[T]) bool {
		color[node] = gray
		cyclic := false
		container.ForEach(node.edges, func(slot **Node[T], _ int, _ *container.Container[Node[T]]) bool {
			child := *slot
			if child == nil {
				return false
			}
			switch color[child] {
			case white:
				cyclic = dfs(child)
			case gray:
				cyclic = true
			}
			return cyclic
		})
		color[node] = black
		return cyclic
	}

	return dfs(n)
}

// Copy produces a new, structurally equivalent graph starting from an
// equivalent of n: new node records with identical edge topology. Payload
// references are preserved, not duplicated, so both graphs reference the
// same payload data. Diamond sharing survives the copy — a node reachable
// by two paths yields one clone reachable by both.
//
// Returns [ErrCyclic] if the walk revisits a node on the active path;
// unlike teardown, copying detects the violated precondition itself
// because it is already paying for the traversal bookkeeping.
func Copy[T any](n *Node[T]) (*Node[T], error) {
	if n == nil {
		return nil, nil
	}

	clones := make(map[*Node[T]]*Node[T])
	onPath := make(map[*Node[T]]bool)

	var dup func(*Node[T]) (*Node[T], error)
	dup = func(node *Node[T]) (*Node[T], error) {
		if clone, ok := clones[node]; ok {
			return clone, nil
		}
		if onPath[node] {
			return nil, ErrCyclic
		}
		onPath[node] = true
		defer delete(onPath, node)

		clone, err := NewNode(node.Payload, node.edges.Len())
		if err != nil {
			return nil, err
		}
		for i := 0; i < node.edges.Len(); i++ {
			child, _ := node.edges.Get(i)
			if child == nil {
				continue
			}
			linked, err := dup(child)
			if err != nil {
				return nil, err
			}
			clone.edges.Set(i, linked)
		}
		clones[node] = clone
		return clone, nil
	}

	return dup(n)
}

// Destroy tears down the graph reachable from n: every reachable node has
// its payload reference dropped and its edge container released.
//
// The operation assumes n exclusively owns everything beneath it (the
// tree-shaped ownership convention); callers must verify acyclicity and
// the absence of sharing with [IsCyclic], or disconnect such structure
// first. The walk itself is iterative over a worklist with a visited set,
// so misuse cannot make it loop or release a node twice — but a shared
// node torn down through one owner is gone for the other.
func Destroy[T any](n *Node[T]) {
	if n == nil {
		return
	}

	seen := make(map[*Node[T]]bool)
	work := stack.New[Node[T]]()
	work.Push(n)

	for {
		node, ok := work.Pop()
		if !ok {
			break
		}
		if seen[node] {
			continue
		}
		seen[node] = true
		for i := 0; i < node.edges.Len(); i++ {
			if child, _ := node.edges.Get(i); child != nil {
				work.Push(child)
			}
		}
	}

	for node := range seen {
		node.Payload = nil
		node.edges.Destroy()
	}
}
