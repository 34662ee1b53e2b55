package graph

import (
	"errors"
	"fmt"

	"github.com/matzehuels/scaffold/pkg/container"
)

var (
	// ErrDepth is returned by [Node.LinkAt] and [Node.Traverse] when a
	// negative depth is requested, or a zero depth where at least one is
	// required.
	ErrDepth = errors.New("depth must be at least one")

	// ErrBrokenLink is returned when a traversal, route, or link-address
	// operation would dereference an absent link or an absent edge index
	// before reaching its destination.
	ErrBrokenLink = errors.New("broken link")

	// ErrCyclic is returned by [Copy] when the graph reachable from the
	// starting node contains a cycle. Cycles are detected during the
	// copying walk, so the operation terminates instead of recursing
	// forever.
	ErrCyclic = errors.New("graph contains a cycle")
)

// Node is a directed graph node: a payload reference to caller-owned data
// and a container of outgoing edges. Edge slots are addressed by a
// caller-assigned integer index — a direction label, not a list position —
// and each slot either holds a reference to another node or is empty.
//
// Ownership convention, relied on by [Destroy]: a node exclusively owns
// every node reachable from it only through it, i.e. the graph is
// tree-shaped for teardown purposes. [IsCyclic] exists so callers can
// check that assumption before tearing down or copying.
type Node[T any] struct {
	Payload *T
	edges   *container.Container[Node[T]]
}

// NewNode creates a node carrying payload with the given number of empty
// outgoing edges. Returns [container.ErrAllocation] (wrapped) if the edge
// container cannot be allocated.
func NewNode[T any](payload *T, edges int) (*Node[T], error) {
	links, err := container.New[Node[T]](edges)
	if err != nil {
		return nil, fmt.Errorf("edge container: %w", err)
	}
	return &Node[T]{Payload: payload, edges: links}, nil
}

// Edges returns the node's outgoing edge container. The container is the
// node's own storage: writes through it rewire the graph.
func (n *Node[T]) Edges() *container.Container[Node[T]] { return n.edges }

// SetLink stores a link to the given node (nil to clear) at the edge
// index. Returns [container.ErrBounds] for an index outside the node's
// declared edges.
func (n *Node[T]) SetLink(index int, to *Node[T]) error {
	return n.edges.Set(index, to)
}

// LinkAt resolves the storage slot holding the node reference reached by
// following the same edge index repeatedly, depth times. Depth must be at
// least one. The returned slot is readable and writable in place, so a
// link deeper in the graph can be rewired directly:
//
//	slot, err := root.LinkAt(0, 1)
//	if err == nil {
//	    *slot = leaf // root's edge 0 now points at leaf
//	}
//
// Returns [ErrBrokenLink] if any intermediate node along the path is
// absent, or if the edge index is outside a visited node's edges.
func (n *Node[T]) LinkAt(index, depth int) (**Node[T], error) {
	if depth < 1 {
		return nil, ErrDepth
	}
	cur := n
	for {
		slot, err := cur.edges.At(index)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", index, ErrBrokenLink)
		}
		if depth == 1 {
			return slot, nil
		}
		if *slot == nil {
			return nil, ErrBrokenLink
		}
		cur = *slot
		depth--
	}
}

// Traverse returns the node reached by following the same edge index
// repeatedly, depth times. Depth zero is the identity and returns n
// unchanged. Returns [ErrBrokenLink] if any link on the path, including
// the final one, is absent.
func (n *Node[T]) Traverse(index, depth int) (*Node[T], error) {
	if depth == 0 {
		return n, nil
	}
	slot, err := n.LinkAt(index, depth)
	if err != nil {
		return nil, err
	}
	if *slot == nil {
		return nil, ErrBrokenLink
	}
	return *slot, nil
}

// Route follows a sequence of edge indices one step at a time, starting
// at n: step k follows path[k] from the node reached after step k-1. An
// empty (or nil) path returns n unchanged. The path is a container so
// that index sequences can be projected zero-copy from a plain slice with
// [container.Project]:
//
//	steps := []int{0, 1, 0}
//	path, _ := container.Project(steps, len(steps), 1)
//	dest, err := origin.Route(path)
//
// Fails with [ErrBrokenLink], wrapped with the failing step, as soon as
// any step dereferences an absent link or an absent path entry.
func (n *Node[T]) Route(path *container.Container[int]) (*Node[T], error) {
	cur := n
	if path == nil {
		return cur, nil
	}
	for k := 0; k < path.Len(); k++ {
		entry, err := path.Get(k)
		if err != nil || entry == nil {
			return nil, fmt.Errorf("step %d: %w", k, ErrBrokenLink)
		}
		next, err := cur.Traverse(*entry, 1)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", k, ErrBrokenLink)
		}
		cur = next
	}
	return cur, nil
}
