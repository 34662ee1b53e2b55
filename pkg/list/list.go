// Package list implements a singly linked pointer chain of opaque
// references. It backs [github.com/matzehuels/scaffold/pkg/stack] and is
// otherwise a standalone collaborator of the container toolkit.
//
// A chain is addressed by its root node; operations that can change the
// root (insert-before, delete, reverse) return the new root rather than
// mutating a pointer-to-pointer. Walks are iterative and guarded against
// cyclic chains: an operation that cannot terminate on a cycle returns
// [ErrCyclicChain] instead of looping forever. [Node.IsCyclic] is the
// cheap standalone check.
package list

import "errors"

var (
	// ErrCyclicChain is returned by walking operations when the chain
	// links back on itself and the walk cannot terminate.
	ErrCyclicChain = errors.New("list contains a cycle")

	// ErrBounds is returned when an index walks past the end of the chain.
	ErrBounds = errors.New("index beyond end of list")
)

// Node is one link of a singly linked chain. Payload points at
// caller-owned data and is never owned by the node.
type Node[T any] struct {
	Payload *T
	next    *Node[T]
}

// NewNode creates an unlinked node carrying payload.
func NewNode[T any](payload *T) *Node[T] {
	return &Node[T]{Payload: payload}
}

// Link makes next the successor of n, splicing over any previous
// successor.
func (n *Node[T]) Link(next *Node[T]) { n.next = next }

// Next returns n's successor, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] { return n.next }

// IsCyclic reports whether the chain starting at n links back on itself.
// Uses the two-speed walk, so it terminates on any chain.
func (n *Node[T]) IsCyclic() bool {
	slow, fast := n, n
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}

// Length returns the number of nodes reachable from n, or
// [ErrCyclicChain] if the chain is cyclic.
func (n *Node[T]) Length() (int, error) {
	if n.IsCyclic() {
		return 0, ErrCyclicChain
	}
	count := 0
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	return count, nil
}

// TraverseAt returns the node at the given index from n, with index 0
// being n itself. Returns [ErrBounds] past the end of the chain and
// [ErrCyclicChain] if a cycle is hit before the index is reached.
func (n *Node[T]) TraverseAt(index int) (*Node[T], error) {
	if index < 0 {
		return nil, ErrBounds
	}
	slow, cur := n, n
	for i := 0; cur != nil; i++ {
		if i == index {
			return cur, nil
		}
		cur = cur.next
		if i%2 == 1 {
			slow = slow.next
			if slow == cur {
				return nil, ErrCyclicChain
			}
		}
	}
	return nil, ErrBounds
}

// Copy returns a new chain of new nodes carrying the same payload
// references as the chain at n. Returns [ErrCyclicChain] on cyclic input.
func (n *Node[T]) Copy() (*Node[T], error) {
	if n.IsCyclic() {
		return nil, ErrCyclicChain
	}
	root := NewNode(n.Payload)
	tail := root
	for cur := n.next; cur != nil; cur = cur.next {
		tail.next = NewNode(cur.Payload)
		tail = tail.next
	}
	return root, nil
}

// Append adds a new node carrying payload at the end of the chain.
// Returns [ErrCyclicChain] if the chain has no end.
func (n *Node[T]) Append(payload *T) error {
	if n.IsCyclic() {
		return ErrCyclicChain
	}
	tail := n
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = NewNode(payload)
	return nil
}

// InsertAfter splices a new node carrying payload in after the node at
// the given index.
func (n *Node[T]) InsertAfter(index int, payload *T) error {
	splice, err := n.TraverseAt(index)
	if err != nil {
		return err
	}
	node := NewNode(payload)
	node.next = splice.next
	splice.next = node
	return nil
}

// InsertBefore splices a new node carrying payload in before the node at
// the given index and returns the (possibly new) root of the chain.
func InsertBefore[T any](root *Node[T], index int, payload *T) (*Node[T], error) {
	if index == 0 {
		node := NewNode(payload)
		node.next = root
		return node, nil
	}
	if err := root.InsertAfter(index-1, payload); err != nil {
		return root, err
	}
	return root, nil
}

// Delete unlinks the node at the given index and returns the (possibly
// new) root of the chain. Deleting index 0 of a single-node chain yields
// a nil root.
func Delete[T any](root *Node[T], index int) (*Node[T], error) {
	if index == 0 {
		next := root.next
		root.next = nil
		return next, nil
	}
	splice, err := root.TraverseAt(index - 1)
	if err != nil {
		return root, err
	}
	doomed := splice.next
	if doomed == nil {
		return root, ErrBounds
	}
	splice.next = doomed.next
	doomed.next = nil
	return root, nil
}

// Reverse reverses the chain in place and returns the new root.
// Returns [ErrCyclicChain] on cyclic input.
func Reverse[T any](root *Node[T]) (*Node[T], error) {
	if root.IsCyclic() {
		return root, ErrCyclicChain
	}
	var prev *Node[T]
	cur := root
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	return prev, nil
}

// FromSlice builds a chain from a slice of references, in order.
// Returns nil for an empty slice.
func FromSlice[T any](refs []*T) *Node[T] {
	var root, tail *Node[T]
	for _, ref := range refs {
		node := NewNode(ref)
		if root == nil {
			root = node
		} else {
			tail.next = node
		}
		tail = node
	}
	return root
}

// ToSlice returns the chain's payload references in order.
// Returns [ErrCyclicChain] on cyclic input.
func (n *Node[T]) ToSlice() ([]*T, error) {
	if n.IsCyclic() {
		return nil, ErrCyclicChain
	}
	var refs []*T
	for cur := n; cur != nil; cur = cur.next {
		refs = append(refs, cur.Payload)
	}
	return refs, nil
}

// Detach unlinks every node reachable from n and drops their payload
// references, leaving each node isolated. Safe on cyclic chains.
func Detach[T any](n *Node[T]) {
	for cur := n; cur != nil; {
		next := cur.next
		cur.next = nil
		cur.Payload = nil
		cur = next
	}
}
