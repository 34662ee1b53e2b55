// Package stack implements a LIFO container of opaque references on top
// of the linked list collaborator.
package stack

import "github.com/matzehuels/scaffold/pkg/list"

// Stack is a last-in-first-out container of opaque references. The zero
// value is an empty stack ready for use. Stack is not safe for concurrent
// use without external synchronization.
type Stack[T any] struct {
	count int
	head  *list.Node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.count }

// Push places payload on top of the stack by prepending a node to the
// backing chain.
func (s *Stack[T]) Push(payload *T) {
	node := list.NewNode(payload)
	node.Link(s.head)
	s.head = node
	s.count++
}

// Pop removes and returns the most recently pushed payload. The second
// return value is false when the stack holds nothing.
func (s *Stack[T]) Pop() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	payload := s.head.Payload
	next := s.head.Next()
	s.head.Link(nil)
	s.head = next
	s.count--
	return payload, true
}

// Drain detaches the backing chain and resets the stack to empty.
// The payloads themselves are never touched.
func (s *Stack[T]) Drain() {
	list.Detach(s.head)
	s.head = nil
	s.count = 0
}
