// Package graph implements a directed graph of payload-carrying nodes
// built on the container package.
//
// Each [Node] holds an opaque payload reference and a container of
// outgoing edges addressed by caller-assigned integer indices. Links are
// plain slots: empty or holding a node reference, with no further state.
// The package is an abstraction used to build more specific structures —
// edge indices are arbitrary, but giving them stable meanings (left/right,
// next/prev) is usually a good idea.
//
// # Traversal
//
// [Node.LinkAt] resolves the writable slot a fixed number of hops down a
// single edge index; [Node.Traverse] dereferences it, with depth zero as
// the identity. [Node.Route] follows a heterogeneous sequence of indices,
// typically projected from a plain []int with [container.Project]. All
// three fail with [ErrBrokenLink] rather than dereferencing an absent
// link.
//
// # Ownership and teardown
//
// [Destroy] assumes tree-shaped ownership: every node beneath the start
// is owned exclusively through it. Diamond sharing and cycles violate
// that contract — [IsCyclic] is the guard callers run first, and [Copy]
// reports [ErrCyclic] itself since its walk already tracks the active
// path. The package deliberately does not make Destroy verify the
// contract; the check is the caller's, keeping teardown linear.
//
// Nothing here is safe for concurrent mutation without external
// synchronization.
package graph
