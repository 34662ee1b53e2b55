// Package container implements a capacity-tracked growable sequence of
// opaque references, the foundation for the rest of the toolkit.
//
// A [Container] holds an ordered run of slots. Each slot either holds a
// reference (a *T pointing at caller-owned data) or is empty (nil). The
// container never owns the referenced data: destroying or shrinking a
// container releases its slot storage only, and the caller remains
// responsible for whatever the slots pointed at.
//
// # Length and capacity
//
// Logical length and allocated capacity are tracked separately, with
// capacity >= length at all times and capacity == 0 exactly when no
// backing storage exists. [Container.Append] grows by amortized doubling;
// [Container.Resize] allocates exactly the requested length with no
// over-allocation. Slots at index >= length are inaccessible even when
// physically allocated.
//
// # Combinators
//
// [ForEach], [Map], [Filter], [Fold], and [ZipWith] are free functions
// rather than methods because Go methods cannot introduce new type
// parameters. ForEach and Fold visit slots from the highest index down to
// the lowest; this direction is part of the contract. Callbacks always see
// empty slots as nil references and must handle them explicitly.
//
// # Errors
//
// Fallible operations return sentinel errors ([ErrBounds], [ErrAllocation],
// [ErrNoContainer]) suitable for errors.Is. In-place growth cannot fail
// recoverably in Go; where the allocator would have been able to refuse,
// an invalid request resets the container to length 0, capacity 0 — a
// documented destructive failure mode, not a preserved-state error.
//
// Container is not safe for concurrent use without external
// synchronization.
package container
