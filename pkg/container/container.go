package container

import "errors"

var (
	// ErrAllocation is returned when backing storage cannot be obtained:
	// a negative length, a zero or negative stride, or a projection that
	// would overrun its buffer. Construction operations fail cleanly with
	// no partial structure; see [Container.Resize] for the destructive
	// failure mode of in-place growth.
	ErrAllocation = errors.New("cannot allocate backing storage")

	// ErrBounds is returned by [Container.At], [Container.Get],
	// [Container.Set], and [Container.Slice] when an index falls outside
	// [0, length).
	ErrBounds = errors.New("index out of bounds")

	// ErrNoContainer is returned by [Join] when either input is nil.
	ErrNoContainer = errors.New("container must not be nil")
)

// Container is a growable indexed sequence of opaque references.
// Each slot holds a *T pointing at caller-owned data, or nil for empty.
// The zero value is an empty container with no backing storage.
type Container[T any] struct {
	buf    []*T // allocated slots; len(buf) is the capacity
	length int
}

// New creates a container of the given length with every slot empty and
// capacity equal to length. Returns [ErrAllocation] if n is negative.
func New[T any](n int) (*Container[T], error) {
	if n < 0 {
		return nil, ErrAllocation
	}
	c := &Container[T]{length: n}
	if n > 0 {
		c.buf = make([]*T, n)
	}
	return c, nil
}

// Of creates a container holding the given references in order, with
// capacity equal to the number of references. It replaces ad-hoc
// construction loops for literal sequences.
func Of[T any](refs ...*T) *Container[T] {
	c := newContainer[T](len(refs))
	copy(c.buf, refs)
	return c
}

// newContainer is New for lengths already known to be non-negative.
func newContainer[T any](n int) *Container[T] {
	c := &Container[T]{length: n}
	if n > 0 {
		c.buf = make([]*T, n)
	}
	return c
}

// Len returns the logical element count.
func (c *Container[T]) Len() int { return c.length }

// Cap returns the number of allocated slots. Cap is zero exactly when the
// container has no backing storage.
func (c *Container[T]) Cap() int { return len(c.buf) }

// At returns the address of the slot at index i, readable and writable in
// place, or [ErrBounds] if i falls outside [0, length). Writing through
// the returned address replaces the slot's reference directly:
//
//	slot, err := c.At(2)
//	if err == nil {
//	    *slot = &payload
//	}
func (c *Container[T]) At(i int) (**T, error) {
	if i < 0 || i >= c.length {
		return nil, ErrBounds
	}
	return &c.buf[i], nil
}

// Get returns the reference held by the slot at index i (nil for an empty
// slot), or [ErrBounds] if i is out of range.
func (c *Container[T]) Get(i int) (*T, error) {
	if i < 0 || i >= c.length {
		return nil, ErrBounds
	}
	return c.buf[i], nil
}

// Set stores ref in the slot at index i, or returns [ErrBounds] if i is
// out of range. A nil ref empties the slot.
func (c *Container[T]) Set(i int, ref *T) error {
	if i < 0 || i >= c.length {
		return ErrBounds
	}
	c.buf[i] = ref
	return nil
}

// Resize grows or shrinks the logical length.
//
// Growing beyond the current capacity reallocates storage sized exactly to
// n — an explicit resize never over-allocates — and newly exposed slots are
// empty. Growing within capacity likewise exposes only empty slots.
// Shrinking to a positive length truncates the tail without cleaning up the
// removed references; shrinking to 0 releases the backing storage and
// resets capacity to 0.
//
// A request the allocator cannot satisfy destructively resets the
// container to length 0, capacity 0, discarding prior contents, and
// returns [ErrAllocation]. Callers that need the old contents preserved
// across a failed grow must copy first.
func (c *Container[T]) Resize(n int) error {
	if n < 0 {
		c.buf = nil
		c.length = 0
		return ErrAllocation
	}
	if n == 0 {
		c.buf = nil
		c.length = 0
		return nil
	}

	old := c.length
	if n > len(c.buf) {
		// Copy only the live prefix; slots past the old length may hold
		// stale references from an earlier truncation.
		grown := make([]*T, n)
		copy(grown, c.buf[:old])
		c.buf = grown
	} else if n > old {
		for i := old; i < n; i++ {
			c.buf[i] = nil
		}
	}
	c.length = n
	return nil
}

// Append writes ref at the next free slot, growing the length by one.
// If spare capacity exists the write happens in place; otherwise the
// capacity doubles (or a single slot is allocated for an empty container)
// before writing.
func (c *Container[T]) Append(ref *T) {
	switch {
	case len(c.buf) > c.length:
		c.buf[c.length] = ref
		c.length++
	case c.length > 0:
		grown := make([]*T, c.length*2)
		copy(grown, c.buf)
		grown[c.length] = ref
		c.buf = grown
		c.length++
	default:
		c.buf = []*T{ref}
		c.length = 1
	}
}

// Slice returns a new container holding a shallow copy of the slots in
// [from, to], both endpoints included. Returns [ErrBounds] if from > to,
// from is negative, or to >= length. The copy shares element references
// with c but not slot storage: reassigning a slot in one is never visible
// in the other.
func (c *Container[T]) Slice(from, to int) (*Container[T], error) {
	if from < 0 || from > to || to >= c.length {
		return nil, ErrBounds
	}
	out := newContainer[T](to - from + 1)
	copy(out.buf, c.buf[from:to+1])
	return out, nil
}

// Copy returns a shallow copy of the whole container. Any over-allocated
// capacity is trimmed to the length. Copying an empty container yields a
// new empty container.
func (c *Container[T]) Copy() *Container[T] {
	if c.length == 0 {
		return newContainer[T](0)
	}
	out, _ := c.Slice(0, c.length-1)
	return out
}

// Join returns a new container holding a's slots followed by b's slots in
// their original order. Returns [ErrNoContainer] if either input is nil.
func Join[T any](a, b *Container[T]) (*Container[T], error) {
	if a == nil || b == nil {
		return nil, ErrNoContainer
	}
	out := newContainer[T](a.length + b.length)
	copy(out.buf, a.buf[:a.length])
	copy(out.buf[a.length:], b.buf[:b.length])
	return out, nil
}

// Project builds a view container over an externally owned buffer: the
// i-th slot references buf[i*stride] in place, so writes through the
// container's references are visible in the buffer and vice versa. The
// buffer is never copied and remains owned by the caller.
//
// Returns [ErrAllocation] if n is negative or stride is less than one,
// and [ErrBounds] if the projection would overrun the buffer.
func Project[T any](buf []T, n, stride int) (*Container[T], error) {
	if n < 0 || stride < 1 {
		return nil, ErrAllocation
	}
	if n > 0 && (n-1)*stride >= len(buf) {
		return nil, ErrBounds
	}
	c := newContainer[T](n)
	for i := 0; i < n; i++ {
		c.buf[i] = &buf[i*stride]
	}
	return c, nil
}

// Destroy releases the backing storage and resets the container to length
// 0, capacity 0. Referenced elements are never touched.
func (c *Container[T]) Destroy() {
	c.buf = nil
	c.length = 0
}
