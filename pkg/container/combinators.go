package container

// VisitFunc is the callback for [ForEach]. It receives the address of the
// current slot (reassignable in place), the slot's index, and the container
// being traversed. Returning true stops the traversal. The slot may hold a
// nil reference; callbacks must handle absence explicitly.
type VisitFunc[T any] func(slot **T, index int, c *Container[T]) (stop bool)

// MapFunc is the callback for [Map]. It receives the current element (nil
// for an empty slot), its index, and the source container, and returns the
// transformed element. The callback owns the production of its result; the
// source is never mutated.
type MapFunc[T, U any] func(ref *T, index int, c *Container[T]) *U

// Predicate is the callback for [Filter]. Elements for which it returns
// true are included. The element is nil for an empty slot.
type Predicate[T any] func(ref *T, index int, c *Container[T]) bool

// FoldFunc is the callback for [Fold]. It mutates the accumulator in place
// given the current element (nil for an empty slot), its index, and the
// container.
type FoldFunc[T, A any] func(acc *A, ref *T, index int, c *Container[T])

// ZipFunc is the callback for [ZipWith]. It receives the elements at the
// same index of both containers (nil for empty slots), the index, and both
// source containers, and returns the combined element.
type ZipFunc[T, U, V any] func(a *T, b *U, index int, ca *Container[T], cb *Container[U]) *V

// ForEach visits every slot from the highest index down to the lowest,
// calling fn on each. The downward direction is a deliberate, reproducible
// contract. Traversal stops as soon as fn returns true. A nil container is
// a no-op.
func ForEach[T any](c *Container[T], fn VisitFunc[T]) {
	if c == nil {
		return
	}
	for i := c.length - 1; i >= 0; i-- {
		if fn(&c.buf[i], i, c) {
			break
		}
	}
}

// Map builds a new container of equal length where result[i] = fn(c[i], i, c)
// for every index. The traversal runs high to low internally, but results
// are written back by index, so the output is index-preserving regardless.
// A nil container maps to an empty container.
func Map[T, U any](c *Container[T], fn MapFunc[T, U]) *Container[U] {
	if c == nil {
		return newContainer[U](0)
	}
	out := newContainer[U](c.length)
	for i := c.length - 1; i >= 0; i-- {
		out.buf[i] = fn(c.buf[i], i, c)
	}
	return out
}

// Filter builds a new container containing, in their original relative
// order, exactly the elements for which fn returns true. An all-false
// predicate yields a length-0 container.
func Filter[T any](c *Container[T], fn Predicate[T]) *Container[T] {
	out := newContainer[T](0)
	if c == nil {
		return out
	}
	for i := 0; i < c.length; i++ {
		if fn(c.buf[i], i, c) {
			out.Append(c.buf[i])
		}
	}
	return out
}

// Fold performs a right fold: slots are visited from the highest index to
// the lowest, and fn mutates acc in place at each step. There is no
// separate result value; the fold ends up in the accumulator, whose
// initial value the caller sets beforehand.
func Fold[T, A any](c *Container[T], acc *A, fn FoldFunc[T, A]) {
	if c == nil {
		return
	}
	for i := c.length - 1; i >= 0; i-- {
		fn(acc, c.buf[i], i, c)
	}
}

// ZipWith builds a new container of length min(len(a), len(b)) where
// result[i] = fn(a[i], b[i], i, a, b). A nil input zips as length 0.
func ZipWith[T, U, V any](a *Container[T], b *Container[U], fn ZipFunc[T, U, V]) *Container[V] {
	if a == nil || b == nil {
		return newContainer[V](0)
	}
	n := a.length
	if b.length < n {
		n = b.length
	}
	out := newContainer[V](n)
	for i := 0; i < n; i++ {
		out.buf[i] = fn(a.buf[i], b.buf[i], i, a, b)
	}
	return out
}
