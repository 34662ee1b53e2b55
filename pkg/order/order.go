// Package order defines the three-valued comparator contract consumed by
// collaborators of the container toolkit.
//
// The core does not sort. An [Ordering] compares two opaque references and
// must return [Incomparable] when either operand is absent or the operands
// cannot be meaningfully compared, rather than guessing an order.
package order

import "cmp"

// Order is the outcome of comparing two opaque references.
type Order int

const (
	// Equal means both operands compare the same.
	Equal Order = iota
	// Less means the left operand orders before the right.
	Less
	// Greater means the left operand orders after the right.
	Greater
	// Incomparable means at least one operand is absent or the pair has
	// no meaningful order.
	Incomparable
)

// String returns the lower-case name of the order.
func (o Order) String() string {
	switch o {
	case Equal:
		return "equal"
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return "unknown"
	}
}

// Ordering compares the referenced values of lhs and rhs. Implementations
// must return [Incomparable] for nil operands.
type Ordering[T any] func(lhs, rhs *T) Order

// ByOrdered returns an Ordering over any naturally ordered type, treating
// a nil operand as incomparable.
func ByOrdered[T cmp.Ordered]() Ordering[T] {
	return func(lhs, rhs *T) Order {
		if lhs == nil || rhs == nil {
			return Incomparable
		}
		switch cmp.Compare(*lhs, *rhs) {
		case -1:
			return Less
		case 1:
			return Greater
		default:
			return Equal
		}
	}
}
