package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
)

// SortedList is a List that keeps its elements in non-decreasing order of their values. Elements with equal values
// keep the order in which they were added.
//
// The list borrows the Nodes it is handed: it links them, but ownership stays with the caller. The zero value is an
// empty list without a logger.
type SortedList[T constraints.Ordered] struct {
	list[T]
}

// NewSortedList creates a new empty SortedList.
func NewSortedList[T constraints.Ordered](opts ...options.Option[Options]) *SortedList[T] {
	s := new(SortedList[T])
	s.init(opts...)

	return s
}

// Add links the given Node before the first element with a strictly bigger value or at the back of the list if there
// is none.
func (s *SortedList[T]) Add(node *Node[T]) error {
	if err := s.admit(node); err != nil {
		return ierrors.Wrap(err, "failed to add node")
	}

	if s.IsEmpty() {
		s.linkSole(node)

		return nil
	}

	for current := s.head.node; ; current = current.next {
		if node.Less(current) {
			s.insertBefore(node, current)

			return nil
		}

		if current.next == nil {
			s.insertAfter(node, current)

			return nil
		}
	}
}

// RemoveValue unlinks the first element holding the given value and returns it. Values are expected to be
// non-negative, a negative value is rejected with ErrInvalidValue.
func (s *SortedList[T]) RemoveValue(value T) (*Node[T], error) {
	s.lazyInit()

	if s.IsEmpty() {
		return nil, s.reject(ierrors.WithMessagef(ErrEmptyList, "cannot remove value %v", value), "removeValue")
	}

	var zeroValue T
	if value < zeroValue {
		return nil, s.reject(ierrors.WithMessagef(ErrInvalidValue, "value %v must not be negative", value), "removeValue")
	}

	node, exists := s.find(value)
	if !exists {
		return nil, s.reject(ierrors.WithMessagef(ErrNotFound, "value %v", value), "removeValue")
	}

	return s.unlink(node), nil
}

// RemoveFront unlinks the first element (the one with the smallest value) and returns it.
func (s *SortedList[T]) RemoveFront() (*Node[T], error) {
	return s.removeFront()
}

// String returns a human-readable version of the list.
func (s *SortedList[T]) String() string {
	return s.describe("SortedList")
}

// code contract (make sure the type implements all required methods).
var _ List[int] = &SortedList[int]{}
