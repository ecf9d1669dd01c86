package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
)

// InsertionOrderList is a List that keeps its elements in the order they were added at either end.
//
// The list borrows the Nodes it is handed: it links them, but ownership stays with the caller. The zero value is an
// empty list without a logger.
type InsertionOrderList[T constraints.Ordered] struct {
	list[T]
}

// NewInsertionOrderList creates a new empty InsertionOrderList.
func NewInsertionOrderList[T constraints.Ordered](opts ...options.Option[Options]) *InsertionOrderList[T] {
	i := new(InsertionOrderList[T])
	i.init(opts...)

	return i
}

// Add links the given Node at the back of the list.
func (i *InsertionOrderList[T]) Add(node *Node[T]) error {
	return i.AddBack(node)
}

// AddBack links the given Node after the last element of the list.
func (i *InsertionOrderList[T]) AddBack(node *Node[T]) error {
	if err := i.admit(node); err != nil {
		return ierrors.Wrap(err, "failed to add node at the back")
	}

	i.pushBack(node)

	return nil
}

// AddFront links the given Node before the first element of the list.
func (i *InsertionOrderList[T]) AddFront(node *Node[T]) error {
	if err := i.admit(node); err != nil {
		return ierrors.Wrap(err, "failed to add node at the front")
	}

	i.pushFront(node)

	return nil
}

// RemoveFront unlinks the first element of the list and returns it.
func (i *InsertionOrderList[T]) RemoveFront() (*Node[T], error) {
	return i.removeFront()
}

// RemoveBack unlinks the last element of the list and returns it.
func (i *InsertionOrderList[T]) RemoveBack() (*Node[T], error) {
	return i.removeBack()
}

// Remove unlinks the element at the given position (counted from the front) and returns it.
func (i *InsertionOrderList[T]) Remove(index int32) (*Node[T], error) {
	i.lazyInit()

	if i.IsEmpty() {
		return nil, i.reject(ierrors.WithMessagef(ErrEmptyList, "cannot remove index %d", index), "remove")
	}

	if index < 0 || index >= i.size {
		return nil, i.reject(ierrors.WithMessagef(ErrIndexOutOfRange, "index %d, size %d", index, i.size), "remove")
	}

	return i.unlink(i.nodeAt(index)), nil
}

// String returns a human-readable version of the list.
func (i *InsertionOrderList[T]) String() string {
	return i.describe("InsertionOrderList")
}

// code contract (make sure the type implements all required methods).
var _ List[int] = &InsertionOrderList[int]{}
