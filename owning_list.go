package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
)

// OwningInsertionOrderList is an InsertionOrderList that allocates its own Nodes from a slice of values and is
// responsible for releasing them again.
//
// Nodes that are removed from the list revert to the ownership of the caller. Nodes that are added by the caller are
// only borrowed and are never released by the list. The zero value is an empty list without a logger.
type OwningInsertionOrderList[T constraints.Ordered] struct {
	InsertionOrderList[T]
}

// NewOwningInsertionOrderList creates a new list that allocates and owns one Node per value, appended in the order of
// the given values.
func NewOwningInsertionOrderList[T constraints.Ordered](values []T, opts ...options.Option[Options]) *OwningInsertionOrderList[T] {
	o := new(OwningInsertionOrderList[T])
	o.init(opts...)

	lo.ForEach(values, func(value T) {
		node := NewNode(value)
		node.owner = &o.list

		o.pushBack(node)
	})

	return o
}

// Owns returns true if the given Node was allocated by the list and is still owned by it.
func (o *OwningInsertionOrderList[T]) Owns(node *Node[T]) bool {
	return node != nil && node.owner == &o.list
}

// Release unlinks every element of the list and resets the Nodes that are owned by the list to their zero state.
// Borrowed Nodes are unlinked but keep their value. It returns the number of released Nodes, the list is empty
// afterwards.
func (o *OwningInsertionOrderList[T]) Release() (released int) {
	o.lazyInit()

	o.Apply(func(node *Node[T]) {
		if !o.Owns(node) {
			o.unlink(node)

			return
		}

		var zeroValue T
		o.unlink(node).value = zeroValue
		released++
	})

	o.logger.LogTrace("released owned nodes", "released", released)

	return released
}

// String returns a human-readable version of the list.
func (o *OwningInsertionOrderList[T]) String() string {
	return o.describe("OwningInsertionOrderList")
}

// code contract (make sure the type implements all required methods).
var _ List[int] = &OwningInsertionOrderList[int]{}
