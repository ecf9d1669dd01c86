package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// List represents the contract that is shared by all list variants. A List links caller supplied Nodes into a chain
// that is bounded by a HEAD and a TAIL Sentinel.
//
// Lists are not thread-safe, concurrent access has to be synchronized by the caller.
type List[T constraints.Ordered] interface {
	// Size returns the number of elements in the List.
	Size() int32

	// IsEmpty returns true if the List has no elements.
	IsEmpty() bool

	// First returns the first element of the List or ErrEmptyList if it is empty.
	First() (*Node[T], error)

	// Last returns the last element of the List or ErrEmptyList if it is empty.
	Last() (*Node[T], error)

	// Add links the given Node into the List according to the ordering policy of the List.
	Add(node *Node[T]) error

	// RemoveFront unlinks the first element of the List and hands it back to the caller.
	RemoveFront() (*Node[T], error)

	// Apply executes the given callback for each element of the List from the front to the back.
	Apply(callback func(node *Node[T]))

	// ApplyReverse executes the given callback for each element of the List from the back to the front.
	ApplyReverse(callback func(node *Node[T]))

	// Values returns a slice of the values of all elements in the List.
	Values() []T

	// String returns a human-readable version of the List.
	String() string
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
