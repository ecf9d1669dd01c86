package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// Node is a doubly linked cell that holds a single value. Nodes are allocated by the caller and linked into a list by
// reference, the zero value is an unlinked Node holding the zero value of T.
//
// A nil next or prev pointer means that the corresponding link is not set. The first element of a list has no prev
// link and the last element has no next link, the boundaries are tracked by the Sentinels of the owning list instead.
type Node[T constraints.Ordered] struct {
	// value is the value stored in the Node.
	value T

	// next and prev are the neighbours of the Node.
	next, prev *Node[T]

	// list is the list the Node is currently a member of.
	list *list[T]

	// owner is the list that allocated the Node and is responsible for releasing it.
	owner *list[T]
}

// NewNode creates a new unlinked Node holding the given value.
func NewNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in the Node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the value stored in the Node.
//
// Note: Changing the value of a member of a SortedList does not reorder the list.
func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// HasNext returns true if the next link of the Node is set.
func (n *Node[T]) HasNext() bool {
	return n.next != nil
}

// HasPrev returns true if the prev link of the Node is set.
func (n *Node[T]) HasPrev() bool {
	return n.prev != nil
}

// Next returns the Node linked after this Node or ErrLinkNotSet if there is none.
func (n *Node[T]) Next() (*Node[T], error) {
	if n.next == nil {
		return nil, ierrors.WithMessage(ErrLinkNotSet, "node has no next")
	}

	return n.next, nil
}

// Prev returns the Node linked before this Node or ErrLinkNotSet if there is none.
func (n *Node[T]) Prev() (*Node[T], error) {
	if n.prev == nil {
		return nil, ierrors.WithMessage(ErrLinkNotSet, "node has no prev")
	}

	return n.prev, nil
}

// SetNext sets the next link of the Node. Only this Node is modified. Members of a list are rejected with
// ErrNodeInUse.
func (n *Node[T]) SetNext(node *Node[T]) error {
	if err := n.checkLinkTarget(node); err != nil {
		return ierrors.Wrap(err, "failed to set next")
	}

	n.next = node

	return nil
}

// SetPrev sets the prev link of the Node. Only this Node is modified. Members of a list are rejected with
// ErrNodeInUse.
func (n *Node[T]) SetPrev(node *Node[T]) error {
	if err := n.checkLinkTarget(node); err != nil {
		return ierrors.Wrap(err, "failed to set prev")
	}

	n.prev = node

	return nil
}

// AppendNext splices the given Node immediately after this Node while keeping the previous successor (if any) linked
// after the inserted Node. Members of a list are rejected with ErrNodeInUse.
func (n *Node[T]) AppendNext(node *Node[T]) error {
	if err := n.checkLinkTarget(node); err != nil {
		return ierrors.Wrap(err, "failed to append next")
	}

	successor := n.next
	if successor == node {
		successor = node.next
	}

	node.next = successor
	if successor != nil {
		successor.prev = node
	}

	n.next = node
	node.prev = n

	return nil
}

// AppendPrev splices the given Node immediately before this Node while keeping the previous predecessor (if any)
// linked before the inserted Node. Members of a list are rejected with ErrNodeInUse.
func (n *Node[T]) AppendPrev(node *Node[T]) error {
	if err := n.checkLinkTarget(node); err != nil {
		return ierrors.Wrap(err, "failed to append prev")
	}

	predecessor := n.prev
	if predecessor == node {
		predecessor = node.prev
	}

	node.prev = predecessor
	if predecessor != nil {
		predecessor.next = node
	}

	n.prev = node
	node.next = n

	return nil
}

// Clear unsets both links of the Node. Members of a list are rejected with ErrNodeInUse.
func (n *Node[T]) Clear() error {
	if err := n.checkUnlinked(); err != nil {
		return ierrors.Wrap(err, "failed to clear links")
	}

	n.resetLinks()

	return nil
}

// ClearNext unsets the next link of the Node without touching the formerly linked Node. Members of a list are rejected
// with ErrNodeInUse.
func (n *Node[T]) ClearNext() error {
	if err := n.checkUnlinked(); err != nil {
		return ierrors.Wrap(err, "failed to clear next")
	}

	n.next = nil

	return nil
}

// ClearPrev unsets the prev link of the Node without touching the formerly linked Node. Members of a list are rejected
// with ErrNodeInUse.
func (n *Node[T]) ClearPrev() error {
	if err := n.checkUnlinked(); err != nil {
		return ierrors.Wrap(err, "failed to clear prev")
	}

	n.prev = nil

	return nil
}

// Equal returns true if other is the very same Node instance. Distinct Nodes holding equal values are not equal.
func (n *Node[T]) Equal(other *Node[T]) bool {
	return n == other
}

// Less returns true if the value of the Node is smaller than the value of other.
func (n *Node[T]) Less(other *Node[T]) bool {
	return lo.Compare(n.value, other.value) < 0
}

// LessOrEqual returns true if the value of the Node is smaller than or equal to the value of other.
func (n *Node[T]) LessOrEqual(other *Node[T]) bool {
	return lo.Compare(n.value, other.value) <= 0
}

// Greater returns true if the value of the Node is bigger than the value of other.
func (n *Node[T]) Greater(other *Node[T]) bool {
	return lo.Compare(n.value, other.value) > 0
}

// GreaterOrEqual returns true if the value of the Node is bigger than or equal to the value of other.
func (n *Node[T]) GreaterOrEqual(other *Node[T]) bool {
	return lo.Compare(n.value, other.value) >= 0
}

// String returns a human-readable version of the Node.
func (n *Node[T]) String() string {
	return stringify.Struct("Node",
		stringify.NewStructField("value", n.value),
		stringify.NewStructField("hasNext", n.HasNext()),
		stringify.NewStructField("hasPrev", n.HasPrev()),
	)
}

// checkLinkTarget checks if the given Node can be linked to this Node.
func (n *Node[T]) checkLinkTarget(node *Node[T]) error {
	if node == nil {
		return ErrNilNode
	}

	if node == n {
		return ErrSelfLink
	}

	if err := n.checkUnlinked(); err != nil {
		return err
	}

	if node.list != nil {
		return ierrors.WithMessagef(ErrNodeInUse, "target node with value %v", node.value)
	}

	return nil
}

// checkUnlinked checks that the links of the Node are not managed by a list.
func (n *Node[T]) checkUnlinked() error {
	if n.list != nil {
		return ierrors.WithMessagef(ErrNodeInUse, "node with value %v", n.value)
	}

	return nil
}

// resetLinks unsets both links of the Node without any membership check.
func (n *Node[T]) resetLinks() {
	n.next = nil
	n.prev = nil
}

// detach unsets the links and the list membership of the Node.
func (n *Node[T]) detach() *Node[T] {
	n.resetLinks()
	n.list = nil

	return n
}
