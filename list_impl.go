package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// region list /////////////////////////////////////////////////////////////////////////////////////////////////////////

// list implements the behavior that is shared by all List variants. The zero value is an empty list that is
// initialized on first use.
type list[T constraints.Ordered] struct {
	// head and tail are the Sentinels that mark the beginning and the end of the list.
	head, tail Sentinel[T]

	// size is the number of elements between head and tail.
	size int32

	// logger is used to trace structural mutations.
	logger log.Logger
}

// newList returns a new empty list instance.
func newList[T constraints.Ordered](opts ...options.Option[Options]) *list[T] {
	l := new(list[T])
	l.init(opts...)

	return l
}

// init initializes the Sentinels and the logger of the list.
func (l *list[T]) init(opts ...options.Option[Options]) {
	l.logger = newOptions(opts...).Logger

	if err := l.head.init(SentinelRoleHead); err != nil {
		panic(err)
	}
	if err := l.tail.init(SentinelRoleTail); err != nil {
		panic(err)
	}

	l.size = 0
}

// lazyInit lazily initializes a zero list value.
func (l *list[T]) lazyInit() {
	if l.head.Role() == SentinelRoleUnset {
		l.init()
	}
}

// Size returns the number of elements in the list.
func (l *list[T]) Size() int32 {
	return l.size
}

// IsEmpty returns true if the list has no elements.
func (l *list[T]) IsEmpty() bool {
	return l.size == 0
}

// First returns the first element of the list or ErrEmptyList if it is empty.
func (l *list[T]) First() (*Node[T], error) {
	first, isSet := l.head.Node()
	if !isSet {
		return nil, ierrors.WithMessage(ErrEmptyList, "list has no first element")
	}

	return first, nil
}

// Last returns the last element of the list or ErrEmptyList if it is empty.
func (l *list[T]) Last() (*Node[T], error) {
	last, isSet := l.tail.Node()
	if !isSet {
		return nil, ierrors.WithMessage(ErrEmptyList, "list has no last element")
	}

	return last, nil
}

// Apply executes the given callback for each element of the list from the front to the back. The successor of an
// element is determined before the callback is executed.
func (l *list[T]) Apply(callback func(node *Node[T])) {
	for current := l.head.node; current != nil; {
		next := current.next
		callback(current)
		current = next
	}
}

// ApplyReverse executes the given callback for each element of the list from the back to the front.
func (l *list[T]) ApplyReverse(callback func(node *Node[T])) {
	for current := l.tail.node; current != nil; {
		prev := current.prev
		callback(current)
		current = prev
	}
}

// Values returns a slice of the values of all elements in the list.
func (l *list[T]) Values() []T {
	values := make([]T, 0, l.size)

	l.Apply(func(node *Node[T]) {
		values = append(values, node.value)
	})

	return values
}

// describe returns a human-readable version of the list using the given type name.
func (l *list[T]) describe(name string) string {
	return stringify.Struct(name,
		stringify.NewStructField("size", l.size),
		stringify.NewStructField("values", l.Values()),
	)
}

// admit checks if the given Node can be linked into the list.
func (l *list[T]) admit(node *Node[T]) error {
	l.lazyInit()

	if node == nil {
		return l.reject(ErrNilNode, "add")
	}

	if node.list != nil {
		return l.reject(ierrors.WithMessagef(ErrNodeInUse, "node with value %v", node.value), "add")
	}

	return nil
}

// reject logs the given error of a rejected operation and returns it.
func (l *list[T]) reject(err error, operation string) error {
	l.logger.LogDebug("rejected operation", "operation", operation, "err", err)

	return err
}

// linkSole links the given Node as the only element of an empty list.
func (l *list[T]) linkSole(node *Node[T]) {
	node.resetLinks()
	l.setBoundary(&l.head, node)
	l.setBoundary(&l.tail, node)

	l.adopt(node, "linkSole")
}

// pushBack links the given Node after the current last element.
func (l *list[T]) pushBack(node *Node[T]) {
	if l.IsEmpty() {
		l.linkSole(node)

		return
	}

	l.insertAfter(node, l.tail.node)
}

// pushFront links the given Node before the current first element.
func (l *list[T]) pushFront(node *Node[T]) {
	if l.IsEmpty() {
		l.linkSole(node)

		return
	}

	l.insertBefore(node, l.head.node)
}

// insertAfter links the given Node immediately after the member at.
func (l *list[T]) insertAfter(node, at *Node[T]) {
	node.prev = at
	node.next = at.next

	if at.next != nil {
		at.next.prev = node
	} else {
		l.setBoundary(&l.tail, node)
	}
	at.next = node

	l.adopt(node, "insertAfter")
}

// insertBefore links the given Node immediately before the member at.
func (l *list[T]) insertBefore(node, at *Node[T]) {
	node.next = at
	node.prev = at.prev

	if at.prev != nil {
		at.prev.next = node
	} else {
		l.setBoundary(&l.head, node)
	}
	at.prev = node

	l.adopt(node, "insertBefore")
}

// adopt marks the freshly linked Node as a member and increments the size.
func (l *list[T]) adopt(node *Node[T], operation string) {
	node.list = l
	l.size++

	l.logger.LogTrace("linked node", "operation", operation, "value", node.value, "size", l.size)
}

// setBoundary attaches the given Node to the Sentinel or clears the Sentinel if the Node is nil.
func (l *list[T]) setBoundary(sentinel *Sentinel[T], node *Node[T]) {
	if node == nil {
		sentinel.Clear()

		return
	}

	if err := sentinel.Set(node); err != nil {
		panic(err)
	}
}

// unlink removes the given member from the list, hands ownership back to the caller and returns it. If the Node was
// the only element, both Sentinels end up unset.
func (l *list[T]) unlink(node *Node[T]) *Node[T] {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.setBoundary(&l.head, node.next)
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.setBoundary(&l.tail, node.prev)
	}

	l.size--
	node.owner = nil

	l.logger.LogTrace("unlinked node", "value", node.value, "size", l.size)

	return node.detach()
}

// removeFront unlinks the first element.
func (l *list[T]) removeFront() (*Node[T], error) {
	l.lazyInit()

	if l.IsEmpty() {
		return nil, l.reject(ierrors.WithMessage(ErrEmptyList, "cannot remove front"), "removeFront")
	}

	return l.unlink(l.head.node), nil
}

// removeBack unlinks the last element.
func (l *list[T]) removeBack() (*Node[T], error) {
	l.lazyInit()

	if l.IsEmpty() {
		return nil, l.reject(ierrors.WithMessage(ErrEmptyList, "cannot remove back"), "removeBack")
	}

	return l.unlink(l.tail.node), nil
}

// nodeAt returns the member at the given position, which must be within [0, size). The walk starts at the closer end.
func (l *list[T]) nodeAt(index int32) *Node[T] {
	if index < l.size/2 {
		current := l.head.node
		for i := int32(0); i < index; i++ {
			current = current.next
		}

		return current
	}

	current := l.tail.node
	for i := l.size - 1; i > index; i-- {
		current = current.prev
	}

	return current
}

// find returns the first member holding the given value.
func (l *list[T]) find(value T) (node *Node[T], exists bool) {
	for current := l.head.node; current != nil; current = current.next {
		if current.value == value {
			return current, true
		}
	}

	return nil, false
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
