package simplelist

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrEmptyList is returned by operations that require at least one element.
	ErrEmptyList = ierrors.New("list is empty")

	// ErrIndexOutOfRange is returned when a positional index is outside of [0, Size()).
	ErrIndexOutOfRange = ierrors.New("index out of range")

	// ErrLinkNotSet is returned when an unset next or prev link of a Node is dereferenced.
	ErrLinkNotSet = ierrors.New("link not set")

	// ErrSelfLink is returned when a Node is linked to itself.
	ErrSelfLink = ierrors.New("node cannot be linked to itself")

	// ErrInvalidValue is returned when a value violates the precondition of an operation.
	ErrInvalidValue = ierrors.New("invalid value")

	// ErrNotFound is returned when a value is not present in the list.
	ErrNotFound = ierrors.New("value not found")

	// ErrNilNode is returned when a nil Node is passed to an operation.
	ErrNilNode = ierrors.New("node must not be nil")

	// ErrNodeInUse is returned when a Node that is already a member of a list is added to a list.
	ErrNodeInUse = ierrors.New("node is already a member of a list")

	// ErrInvalidSentinelRole is returned when a Sentinel is used without a HEAD or TAIL role.
	ErrInvalidSentinelRole = ierrors.New("invalid sentinel role")
)
