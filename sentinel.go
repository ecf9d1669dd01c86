package simplelist

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

// SentinelRole defines which boundary of a list a Sentinel marks.
type SentinelRole uint8

const (
	// SentinelRoleUnset is the zero value of a SentinelRole. A Sentinel with this role is unusable.
	SentinelRoleUnset SentinelRole = iota

	// SentinelRoleHead marks the beginning of a list. Its link points to the first element.
	SentinelRoleHead

	// SentinelRoleTail marks the end of a list. Its link points to the last element.
	SentinelRoleTail
)

// String returns a human-readable version of the SentinelRole.
func (s SentinelRole) String() string {
	switch s {
	case SentinelRoleHead:
		return "HEAD"
	case SentinelRoleTail:
		return "TAIL"
	default:
		return "UNSET"
	}
}

// Sentinel is a fixed boundary marker of a list. A HEAD Sentinel references the first element and a TAIL Sentinel
// references the last element of a list. Sentinels are owned by their list and must not be copied.
type Sentinel[T constraints.Ordered] struct {
	noCopy noCopy

	// role is the immutable role of the Sentinel.
	role SentinelRole

	// node is the boundary element the Sentinel points to.
	node *Node[T]
}

// NewSentinel creates a new Sentinel with the given role.
func NewSentinel[T constraints.Ordered](role SentinelRole) (*Sentinel[T], error) {
	s := new(Sentinel[T])
	if err := s.init(role); err != nil {
		return nil, err
	}

	return s, nil
}

// Role returns the role of the Sentinel.
func (s *Sentinel[T]) Role() SentinelRole {
	return s.role
}

// Set attaches the given Node to the Sentinel: a HEAD Sentinel links it as its next, a TAIL Sentinel as its prev.
func (s *Sentinel[T]) Set(node *Node[T]) error {
	if s.role != SentinelRoleHead && s.role != SentinelRoleTail {
		return ierrors.WithMessagef(ErrInvalidSentinelRole, "cannot attach node to %s sentinel", s.role)
	}

	if node == nil {
		return ierrors.Wrapf(ErrNilNode, "cannot attach nil to %s sentinel", s.role)
	}

	s.node = node

	return nil
}

// Node returns the Node attached to the Sentinel and a flag that indicates if one is attached.
func (s *Sentinel[T]) Node() (node *Node[T], isSet bool) {
	return s.node, s.node != nil
}

// IsSet returns true if a Node is attached to the Sentinel.
func (s *Sentinel[T]) IsSet() bool {
	return s.node != nil
}

// Clear detaches the Node from the Sentinel.
func (s *Sentinel[T]) Clear() {
	s.node = nil
}

// String returns a human-readable version of the Sentinel.
func (s *Sentinel[T]) String() string {
	return stringify.Struct("Sentinel",
		stringify.NewStructField("role", s.role.String()),
		stringify.NewStructField("isSet", s.IsSet()),
	)
}

// init sets the role of a zero Sentinel.
func (s *Sentinel[T]) init(role SentinelRole) error {
	if role != SentinelRoleHead && role != SentinelRoleTail {
		return ierrors.WithMessagef(ErrInvalidSentinelRole, "role %d", role)
	}

	s.role = role
	s.node = nil

	return nil
}

// noCopy may be embedded into structs which must not be copied after the first use (checked by go vet -copylocks).
type noCopy struct{}

// Lock is a no-op used by go vet -copylocks.
func (*noCopy) Lock() {}

// Unlock is a no-op used by go vet -copylocks.
func (*noCopy) Unlock() {}
