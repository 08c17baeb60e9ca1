package Trees

import "errors"

var (
	// ErrInvalidSize is returned when a tree is built with a negative count, or a count
	// too large for the size type.
	ErrInvalidSize = errors.New("invalid tree size")
	// ErrKeyNotFound is returned when a key was never in the tree or was already deleted.
	ErrKeyNotFound = errors.New("key not found")
	// ErrRankOutOfRange is returned when a rank isn't smaller than the tree's size.
	ErrRankOutOfRange = errors.New("rank out of range")
)

// InvariantViolation is the panic value raised when the tree finds itself corrupt:
// a rotation without the child it needs, or a splay step on a node whose parent
// doesn't own it. It's a bug in this package and the tree is unusable afterward.
type InvariantViolation string

func (e InvariantViolation) Error() string {
	return "splay tree invariant violated: " + string(e)
}
