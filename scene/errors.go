package scene

import "errors"

var (
	// ErrMissingTarget is returned for a pointer event with no target.
	// Nothing is added and nothing is redrawn.
	ErrMissingTarget = errors.New("scene: pointer event has no target")

	// ErrKindMismatch is returned when a shape is added to the queue of
	// another kind.
	ErrKindMismatch = errors.New("scene: shape kind does not match queue")

	// ErrInvalidCapacity is returned for a queue capacity below one.
	ErrInvalidCapacity = errors.New("scene: queue capacity must be positive")
)
