package boundedqueue

import "github.com/pkg/errors"

// ErrInvalidCapacity is the panic value (wrapped with the offending capacity)
// raised when a ring or queue is constructed with a capacity below 1.
var ErrInvalidCapacity = errors.New("boundedqueue: capacity must be positive")

// CheckCapacity panics when capacity is not positive.
func CheckCapacity(capacity int) {
	if capacity < 1 {
		panic(errors.Wrapf(ErrInvalidCapacity, "got %d", capacity))
	}
}
