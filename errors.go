package slicekit

import "fmt"

var (
	// ErrNilBuffer is returned when the buffer-adopting constructor is given
	// a nil buffer paired with a nonzero element count.
	ErrNilBuffer = fmt.Errorf("buffer is nil with nonzero count")

	// ErrInvalidCount is returned when an adopted element count is negative
	// or exceeds the supplied buffer.
	ErrInvalidCount = fmt.Errorf("invalid element count")

	// ErrOutOfRange is returned by At when the index is not inside the live
	// prefix of the container.
	ErrOutOfRange = fmt.Errorf("index out of range")

	// ErrInvalidRange is returned by Sub when the requested bounds do not
	// form a nonempty range inside the live prefix.
	ErrInvalidRange = fmt.Errorf("invalid subrange")

	// ErrCapacityExceeded is returned by Emplace when every reserved slot is
	// already live. The container never grows.
	ErrCapacityExceeded = fmt.Errorf("capacity exceeded")

	// ErrReleased is returned by operations on a container after Release.
	ErrReleased = fmt.Errorf("slice already released")
)
