package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrInvalidCapacity is returned when a negative slot count is requested.
	ErrInvalidCapacity = fmt.Errorf("invalid capacity")

	// ErrOutOfMemory is returned when the requested block cannot be
	// represented in the address space.
	ErrOutOfMemory = fmt.Errorf("out of memory")
)

// Slots reserves a contiguous block of n slots for elements of type T and
// returns it without any element-level initialization beyond Go's mandatory
// zeroing. A zero request yields a nil block. The failure is surfaced to the
// caller; nothing is retried here.
func Slots[T any](n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}
	if n == 0 {
		return nil, nil
	}

	var zero T
	size := unsafe.Sizeof(zero)
	if size > 0 && uintptr(n) > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, size)
	}

	block := make([]T, n)
	if t := CurrentTracker(); t != nil {
		t.record(unsafe.Pointer(unsafe.SliceData(block)), n, uintptr(n)*size)
	}

	return block, nil
}

// Free returns a previously reserved block. It is a no-op on a nil block and
// must only be called with blocks obtained from Slots; handing back borrowed
// or aliased memory is reported by the active Tracker as a double free. The
// block is cleared so stale element references are dropped.
func Free[T any](block []T) {
	if block == nil {
		return
	}
	if t := CurrentTracker(); t != nil {
		t.release(unsafe.Pointer(unsafe.SliceData(block)))
	}
	clear(block)
}
