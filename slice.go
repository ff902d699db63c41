// Package slicekit implements a fixed-extent generic sequence container over
// a contiguous block of homogeneous element slots, inspired by Go's built-in
// slice model but with explicit storage ownership and element lifetime.
//
// A Slice is produced exactly once by one of five constructors (New,
// WithCapacity, FromBuffer, FromSlice, Of), never grows or shrinks, and is
// torn down exactly once by Release. The prefix [0, Len()) holds live values;
// the remaining slots up to Cap() are reserved and only become live through
// Emplace. Sub derives borrowed views that alias the parent's storage without
// copying; a view's validity is bounded by its parent's storage staying
// reserved.
//
// Element types may opt into capabilities through small interfaces: Mover for
// destructive transfer, Cloner for fallible duplication, Releaser for
// destructor-like cleanup. Capability-free types are moved by plain
// assignment and need no teardown.
package slicekit

import (
	"fmt"
	"strings"

	"github.com/hupe1980/slicekit/alloc"
)

// Slice is a fixed-extent container over contiguous element slots.
//
// Invariants:
//   - storage is nil iff Cap() == 0
//   - 0 <= Len() <= Cap()
//   - slots [0, Len()) hold live values, slots [Len(), Cap()) are reserved
//   - a borrowed Slice never destroys elements or frees the block it aliases
//
// A Slice is not safe for concurrent use.
type Slice[T any] struct {
	storage  []T
	length   int
	owned    bool
	released bool
}

// New creates an empty Slice. It never fails.
func New[T any]() *Slice[T] {
	return &Slice[T]{}
}

// WithCapacity creates a Slice with the given number of reserved slots and a
// live length of zero. Reserved slots only become readable after Emplace has
// placed a value in them.
func WithCapacity[T any](capacity int) (*Slice[T], error) {
	block, err := alloc.Slots[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Slice[T]{storage: block, owned: true}, nil
}

// FromBuffer adopts the first count elements of an existing buffer as the
// container's storage, without allocating or copying. Length and capacity
// both become count. The resulting Slice is borrowed: it neither destroys
// the adopted elements nor frees the buffer on Release; both stay the
// caller's responsibility.
func FromBuffer[T any](buf []T, count int) (*Slice[T], error) {
	if buf == nil && count > 0 {
		return nil, fmt.Errorf("%w: count %d", ErrNilBuffer, count)
	}
	if count < 0 || count > len(buf) {
		return nil, fmt.Errorf("%w: count %d for buffer of %d", ErrInvalidCount, count, len(buf))
	}
	if count == 0 {
		return &Slice[T]{}, nil
	}
	return &Slice[T]{storage: buf[:count:count], length: count}, nil
}

// FromSlice builds a Slice sized exactly to src, constructing each element in
// order by the cheapest capability T offers: Move when T implements Mover
// (sources are left moved-from), Clone when it implements Cloner, plain
// assignment otherwise. If constructing element i fails, the already built
// prefix [0, i) is destroyed, the storage is freed and the element's original
// error is returned; a half-built Slice is never observable.
func FromSlice[T any](src []T) (*Slice[T], error) {
	return build(src)
}

// Of builds a Slice from a fixed list of values under the same
// construct/rollback discipline as FromSlice.
func Of[T any](values ...T) (*Slice[T], error) {
	return build(values)
}

func build[T any](src []T) (*Slice[T], error) {
	block, err := alloc.Slots[T](len(src))
	if err != nil {
		return nil, err
	}

	built, err := constructInto(block, src)
	if err != nil {
		destroyPrefix(block, built)
		alloc.Free(block)
		return nil, err
	}

	return &Slice[T]{storage: block, length: len(src), owned: true}, nil
}

// Len returns the count of live elements.
func (s *Slice[T]) Len() int {
	return s.length
}

// Cap returns the count of reserved slots.
func (s *Slice[T]) Cap() int {
	return len(s.storage)
}

// Owned reports whether the Slice allocated its own storage, as opposed to
// borrowing a caller's buffer or another Slice's subrange.
func (s *Slice[T]) Owned() bool {
	return s.owned
}

// At returns a mutable reference to the live element at index i. The single
// unsigned comparison also rejects negative indexes.
func (s *Slice[T]) At(i int) (*T, error) {
	if s.released {
		return nil, ErrReleased
	}
	if uint(i) >= uint(s.length) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, s.length)
	}
	return &s.storage[i], nil
}

// Sub derives a borrowed view over the live subrange [i, f). The view aliases
// the parent's storage element for element, with length and capacity f-i; no
// elements are copied and the parent's lifetime is not extended. The bounds
// must satisfy i < Len(), f <= Len() and i < f.
func (s *Slice[T]) Sub(i, f int) (*Slice[T], error) {
	if s.released {
		return nil, ErrReleased
	}
	if uint(i) >= uint(s.length) || uint(f) > uint(s.length) || f <= i {
		return nil, fmt.Errorf("%w: [%d, %d) of length %d", ErrInvalidRange, i, f, s.length)
	}
	return FromBuffer(s.storage[i:f], f-i)
}

// Emplace places v into the next reserved slot and advances the live length.
// It is the only path that turns a reserved slot live; the container never
// grows past its capacity.
func (s *Slice[T]) Emplace(v T) error {
	if s.released {
		return ErrReleased
	}
	if s.length == len(s.storage) {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(s.storage))
	}
	s.storage[s.length] = v
	s.length++
	return nil
}

// Release tears the Slice down. For an owning Slice every live element is
// destroyed exactly once and the storage block is freed; a borrowed Slice
// only detaches from the aliased buffer. Release is idempotent. Afterwards
// At, Sub and Emplace fail with ErrReleased, while Len, Cap, Owned and
// String stay callable and observe the empty released state.
func (s *Slice[T]) Release() {
	if s == nil || s.released {
		return
	}
	if s.owned {
		destroyPrefix(s.storage, s.length)
		alloc.Free(s.storage)
	}
	s.storage = nil
	s.length = 0
	s.released = true
}

// String renders the live elements one per line, mirroring the classic
// debugging dump for the container.
func (s *Slice[T]) String() string {
	var b strings.Builder
	for i := 0; i < s.length; i++ {
		fmt.Fprintf(&b, "%v\n", s.storage[i])
	}
	return b.String()
}
