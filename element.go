package slicekit

// Mover is implemented by element types that support destructive transfer.
// Move returns the carried value and leaves the receiver in a moved-from
// state. When a type implements both Mover and Cloner, Move wins.
type Mover[T any] interface {
	Move() T
}

// Cloner is implemented by element types whose duplication can do real work
// and therefore fail. A Clone error during construction triggers rollback of
// the partially built container.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Releaser is the element destructor analog. Types that do not implement it
// are trivially destructible: tearing down their live prefix is a pure no-op.
type Releaser interface {
	Release()
}

type buildStrategy int

const (
	strategyAssign buildStrategy = iota
	strategyMove
	strategyClone
)

// strategyFor probes the capability set of T once per construction, not per
// element. Every Go value supports plain assignment, so there is no
// "unconstructible" case to reject.
func strategyFor[T any]() buildStrategy {
	var probe T
	if _, ok := any(&probe).(Mover[T]); ok {
		return strategyMove
	}
	if _, ok := any(&probe).(Cloner[T]); ok {
		return strategyClone
	}
	return strategyAssign
}

// needsDestroy reports whether T carries a destructor obligation.
func needsDestroy[T any]() bool {
	var probe T
	_, ok := any(&probe).(Releaser)
	return ok
}

// constructInto places src's elements into dst in order using the cheapest
// capability T offers. It returns how many elements were constructed and, on
// a Clone failure, the element's error unchanged. dst must hold at least
// len(src) slots.
func constructInto[T any](dst, src []T) (int, error) {
	switch strategyFor[T]() {
	case strategyMove:
		for i := range src {
			dst[i] = any(&src[i]).(Mover[T]).Move()
		}
	case strategyClone:
		for i := range src {
			v, err := any(&src[i]).(Cloner[T]).Clone()
			if err != nil {
				return i, err
			}
			dst[i] = v
		}
	default:
		copy(dst, src)
	}
	return len(src), nil
}

// destroyPrefix releases the live elements in slots [0, count). Each slot is
// zeroed right after its Release so no value can be released twice. Visit
// order is unspecified beyond every slot being visited exactly once.
func destroyPrefix[T any](storage []T, count int) {
	if !needsDestroy[T]() {
		return
	}
	var zero T
	for i := 0; i < count; i++ {
		any(&storage[i]).(Releaser).Release()
		storage[i] = zero
	}
}
