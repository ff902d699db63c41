package testutil

import "errors"

// ErrCloneFailed is the failure injected by a FlakyElem whose Fail flag is set.
var ErrCloneFailed = errors.New("clone failed")

// Point is a trivially destructible value element with no capabilities.
type Point struct {
	X, Y int
}

// OnlyMovable supports destructive transfer only. Move hands the value over
// and zeroes the source so moved-from state is observable in tests.
type OnlyMovable struct {
	Value int
}

// Move transfers the value out, leaving the receiver zeroed.
func (m *OnlyMovable) Move() OnlyMovable {
	v := *m
	m.Value = 0
	return v
}

// OnlyCopyable supports duplication only. Every successful Clone increments
// the shared Copies counter so tests can count copy-constructions.
type OnlyCopyable struct {
	Value  int
	Copies *int
}

// Clone duplicates the element, bumping the shared copy counter.
func (c OnlyCopyable) Clone() (OnlyCopyable, error) {
	if c.Copies != nil {
		*c.Copies++
	}
	return OnlyCopyable{Value: c.Value, Copies: c.Copies}, nil
}

// FlakyElem clones successfully unless its Fail flag is set, counting every
// Clone attempt through the shared Clones counter and every Release through
// the shared Releases counter. It drives the rollback tests: place a failing
// element at position k and assert that exactly the prefix before k was
// constructed and destroyed, and that no element past k was ever attempted.
type FlakyElem struct {
	Value    int
	Fail     bool
	Clones   *int
	Releases *int
}

// Clone duplicates the element or fails with ErrCloneFailed. The attempt is
// counted either way.
func (f FlakyElem) Clone() (FlakyElem, error) {
	if f.Clones != nil {
		*f.Clones++
	}
	if f.Fail {
		return FlakyElem{}, ErrCloneFailed
	}
	return f, nil
}

// Release counts the teardown of one live element.
func (f *FlakyElem) Release() {
	if f.Releases != nil {
		*f.Releases++
	}
}

// Resource is a capability-free value that still needs teardown. Copies share
// the Released counter, so releasing any copy is observable at the source.
type Resource struct {
	ID       int
	Released *int
}

// Release counts the teardown of one live element.
func (r *Resource) Release() {
	if r.Released != nil {
		*r.Released++
	}
}
