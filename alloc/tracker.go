package alloc

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// TrackerLogger receives accounting events from a Tracker. The logging
// package's SliceKitLogger satisfies it; a nil logger disables output while
// keeping the counters live.
type TrackerLogger interface {
	LogAllocation(id string, slots int, bytes uintptr)
	LogRelease(id string, doubleFree bool)
	LogLeakReport(outstanding int, elapsed time.Duration)
}

// Allocation describes one outstanding tracked block.
type Allocation struct {
	ID    string
	Slots int
	Bytes uintptr
	At    time.Time
}

// Tracker records every block handed out by Slots and removed by Free. It is
// keyed by the block's data pointer, so a block must be freed through the
// same slice header it was allocated with. Safe for concurrent use.
type Tracker struct {
	mu          sync.Mutex
	live        map[unsafe.Pointer]Allocation
	frees       int
	doubleFrees int
	started     time.Time
	logger      TrackerLogger
}

// NewTracker creates a Tracker reporting through the given logger.
func NewTracker(logger TrackerLogger) *Tracker {
	return &Tracker{live: make(map[unsafe.Pointer]Allocation), started: time.Now(), logger: logger}
}

func (t *Tracker) record(ptr unsafe.Pointer, slots int, bytes uintptr) {
	a := Allocation{ID: uuid.NewString(), Slots: slots, Bytes: bytes, At: time.Now()}

	t.mu.Lock()
	t.live[ptr] = a
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.LogAllocation(a.ID, a.Slots, a.Bytes)
	}
}

func (t *Tracker) release(ptr unsafe.Pointer) {
	t.mu.Lock()
	a, known := t.live[ptr]
	if known {
		delete(t.live, ptr)
		t.frees++
	} else {
		t.doubleFrees++
	}
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.LogRelease(a.ID, !known)
	}
}

// Outstanding returns the allocations that have not been freed yet.
func (t *Tracker) Outstanding() []Allocation {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Allocation, 0, len(t.live))
	for _, a := range t.live {
		out = append(out, a)
	}
	return out
}

// Frees returns how many tracked blocks were handed back exactly once.
func (t *Tracker) Frees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// DoubleFrees returns how many frees targeted unknown or already freed blocks.
func (t *Tracker) DoubleFrees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doubleFrees
}

// Report emits a leak summary through the logger and returns the number of
// outstanding allocations.
func (t *Tracker) Report() int {
	t.mu.Lock()
	outstanding := len(t.live)
	elapsed := time.Since(t.started)
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.LogLeakReport(outstanding, elapsed)
	}
	return outstanding
}

var active atomic.Pointer[Tracker]

// SetTracker installs the process-wide tracker consulted by Slots and Free.
// Passing nil disables tracking.
func SetTracker(t *Tracker) {
	active.Store(t)
}

// CurrentTracker returns the installed tracker, or nil if tracking is off.
func CurrentTracker() *Tracker {
	return active.Load()
}
