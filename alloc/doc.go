// Package alloc is the storage manager for slicekit containers. It reserves
// and returns contiguous blocks of element slots and never constructs or
// destroys elements; element lifetime is the container's concern.
//
// The package includes:
//
//   - Slots / Free for raw block reservation and release
//   - Tracker for optional allocation accounting (leak and double-free
//     detection), keyed by the block's data pointer and tagged with a
//     uuid allocation ID
//
// Usage:
//
//	tracker := alloc.NewTracker(logger)
//	alloc.SetTracker(tracker)
//	defer tracker.Report()
//
// Tracking is off by default and adds a mutex-guarded map lookup per
// allocation when enabled. It is intended for tests and demos.
package alloc
