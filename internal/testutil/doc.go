// Package testutil contains fixture element types used across tests to
// exercise the container's capability dispatch (move, clone, plain copy) and
// lifecycle accounting (release counters, failing clones). These helpers are
// intentionally minimal and avoid adding third‑party dependencies. They are
// not intended for production usage.
package testutil
