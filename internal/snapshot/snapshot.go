// Package snapshot provides atomic, lock-free replacement of an
// index.Snapshot: the same swap-a-pointer pattern a single-writer lock
// would otherwise protect, but without ever blocking a concurrent
// reader (§5: "a fresh build yields a new immutable snapshot which
// atomically replaces the old one at the call site").
package snapshot

import (
	"sync/atomic"

	"github.com/wizenheimer/paragraphsearch/index"
)

// Holder holds the current index.Snapshot behind an atomic.Pointer.
// Readers call Load and use the returned value; a rebuild calls Store
// with the newly built Snapshot. Readers already holding a pointer from
// a prior Load keep querying the old, still-valid snapshot — there is
// no in-place mutation to race with.
type Holder struct {
	ptr atomic.Pointer[index.Snapshot]
}

// NewHolder wraps an initial Snapshot.
func NewHolder(initial *index.Snapshot) *Holder {
	h := &Holder{}
	h.ptr.Store(initial)
	return h
}

// Load returns the current Snapshot.
func (h *Holder) Load() *index.Snapshot {
	return h.ptr.Load()
}

// Store atomically replaces the current Snapshot with next.
func (h *Holder) Store(next *index.Snapshot) {
	h.ptr.Store(next)
}
