package app

import (
	"sync"

	"stockbooks/internal/core"
)

// snapshotHolder keeps the latest completed report snapshot. Overlapping
// refreshes have no cancellation semantics, so completion order is not
// request order: each refresh takes a sequence number when it starts, and a
// finished result is applied only if nothing newer has been applied already.
// The comparison happens here, in the caller layer — the aggregator itself
// knows nothing about sequencing.
type snapshotHolder struct {
	mu         sync.Mutex
	nextSeq    uint64
	appliedSeq uint64
	current    *core.ReportSnapshot
}

func newSnapshotHolder() *snapshotHolder {
	return &snapshotHolder{}
}

// begin reserves the sequence number for a refresh that is starting.
func (h *snapshotHolder) begin() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextSeq++
	return h.nextSeq
}

// apply installs snap as the current snapshot unless a newer-sequenced
// result already completed. Returns false when snap was discarded as stale.
func (h *snapshotHolder) apply(seq uint64, snap *core.ReportSnapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if seq < h.appliedSeq {
		return false
	}
	h.appliedSeq = seq
	h.current = snap
	return true
}

// latest returns the current snapshot, or nil before the first completion.
func (h *snapshotHolder) latest() *core.ReportSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}
