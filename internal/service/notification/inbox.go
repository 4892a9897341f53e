package notification

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// Inbox is a bounded in-memory notification collection, newest-last. It
// mirrors the storage-level backlog rule: once full, adding a notification
// evicts the oldest one. Adding a notification whose ID is already present
// is suppressed, so at-least-once delivery upstream never duplicates an
// entry. The read flag only moves one way, unread to read.
//
// The live delivery hub uses one per connected client as its pending queue,
// so a slow reader loses its oldest undelivered entries instead of blocking
// the fan-out.
//
// Safe for concurrent use.
type Inbox struct {
	mu    sync.Mutex
	cap   int
	items []*domain.Notification
}

// NewInbox creates an inbox bounded at cap entries. cap must be positive.
func NewInbox(cap int) *Inbox {
	if cap <= 0 {
		panic("notification: inbox cap must be positive")
	}
	return &Inbox{cap: cap}
}

// Add appends a notification. A duplicate ID is ignored. If the inbox is
// full the oldest entry is evicted and returned; otherwise evicted is nil.
func (in *Inbox) Add(n *domain.Notification) (evicted *domain.Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for _, existing := range in.items {
		if existing.ID == n.ID {
			return nil
		}
	}

	in.items = append(in.items, n)
	if len(in.items) > in.cap {
		evicted = in.items[0]
		in.items = in.items[1:]
	}
	return evicted
}

// MarkRead flips one notification to read. Reports whether the ID was
// present; an already-read entry stays read.
func (in *Inbox) MarkRead(id uuid.UUID) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	for _, n := range in.items {
		if n.ID == id {
			n.Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flips every entry to read and returns how many were unread.
func (in *Inbox) MarkAllRead() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	flipped := 0
	for _, n := range in.items {
		if !n.Read {
			n.Read = true
			flipped++
		}
	}
	return flipped
}

// ClearAll empties the inbox and returns how many entries were removed.
func (in *Inbox) ClearAll() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	removed := len(in.items)
	in.items = nil
	return removed
}

// Unread returns the number of unread entries.
func (in *Inbox) Unread() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	count := 0
	for _, n := range in.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Items returns a snapshot of the entries, oldest first (newest-last).
func (in *Inbox) Items() []*domain.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	snapshot := make([]*domain.Notification, len(in.items))
	copy(snapshot, in.items)
	return snapshot
}

// Drain removes and returns all entries in arrival order. Used by the
// delivery pump, which forwards and forgets.
func (in *Inbox) Drain() []*domain.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	drained := in.items
	in.items = nil
	return drained
}

// Len returns the number of entries.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.items)
}

// Cap returns the inbox bound.
func (in *Inbox) Cap() int { return in.cap }
