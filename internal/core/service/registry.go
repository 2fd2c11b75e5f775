package service

import (
	"sync"
	"time"
)

type sessionSlot struct {
	mu       sync.Mutex
	session  *Session
	lastSeen time.Time
}

// A registry owns one [Session] per session id.
type registry struct {
	mu         sync.Mutex
	slots      map[string]*sessionSlot
	newSession func() *Session
	now        func() time.Time
}

func newRegistry(newSession func() *Session, now func() time.Time) *registry {
	return &registry{
		slots:      make(map[string]*sessionSlot),
		newSession: newSession,
		now:        now,
	}
}

// with runs fn holding the lock of the session, creating the session on
// first use.
func (r *registry) with(sessionID string, fn func(*Session)) {
	slot := r.slot(sessionID)
	slot.mu.Lock()
	defer slot.mu.Unlock()
	fn(slot.session)
}

func (r *registry) slot(sessionID string) *sessionSlot {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[sessionID]
	if !ok {
		slot = &sessionSlot{session: r.newSession()}
		r.slots[sessionID] = slot
	}
	slot.lastSeen = r.now()
	return slot
}

// evictIdle discards sessions not used for longer than ttl and returns how
// many were discarded.
func (r *registry) evictIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var n int
	for id, slot := range r.slots {
		if now.Sub(slot.lastSeen) > ttl {
			delete(r.slots, id)
			n++
		}
	}
	return n
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
