package services

import (
	"sync"

	"github.com/google/uuid"
)

// BountyLocker serializes placeBet, resolve and expire per bounty so a bet
// can never land half-counted around a settlement snapshot. The database
// guards (is_resolved compare-and-set) remain the backstop for multi-process
// deployments; the locker removes the race within one process.
type BountyLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewBountyLocker() *BountyLocker {
	return &BountyLocker{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Acquire returns the mutex dedicated to one bounty
func (l *BountyLocker) Acquire(bountyID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[bountyID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[bountyID] = lock
	}
	return lock
}
