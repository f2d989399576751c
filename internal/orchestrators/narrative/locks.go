package narrative

import "sync"

// playerLocks serializes actions per player. Two concurrent actions from
// the same player (a double-clicked button) would otherwise read the same
// snapshot and lose one patch on write.
type playerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the given player's mutex and returns the release func.
// Lock entries are kept for the process lifetime; the map is bounded by
// the number of distinct players seen.
func (p *playerLocks) acquire(playerID string) func() {
	p.mu.Lock()
	lock, ok := p.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[playerID] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
