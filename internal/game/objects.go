package game

import (
	"strings"
	"sync"
)

// UsedObjects tracks every secret object issued across all sessions so the
// generator can bias away from repeats. Keys are compared case-insensitively
// ("Cat" and "cat" count as the same object). The set only ever grows.
type UsedObjects struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewUsedObjects creates an empty set.
func NewUsedObjects() *UsedObjects {
	return &UsedObjects{seen: make(map[string]struct{})}
}

// Contains reports whether the object was issued before.
func (u *UsedObjects) Contains(object string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.seen[strings.ToLower(object)]
	return ok
}

// Add marks the object as issued.
func (u *UsedObjects) Add(object string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.seen[strings.ToLower(object)] = struct{}{}
}

// Len returns the number of distinct objects issued.
func (u *UsedObjects) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.seen)
}
