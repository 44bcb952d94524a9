// Package cache provides the in-memory store of recently classified
// content, used to announce each item at most once.
package cache

import (
	"fmt"
	"sync"
	"time"

	"contentsift/internal/domain"
)

// MemoryStore is an in-memory classification result store with TTL
// expiry.
type MemoryStore struct {
	results sync.Map
	ttl     time.Duration
}

// storeEntry holds a recorded result with expiration metadata.
type storeEntry struct {
	result     *domain.Result
	expiresAt  time.Time
	recordedAt time.Time
}

// NewMemoryStore creates a store whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{ttl: ttl}
	go store.cleanup()
	return store
}

// Key returns the store key for a piece of content: {platform}/{id}.
func Key(platform domain.Platform, contentID string) string {
	return fmt.Sprintf("%s/%s", platform, contentID)
}

// Get retrieves a recorded result. Returns the result and true if
// present and not expired, otherwise nil and false.
func (s *MemoryStore) Get(platform domain.Platform, contentID string) (*domain.Result, bool) {
	value, ok := s.results.Load(Key(platform, contentID))
	if !ok {
		return nil, false
	}

	entry := value.(*storeEntry)
	if time.Now().After(entry.expiresAt) {
		s.results.Delete(Key(platform, contentID))
		return nil, false
	}

	return entry.result, true
}

// Set records a result with the configured TTL.
func (s *MemoryStore) Set(platform domain.Platform, contentID string, result *domain.Result) {
	now := time.Now()
	s.results.Store(Key(platform, contentID), &storeEntry{
		result:     result,
		expiresAt:  now.Add(s.ttl),
		recordedAt: now,
	})
}

// cleanup periodically removes expired entries.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		now := time.Now()
		s.results.Range(func(key, value any) bool {
			if now.After(value.(*storeEntry).expiresAt) {
				s.results.Delete(key)
			}
			return true
		})
	}
}
