// Package cache provides content caches for fetched markdown. A cache is a
// best-effort layer: a miss or an invalidation simply sends the next read
// back to the source.
package cache

import (
	"context"
	"sync"
	"time"

	"inkwell/pkg/platform/sentinel"
)

// ContentCache stores fetched markdown bodies keyed by manifest path.
type ContentCache interface {
	// Get returns the cached body, or sentinel.ErrNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)
	// Set stores a body under the key for the cache's TTL.
	Set(ctx context.Context, key, body string) error
	// Invalidate drops every cached body.
	Invalidate(ctx context.Context) error
}

type memoryEntry struct {
	body      string
	expiresAt time.Time
}

// Memory is an in-process ContentCache. It favors clarity over performance:
// expired entries are dropped lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-process cache whose entries live for ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", sentinel.ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", sentinel.ErrNotFound
	}
	return entry.body, nil
}

func (m *Memory) Set(_ context.Context, key, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{body: body, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Invalidate(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
	return nil
}
