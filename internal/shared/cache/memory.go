package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a MemoryStore built by NewMemoryStore.
const DefaultMaxEntries = 1024

// MemoryStore is an in-process Store. A zero TTL never expires. When full,
// Set drops expired entries first and then the oldest write.
type MemoryStore struct {
	mu         sync.Mutex
	data       map[string]memoryEntry
	now        func() time.Time
	maxEntries int
}

type memoryEntry struct {
	value   string
	stored  time.Time
	expires time.Time
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		data:       make(map[string]memoryEntry),
		now:        now,
		maxEntries: DefaultMaxEntries,
	}
}

// WithMaxEntries sets the entry cap; n <= 0 keeps the current cap.
func (m *MemoryStore) WithMaxEntries(n int) *MemoryStore {
	if n > 0 {
		m.mu.Lock()
		m.maxEntries = n
		m.mu.Unlock()
	}
	return m
}

// Len reports the number of stored entries, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.data[key]
	if !ok {
		return "", false, nil
	}
	if !entry.expires.IsZero() && !m.now().Before(entry.expires) {
		delete(m.data, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := m.now()
	entry := memoryEntry{value: value, stored: now}
	if ttl > 0 {
		entry.expires = now.Add(ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.evict(now)
	}
	m.data[key] = entry
	return nil
}

// evict makes room for one entry. Callers hold m.mu.
func (m *MemoryStore) evict(now time.Time) {
	for k, e := range m.data {
		if !e.expires.IsZero() && !now.Before(e.expires) {
			delete(m.data, k)
		}
	}
	for len(m.data) >= m.maxEntries {
		var oldestKey string
		var oldest time.Time
		first := true
		for k, e := range m.data {
			if first || e.stored.Before(oldest) {
				oldestKey, oldest, first = k, e.stored, false
			}
		}
		delete(m.data, oldestKey)
	}
}

var _ Store = (*MemoryStore)(nil)
