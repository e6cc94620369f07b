package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Memory is an in-process cache. A zero TTL keeps entries forever.
// Expired entries are swept on Set at most once per TTL.
type Memory struct {
	ttl     time.Duration
	entries sync.Map
	now     func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.entries.Load(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if e.expired(m.now()) {
		m.entries.CompareAndDelete(key, v)
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	now := m.now()
	e := entry{value: value}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
		m.sweep(now)
	}
	m.entries.Store(key, e)
	return nil
}

func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	if !m.lastSweep.IsZero() && now.Sub(m.lastSweep) < m.ttl {
		m.mu.Unlock()
		return
	}
	m.lastSweep = now
	m.mu.Unlock()

	m.entries.Range(func(k, v any) bool {
		if v.(entry).expired(now) {
			m.entries.CompareAndDelete(k, v)
		}
		return true
	})
}

// Len counts stored entries, expired or not.
func (m *Memory) Len() int {
	n := 0
	m.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
