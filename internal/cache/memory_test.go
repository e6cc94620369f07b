package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lifeplan-engine/internal/config"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Fatal("expected a miss for an unknown key")
	}
	if err := m.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := m.Get(ctx, "k")
	if !ok || string(got) != "v" {
		t.Fatalf("expected v, got %q (%v)", got, ok)
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("v"))

	now = now.Add(59 * time.Second)
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Fatal("expected entry to survive within its TTL")
	}

	now = now.Add(time.Second)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire at its TTL")
	}
}

func TestMemorySetSweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		m.Set(ctx, fmt.Sprintf("k-%d", i), make([]byte, 1024))
	}
	if got := m.Len(); got != 1000 {
		t.Fatalf("expected 1000 entries, got %d", got)
	}

	now = now.Add(time.Hour)
	m.Set(ctx, "fresh", []byte("v"))

	if got := m.Len(); got != 1 {
		t.Fatalf("expected expired entries to be swept, got %d entries", got)
	}
	if _, ok := m.Get(ctx, "fresh"); !ok {
		t.Fatal("expected the fresh entry to survive the sweep")
	}
}

func TestMemorySweepKeepsLiveEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	m.Set(ctx, "old", []byte("v"))
	now = now.Add(30 * time.Second)
	m.Set(ctx, "young", []byte("v"))

	now = now.Add(40 * time.Second)
	m.Set(ctx, "new", []byte("v"))

	if got := m.Len(); got != 2 {
		t.Fatalf("expected only the expired entry to be swept, got %d entries", got)
	}
	if _, ok := m.Get(ctx, "young"); !ok {
		t.Fatal("expected an entry within its TTL to survive the sweep")
	}
}

func TestNewSelectsBackend(t *testing.T) {
	if _, ok := New(config.Config{CacheTTL: time.Minute}).(*Memory); !ok {
		t.Fatal("expected in-memory cache without a Redis address")
	}

	c := New(config.Config{RedisAddr: "localhost:6379", RedisPrefix: "p:"})
	r, ok := c.(*Redis)
	if !ok {
		t.Fatal("expected Redis cache with an address")
	}
	r.Close()
}
