package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveProjection(t *testing.T) {
	m := New()

	m.ObserveProjection("SUCCESS", 3*time.Millisecond)
	m.ObserveProjection("SUCCESS", time.Millisecond)
	m.ObserveProjection("FAILURE", time.Millisecond)

	if got := testutil.ToFloat64(m.projections.WithLabelValues("SUCCESS")); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.projections.WithLabelValues("FAILURE")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestObserveCache(t *testing.T) {
	m := New()

	m.ObserveCache(CacheMiss)
	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheHit)

	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues(CacheHit)); got != 2 {
		t.Fatalf("expected 2 hits, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	m.ObserveProjection("SUCCESS", time.Second)
	m.ObserveCache(CacheHit)
	m.ObserveHorizon(12)
}
