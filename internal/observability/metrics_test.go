package observability

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/news", "GET", 200, time.Millisecond)
	m.RecordRequest("/api/news", "GET", 200, time.Millisecond)
	m.RecordError("/api/news/x", "GET", "NOT_FOUND")

	requests := m.RequestCounts()
	if requests["GET /api/news 200"] != 2 {
		t.Fatalf("unexpected request counts: %v", requests)
	}
	errCounts := m.ErrorCounts()
	if errCounts["GET /api/news/x NOT_FOUND"] != 1 {
		t.Fatalf("unexpected error counts: %v", errCounts)
	}

	// Returned maps are copies; mutating them must not touch the counters.
	requests["GET /api/news 200"] = 99
	if m.RequestCounts()["GET /api/news 200"] != 2 {
		t.Fatal("RequestCounts must return a copy")
	}
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "INTERNAL_ERROR")
	if m.RequestCounts() != nil || m.ErrorCounts() != nil {
		t.Fatal("nil metrics must report no counters")
	}
}
