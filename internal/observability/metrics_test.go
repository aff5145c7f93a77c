package observability

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/v1/course/courses", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/v1/course/courses", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/api/v1/course/courses", "GET", 404, time.Millisecond)

	if got := m.RequestTotal("/api/v1/course/courses", "GET", 200); got != 2 {
		t.Fatalf("200 count = %d, want 2", got)
	}
	if got := m.RequestTotal("/api/v1/course/courses", "GET", 404); got != 1 {
		t.Fatalf("404 count = %d, want 1", got)
	}
}

func TestNilMetricsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "INTERNAL_ERROR")
	if m.RequestTotal("/", "GET", 200) != 0 {
		t.Fatal("nil metrics must report zero")
	}
}
