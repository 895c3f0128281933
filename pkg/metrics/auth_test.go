package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilRecorderIsSafe(t *testing.T) {
	var m *AuthMetrics
	m.IncSuccess("login")
	m.IncFailure("login")
	m.ObserveDuration("login", time.Second)

	m = NewAuthMetrics(nil)
	m.IncSuccess("login")
	m.IncFailure("login")
	m.ObserveDuration("login", time.Second)
}

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAuthMetrics(reg)

	m.IncSuccess("login")
	m.IncSuccess("login")
	m.IncFailure("register")
	m.ObserveDuration("login", 50*time.Millisecond)

	if got := testutil.ToFloat64(m.success.WithLabelValues("login")); got != 2 {
		t.Fatalf("expected 2 login successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.failure.WithLabelValues("register")); got != 1 {
		t.Fatalf("expected 1 register failure, got %v", got)
	}
}

func TestEmptyOperationNormalized(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAuthMetrics(reg)

	m.IncSuccess("")
	if got := testutil.ToFloat64(m.success.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty label to map to unknown, got %v", got)
	}
}
