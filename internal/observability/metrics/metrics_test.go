package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestSiteMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSiteMetrics(reg)

	m.ObserveSession("open", "fab")
	m.ObserveSession("open", "fab")
	m.ObserveSubmission("success", 0.4)
	m.ObserveCatalogQuery("Cosmetic", true)

	if got := testutil.ToFloat64(m.sessionTotal.WithLabelValues("open", "fab")); got != 2 {
		t.Fatalf("expected 2 session opens, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionTotal.WithLabelValues("success")); got != 1 {
		t.Fatalf("expected 1 submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.catalogQueries.WithLabelValues("Cosmetic", "true")); got != 1 {
		t.Fatalf("expected 1 empty catalog query, got %v", got)
	}
	if n := testutil.CollectAndCount(m.submitLatency); n != 1 {
		t.Fatalf("expected 1 latency series, got %d", n)
	}
}

func TestSiteMetricsLatencyHistogram(t *testing.T) {
	m := NewSiteMetrics(prometheus.NewRegistry())

	m.ObserveSubmission("error", 0.5)
	m.ObserveSubmission("error", 1.5)

	hist, ok := m.submitLatency.WithLabelValues("error").(prometheus.Histogram)
	if !ok {
		t.Fatal("expected histogram observer")
	}
	var out dto.Metric
	if err := hist.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := out.GetHistogram().GetSampleCount(); got != 2 {
		t.Fatalf("expected 2 samples, got %d", got)
	}
	if got := out.GetHistogram().GetSampleSum(); got != 2.0 {
		t.Fatalf("expected sum 2, got %v", got)
	}
}

func TestSiteMetricsNilSafe(t *testing.T) {
	var m *SiteMetrics
	m.ObserveSession("close", "modal")
	m.ObserveSubmission("error", 0.1)
	m.ObserveCatalogQuery("All", false)
}
