package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters/histograms for booking and catalog flows.
type SiteMetrics struct {
	sessionTotal    *prometheus.CounterVec
	submissionTotal *prometheus.CounterVec
	submitLatency   *prometheus.HistogramVec
	catalogQueries  *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		sessionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smilebright",
			Subsystem: "booking",
			Name:      "session_transitions_total",
			Help:      "Booking modal open/close calls by trigger",
		}, []string{"action", "source"}),
		submissionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smilebright",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions sent to the collection endpoint",
		}, []string{"outcome"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "smilebright",
			Subsystem: "booking",
			Name:      "submit_latency_seconds",
			Help:      "Latency of booking endpoint requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		catalogQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smilebright",
			Subsystem: "catalog",
			Name:      "queries_total",
			Help:      "Services page renders by category and whether the result was empty",
		}, []string{"category", "empty"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionTotal, m.submissionTotal, m.submitLatency, m.catalogQueries)
	return m
}

func (m *SiteMetrics) ObserveSession(action, source string) {
	if m == nil {
		return
	}
	m.sessionTotal.WithLabelValues(action, source).Inc()
}

func (m *SiteMetrics) ObserveSubmission(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(outcome).Inc()
	m.submitLatency.WithLabelValues(outcome).Observe(seconds)
}

func (m *SiteMetrics) ObserveCatalogQuery(category string, empty bool) {
	if m == nil {
		return
	}
	label := "false"
	if empty {
		label = "true"
	}
	m.catalogQueries.WithLabelValues(category, label).Inc()
}
