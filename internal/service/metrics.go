package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"radar/internal/filter"
)

// Metrics records document library searches.
type Metrics struct {
	searches *prometheus.CounterVec
	results  prometheus.Histogram
}

// NewMetrics creates the search metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radar_document_searches_total",
				Help: "Total number of document library searches by status filter.",
			},
			[]string{"status_filter"},
		),
		results: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "radar_document_search_results",
				Help:    "Number of documents returned per search.",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
	}

	if err := reg.Register(m.searches); err != nil {
		return nil, err
	}
	if err := reg.Register(m.results); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observeSearch(f filter.StatusFilter, n int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(f.String()).Inc()
	m.results.Observe(float64(n))
}
