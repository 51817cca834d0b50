package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"cold_load_calc/load"
)

const (
	formatJSON = "json"
	formatPDF  = "pdf"
	formatCSV  = "csv"

	outcomeOK         = "ok"
	outcomeInvalid    = "invalid"
	outcomeBadRequest = "bad_request"
)

type metrics struct {
	calculations *prometheus.CounterVec
	tons         prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coldload",
			Name:      "calculations_total",
			Help:      "Load calculation requests by response format and outcome.",
		}, []string{"format", "outcome"}),
		tons: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coldload",
			Name:      "refrigeration_tons",
			Help:      "Refrigeration capacity of successful calculations, TR.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		}),
	}
	reg.MustRegister(m.calculations, m.tons)
	return m
}

func (m *metrics) observe(format, outcome string, r *load.LoadResult) {
	m.calculations.WithLabelValues(format, outcome).Inc()
	if r != nil {
		m.tons.Observe(r.RefrigerationTons)
	}
}
