package service

import "github.com/prometheus/client_golang/prometheus"

// Generation outcomes recorded by Metrics.
const (
	resultSuccess = "success"
	resultInvalid = "invalid"
	resultFailure = "failure"
)

// Metrics counts receipt generation attempts by outcome. A nil *Metrics
// records nothing.
type Metrics struct {
	generated *prometheus.CounterVec
}

// NewMetrics registers the receipt collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipts_generated_total",
				Help: "Receipt generation attempts by result.",
			},
			[]string{"result"},
		),
	}
	if err := reg.Register(m.generated); err != nil {
		return nil, err
	}
	// Pre-create the series so dashboards see zeros before the first attempt.
	for _, r := range []string{resultSuccess, resultInvalid, resultFailure} {
		m.generated.WithLabelValues(r)
	}
	return m, nil
}

func (m *Metrics) observe(result string) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(result).Inc()
}
