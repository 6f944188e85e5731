package metrics

import (
	"time"

	"subname-minter/internal/application/port"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "subname_minter"

// Compile-time check
var _ port.MintMetrics = (*Recorder)(nil)

// Recorder exports mint flow observations to Prometheus.
type Recorder struct {
	availabilityChecks *prometheus.CounterVec
	mintAttempts       *prometheus.CounterVec
	mintDuration       *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		availabilityChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "availability_checks_total",
				Help:      "Availability checks by backend and result.",
			},
			[]string{"backend", "result"},
		),
		mintAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "mint_attempts_total",
				Help:      "Mint attempts by backend and outcome.",
			},
			[]string{"backend", "outcome"},
		),
		mintDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "mint_duration_seconds",
				Help:      "Time from mint request to submission or failure.",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"backend"},
		),
	}

	for _, c := range []prometheus.Collector{r.availabilityChecks, r.mintAttempts, r.mintDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// AvailabilityChecked counts one availability check.
func (r *Recorder) AvailabilityChecked(backend, result string) {
	r.availabilityChecks.WithLabelValues(backend, result).Inc()
}

// MintFinished counts one finished mint attempt and observes its duration.
func (r *Recorder) MintFinished(backend, outcome string, elapsed time.Duration) {
	r.mintAttempts.WithLabelValues(backend, outcome).Inc()
	r.mintDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}
