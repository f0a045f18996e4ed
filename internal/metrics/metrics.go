package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts reactor outcomes and their latency.
type Recorder struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notifier",
			Name:      "events_handled_total",
			Help:      "Change events handled, by reactor, outcome and error category.",
		}, []string{"reactor", "outcome", "category"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "notifier",
			Name:      "event_handling_seconds",
			Help:      "Time spent handling one change event.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"reactor"}),
	}

	reg.MustRegister(r.outcomes, r.duration)

	return r
}

func (r *Recorder) Observe(reactor, outcome, category string, elapsed time.Duration) {
	if category == "" {
		category = "none"
	}

	r.outcomes.WithLabelValues(reactor, outcome, category).Inc()
	r.duration.WithLabelValues(reactor).Observe(elapsed.Seconds())
}
