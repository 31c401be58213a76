// Package prometheus implements [mdview.Observer] with Prometheus metrics.
package prometheus

import (
	"fmt"

	"github.com/fwojciec/mdview"
	"github.com/prometheus/client_golang/prometheus"
)

// Interface compliance check.
var _ mdview.Observer = (*Observer)(nil)

// Observer records timing events as a gauge of the last value and a counter
// of occurrences, both labelled by event name.
type Observer struct {
	last  *prometheus.GaugeVec
	count *prometheus.CounterVec
}

// New creates an Observer and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		last: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mdview_timing_milliseconds",
				Help: "Milliseconds since navigation start at the most recent timing event",
			},
			[]string{"event"},
		),
		count: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mdview_timing_events_total",
				Help: "Total number of timing events",
			},
			[]string{"event"},
		),
	}
	for _, c := range []prometheus.Collector{o.last, o.count} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("prometheus: %w", err)
		}
	}
	return o, nil
}

// Timing records the event.
func (o *Observer) Timing(name string, millis int64) {
	o.last.WithLabelValues(name).Set(float64(millis))
	o.count.WithLabelValues(name).Inc()
}
