package mdview

import "time"

// Telemetry event names emitted around each load.
const (
	EventBegin = "mdview_begin"
	EventEnd   = "mdview_end"
)

// Observer receives named timing events. Implementations must be cheap and
// must not fail the load; telemetry is best effort.
type Observer interface {
	Timing(name string, millis int64)
}

// Interface compliance checks.
var (
	_ Observer = NopObserver{}
	_ Observer = MultiObserver(nil)
)

// NopObserver discards every event.
type NopObserver struct{}

// Timing does nothing.
func (NopObserver) Timing(string, int64) {}

// MultiObserver forwards each event to every observer in order.
type MultiObserver []Observer

// Timing forwards the event.
func (m MultiObserver) Timing(name string, millis int64) {
	for _, o := range m {
		o.Timing(name, millis)
	}
}

// Clock reports the time elapsed since navigation start.
type Clock func() time.Duration

// SinceClock returns a Clock measuring from start.
func SinceClock(start time.Time) Clock {
	return func() time.Duration { return time.Since(start) }
}
