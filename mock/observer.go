package mock

import (
	"sync"

	"github.com/fwojciec/mdview"
)

// Interface compliance check.
var _ mdview.Observer = (*Observer)(nil)

// Timing is one event captured by Observer.
type Timing struct {
	Name   string
	Millis int64
}

// Observer records every timing event it receives. It is safe for
// concurrent use.
type Observer struct {
	mu     sync.Mutex
	events []Timing
}

// Timing records the event.
func (o *Observer) Timing(name string, millis int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, Timing{Name: name, Millis: millis})
}

// Events returns a copy of the recorded events in arrival order.
func (o *Observer) Events() []Timing {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Timing(nil), o.events...)
}

// Names returns the recorded event names in arrival order.
func (o *Observer) Names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, len(o.events))
	for i, e := range o.events {
		names[i] = e.Name
	}
	return names
}
