package timeinterval

import (
	"fmt"
	"time"

	"github.com/henderiw/interval/pkg/interval"
)

// Interval is a closed time window.
type Interval = interval.Interval[time.Time]

// New builds a window between two instants, given in either order.
func New(a, b time.Time) Interval {
	return interval.NewFunc(a, b, time.Time.Compare)
}

// Window builds the window of duration d starting at start. A negative
// duration yields the window ending at start.
func Window(start time.Time, d time.Duration) Interval {
	return New(start, start.Add(d))
}

// Parse parses a window from two RFC 3339 bounds.
func Parse(from, to string) (Interval, error) {
	f, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid from time %q in window: %v", from, err)
	}
	t, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid to time %q in window: %v", to, err)
	}
	return New(f, t), nil
}
