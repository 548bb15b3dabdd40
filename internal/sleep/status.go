package sleep

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// Reporter holds the values a status line is computed from. It is copied
// into the reporting goroutine when the signal is registered and never
// changes afterwards.
type Reporter struct {
	Total float64 // requested seconds, may be +Inf
	Start time.Time
}

// Remaining returns the whole seconds left at now, rounded half to even and
// never below zero. It is +Inf for an infinite total.
func (r Reporter) Remaining(now time.Time) float64 {
	if math.IsInf(r.Total, 1) {
		return r.Total
	}
	left := math.RoundToEven(r.Total - now.Sub(r.Start).Seconds())
	return math.Max(left, 0)
}

// Status returns the line printed when the watched signal arrives at now.
func (r Reporter) Status(now time.Time) string {
	return fmt.Sprintf("sleep: about %s seconds(s) left out of the original %s",
		FormatSeconds(r.Remaining(now)), FormatSeconds(r.Total))
}

// Report writes the status line for now to w.
func (r Reporter) Report(w io.Writer, now time.Time) error {
	_, err := fmt.Fprintln(w, r.Status(now))
	return err
}

// FormatSeconds renders whole values without a fractional part, other values
// in their shortest form, and +Inf as "infinity".
func FormatSeconds(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "infinity"
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
