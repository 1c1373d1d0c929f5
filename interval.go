package groupz

import "time"

// Interval is the validity span of one datum or one window. Intervals are
// half-open [Start, End) for boundary purposes; callers supply well-formed
// intervals with Start <= End, which is not enforced internally.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlap computes the proportion of iv covered by other, in [0, 1].
// Disjoint intervals yield 0. The receiver is the reference span, so a
// window computes how much of itself a datum covers.
func (iv Interval) Overlap(other Interval) float64 {
	if other.Start.After(iv.End) || other.End.Before(iv.Start) {
		return 0
	}
	start := other.Start
	if iv.Start.After(start) {
		start = iv.Start
	}
	end := other.End
	if iv.End.Before(end) {
		end = iv.End
	}
	return float64(end.Sub(start)) / float64(iv.Duration())
}

// scale returns d scaled by proportion, used when a block boundary falls
// part-way through a put interval.
func scale(d time.Duration, proportion float64) time.Duration {
	return time.Duration(float64(d) * proportion)
}
