package groupz

import "time"

// Group represents a time-bounded collection of items emitted by a
// single-stream grouper. Start and End cover the span the group was
// assembled over; their exact meaning is per grouper (block boundaries,
// window boundaries, or the triggering datum's interval for History).
type Group[T any] struct {
	Start time.Time
	End   time.Time
	Items []T
}

// Count is one RunCounter emission: the number of consecutive valid data
// seen before the datum stamped with this interval.
type Count struct {
	Start time.Time
	End   time.Time
	Run   int
}

// Verdict is one Neighborhood emission: whether the datum stamped with this
// interval belongs to at least one valid contiguous run.
type Verdict struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// Bundle is one synchronizer emission: the per-topic data chosen for a
// jointly-aligned window. Topics that contributed nothing to the window are
// absent from Data.
type Bundle[T any] struct {
	Start time.Time
	End   time.Time
	Data  map[string]T
}
