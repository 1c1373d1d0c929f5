package groupz

import "time"

// FixedWindow divides a single ordered stream into consecutive,
// non-overlapping windows of fixed duration. All window boundaries are
// offset from the configured start time by whole multiples of the duration,
// and windows are half-open [start, end). The first window emitted is the
// earliest window the first datum falls into; from then on every elapsed
// duration produces a window, including windows that received no data.
// A datum overlapping several windows is replicated into each.
type FixedWindow[T any] struct {
	name   string
	origin time.Time
	dur    time.Duration
	cur    *Group[T]
	out    []Group[T]
	onDrop func(Interval)
}

// NewFixedWindow creates a grouper that tiles the stream's time axis into
// fixed-duration windows.
//
// When to use:
//   - Windowed feature extraction over sensor or log data
//   - Per-interval aggregation where empty intervals still matter
//   - Aligning one stream to a fixed grid before synchronization
//
// Example:
//
//	fw, err := groupz.NewFixedWindow[Event](epoch, time.Minute)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fw.Put(ev, ev.Start, ev.End)
//	for g, ok := fw.TryNext(); ok; g, ok = fw.TryNext() {
//		aggregate(g) // g.Items may be empty
//	}
//
// Parameters:
//   - start: Time all window boundaries are offset from
//   - duration: Length of each window (must be > 0)
//
// Returns a new FixedWindow grouper, or ErrInvalidConfig for a non-positive
// duration.
func NewFixedWindow[T any](start time.Time, duration time.Duration) (*FixedWindow[T], error) {
	if duration <= 0 {
		return nil, newConfigError("fixed-window", "duration", duration, "must be positive")
	}
	return &FixedWindow[T]{
		origin: start,
		dur:    duration,
		name:   "fixed-window",
	}, nil
}

// OnDrop registers a diagnostic callback invoked with the interval of any
// datum dropped as stale. Dropping never aborts ingestion; the callback is
// purely informational. Passing nil clears it.
func (w *FixedWindow[T]) OnDrop(fn func(Interval)) {
	w.onDrop = fn
}

// Put routes datum into every window its interval overlaps, closing and
// emitting windows as time advances past them. Data ending before the
// stream's snapped start are dropped as stale.
func (w *FixedWindow[T]) Put(datum T, start, end time.Time) {
	if end.Before(w.origin) {
		if w.onDrop != nil {
			w.onDrop(Interval{Start: start, End: end})
		}
		return
	}

	if w.cur == nil {
		// Snap the first window forward so the first datum falls inside it.
		if start.After(w.origin) {
			w.origin = w.origin.Add(w.dur * (start.Sub(w.origin) / w.dur))
		}
		w.cur = &Group[T]{Start: w.origin, End: w.origin.Add(w.dur)}
	}

	// Ship windows, empty ones included, that end before the datum starts.
	for start.After(w.cur.End) {
		w.ship()
	}

	// Replicate the datum into every window it spans past.
	for end.After(w.cur.End) {
		w.cur.Items = append(w.cur.Items, datum)
		w.ship()
	}

	w.cur.Items = append(w.cur.Items, datum)
}

// ship closes the current window into the output queue and opens its
// successor.
func (w *FixedWindow[T]) ship() {
	next := &Group[T]{Start: w.cur.End, End: w.cur.End.Add(w.dur)}
	w.out = append(w.out, *w.cur)
	w.cur = next
}

// TryNext pops the oldest closed window.
func (w *FixedWindow[T]) TryNext() (Group[T], bool) {
	if len(w.out) == 0 {
		return Group[T]{}, false
	}
	g := w.out[0]
	w.out = w.out[1:]
	return g, true
}

// Name returns the grouper name.
func (w *FixedWindow[T]) Name() string {
	return w.name
}
