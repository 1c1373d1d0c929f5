package groupz

import "time"

// pending is one datum awaiting a neighborhood verdict.
type pending[T any] struct {
	datum   T
	iv      Interval
	handled bool
}

// Neighborhood determines, for each datum, whether it belongs to at least
// one valid contiguous run of length data. Every sliding run a datum is
// party to is considered, not only the run starting at it. As soon as any
// run containing a datum validates, the datum's true verdict is emitted;
// a datum whose every run has been evaluated without success is emitted
// false on eviction. Each datum is emitted exactly once.
type Neighborhood[T any] struct {
	name    string
	isValid func([]T) bool
	length  int
	buf     []pending[T]
	out     []Verdict
}

// NewNeighborhood creates a grouper that checks membership in valid
// contiguous runs.
//
// When to use:
//   - Flagging readings that sit inside any stable stretch of the stream
//   - Artifact rejection where isolation, not the value itself, disqualifies
//   - Quorum-style validity over a sliding context
//
// Example:
//
//	nb, err := groupz.NewNeighborhood(allWithinTolerance, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	nb.Put(r, r.Start, r.End)
//	for v, ok := nb.TryNext(); ok; v, ok = nb.TryNext() {
//		if !v.Valid {
//			quarantine(v.Start, v.End)
//		}
//	}
//
// Parameters:
//   - isValid: Predicate over an ordered run of length data
//   - length: Run length to evaluate (must be > 0)
//
// Returns a new Neighborhood grouper, or ErrInvalidConfig for a nil
// predicate or non-positive length.
func NewNeighborhood[T any](isValid func([]T) bool, length int) (*Neighborhood[T], error) {
	if isValid == nil {
		return nil, newConfigError("neighborhood", "isValid", nil, "must be non-nil")
	}
	if length <= 0 {
		return nil, newConfigError("neighborhood", "length", length, "must be positive")
	}
	return &Neighborhood[T]{
		isValid: isValid,
		length:  length,
		name:    "neighborhood",
	}, nil
}

// Put buffers datum and, once a full run is pending, evaluates it. A valid
// run emits true for every pending datum not already vouched for by an
// earlier run. The oldest pending datum is then evicted; all runs
// containing it have now been evaluated, so it emits false if none of them
// validated.
func (n *Neighborhood[T]) Put(datum T, start, end time.Time) {
	n.buf = append(n.buf, pending[T]{datum: datum, iv: Interval{Start: start, End: end}})
	if len(n.buf) < n.length {
		return
	}

	run := make([]T, len(n.buf))
	for i := range n.buf {
		run[i] = n.buf[i].datum
	}
	if n.isValid(run) {
		for i := range n.buf {
			if !n.buf[i].handled {
				n.out = append(n.out, Verdict{Valid: true, Start: n.buf[i].iv.Start, End: n.buf[i].iv.End})
				n.buf[i].handled = true
			}
		}
	}

	first := n.buf[0]
	n.buf = n.buf[:copy(n.buf, n.buf[1:])]
	if !first.handled {
		n.out = append(n.out, Verdict{Valid: false, Start: first.iv.Start, End: first.iv.End})
	}
}

// TryNext pops the oldest verdict.
func (n *Neighborhood[T]) TryNext() (Verdict, bool) {
	if len(n.out) == 0 {
		return Verdict{}, false
	}
	v := n.out[0]
	n.out = n.out[1:]
	return v, true
}

// Name returns the grouper name.
func (n *Neighborhood[T]) Name() string {
	return n.name
}
