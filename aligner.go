package groupz

import "time"

// alignWindow is one open bundle with no time grid: it exists because some
// topic put a datum, and it completes when every topic has put one.
type alignWindow[T any] struct {
	iv     Interval
	data   map[string]T
	filled map[string]bool
}

// Aligner bundles per-topic streams by arrival position rather than time
// overlap: each datum fills the first open bundle still missing its topic,
// or opens a new bundle stamped with the datum's own interval. A bundle
// emits once every topic is present. Use it when approximate co-occurrence
// is the correctness criterion and overlap-weighted timing is unnecessary.
type Aligner[T any] struct {
	name    string
	topics  []string
	known   map[string]bool
	windows []*alignWindow[T]
	onDrop  func(topic string, iv Interval)
}

// NewAligner creates a synchronizer that pairs topics positionally.
//
// When to use:
//   - Matching the n-th datum of each topic when producers run in lockstep
//   - Joining already-windowed streams one-for-one
//   - Cheap co-occurrence alignment without a time grid
//
// Example:
//
//	a, err := groupz.NewAligner[Frame]([]string{"left", "right"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	a.Put("left", lf, lf.Start, lf.End)
//	a.Put("right", rf, rf.Start, rf.End)
//	b, _ := a.TryNext() // both frames, stamped with the first arrival's span
//
// Parameters:
//   - topics: Named input streams (must be non-empty, unique, non-blank)
//
// Returns a new Aligner, or ErrInvalidConfig for a malformed topic list.
func NewAligner[T any](topics []string) (*Aligner[T], error) {
	if len(topics) == 0 {
		return nil, newConfigError("aligner", "topics", topics, "must be non-empty")
	}
	known := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t == "" {
			return nil, newConfigError("aligner", "topics", topics, "must not contain blank names")
		}
		if known[t] {
			return nil, newConfigError("aligner", "topics", topics, "must not contain duplicates")
		}
		known[t] = true
	}
	return &Aligner[T]{
		topics: topics,
		known:  known,
		name:   "aligner",
	}, nil
}

// OnDrop registers a diagnostic callback invoked when a datum arrives for
// an unknown topic. Passing nil clears the callback.
func (a *Aligner[T]) OnDrop(fn func(topic string, iv Interval)) {
	a.onDrop = fn
}

// Put places datum into the first open bundle missing its topic, opening a
// new bundle tagged with [start, end] when every open bundle already has
// one.
func (a *Aligner[T]) Put(topic string, datum T, start, end time.Time) {
	if !a.known[topic] {
		if a.onDrop != nil {
			a.onDrop(topic, Interval{Start: start, End: end})
		}
		return
	}
	for _, w := range a.windows {
		if !w.filled[topic] {
			w.filled[topic] = true
			w.data[topic] = datum
			return
		}
	}
	w := &alignWindow[T]{
		iv:     Interval{Start: start, End: end},
		data:   make(map[string]T, len(a.topics)),
		filled: make(map[string]bool, len(a.topics)),
	}
	w.filled[topic] = true
	w.data[topic] = datum
	a.windows = append(a.windows, w)
}

// TryNext pops the oldest bundle once every topic has filled it.
func (a *Aligner[T]) TryNext() (Bundle[T], bool) {
	if len(a.windows) == 0 {
		return Bundle[T]{}, false
	}
	w := a.windows[0]
	for _, t := range a.topics {
		if !w.filled[t] {
			return Bundle[T]{}, false
		}
	}
	a.windows = a.windows[1:]
	return Bundle[T]{Data: w.data, Start: w.iv.Start, End: w.iv.End}, true
}

// Name returns the synchronizer name.
func (a *Aligner[T]) Name() string {
	return a.name
}
