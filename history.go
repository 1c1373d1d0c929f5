package groupz

import "time"

// History provides, for each datum after the first, a group of the length
// data that preceded it. The emitted group is stamped with the interval of
// the datum that triggered it, giving a one-step look-ahead: consumers see
// "the last length data as of this datum". No more than length+1 data are
// ever pending internally.
type History[T any] struct {
	name   string
	length int
	data   []T
	times  []Interval
	out    []Group[T]
}

// NewHistory creates a grouper that emits sliding histories of prior data.
//
// When to use:
//   - Supplying model features with a fixed look-back context
//   - Change detection against the preceding run of readings
//   - Any "previous N values as of now" computation
//
// Example:
//
//	h, err := groupz.NewHistory[Sample](100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// After the 101st Put, each Put emits the 100 data before it.
//	h.Put(s, s.Start, s.End)
//	if g, ok := h.TryNext(); ok {
//		predict(g.Items, g.Start, g.End)
//	}
//
// Parameters:
//   - length: Number of data in each emitted history (must be > 0)
//
// Returns a new History grouper, or ErrInvalidConfig for a non-positive
// length.
func NewHistory[T any](length int) (*History[T], error) {
	if length <= 0 {
		return nil, newConfigError("history", "length", length, "must be positive")
	}
	return &History[T]{
		length: length,
		name:   "history",
	}, nil
}

// Put appends datum; once length+1 data are pending, the oldest length of
// them are emitted stamped with datum's interval and the very oldest is
// evicted.
func (h *History[T]) Put(datum T, start, end time.Time) {
	h.data = append(h.data, datum)
	h.times = append(h.times, Interval{Start: start, End: end})

	if len(h.data) <= h.length {
		return
	}

	items := make([]T, h.length)
	copy(items, h.data)
	trigger := h.times[h.length]
	h.out = append(h.out, Group[T]{Items: items, Start: trigger.Start, End: trigger.End})

	h.data = h.data[:copy(h.data, h.data[1:])]
	h.times = h.times[:copy(h.times, h.times[1:])]
}

// TryNext pops the oldest emitted history.
func (h *History[T]) TryNext() (Group[T], bool) {
	if len(h.out) == 0 {
		return Group[T]{}, false
	}
	g := h.out[0]
	h.out = h.out[1:]
	return g, true
}

// Name returns the grouper name.
func (h *History[T]) Name() string {
	return h.name
}
