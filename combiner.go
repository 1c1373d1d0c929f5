package groupz

import "time"

// syncWindow is one open bundle slot grid. A topic is ready once its stream
// has provably advanced past the window; the window emits only when every
// topic is ready. overlap tracks the best coverage seen per topic so a
// later datum replaces an earlier one only by strictly beating it.
type syncWindow[T any] struct {
	iv      Interval
	data    map[string]T
	overlap map[string]float64
	ready   map[string]bool
}

// Combiner merges independently fed, per-topic streams into jointly-aligned
// bundles on a fixed-duration grid offset from a configured start time. For
// each window and topic the datum with maximal proportional time overlap
// wins; equal overlap keeps the earlier arrival. A bundle is emitted only
// once every topic is ready — it has either contributed its best datum and
// moved past the window, or proven it has nothing for it — and bundles
// emit strictly oldest-first.
//
// The first bundle produced is the first for which all topics can provide a
// verdict: windows wholly preceding a topic's first datum are discarded at
// that topic's first contact, so topics that start at different times do
// not force an arbitrarily long run of hopeless windows.
type Combiner[T any] struct {
	name      string
	topics    []string
	known     map[string]bool
	seen      map[string]bool
	dur       time.Duration
	nextStart time.Time
	windows   []*syncWindow[T]
	onDrop    func(topic string, iv Interval)
}

// NewCombiner creates a synchronizer that aligns topics by proportional
// time overlap.
//
// When to use:
//   - Fusing sensor topics sampled at different rates into joint frames
//   - Building per-window feature vectors with one slot per source
//   - Any alignment where "most overlapping datum per window" is the rule
//
// Example:
//
//	c, err := groupz.NewCombiner[Reading](epoch, time.Second, []string{"acc", "gyro"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Put("acc", a, a.Start, a.End)
//	c.Put("gyro", g, g.Start, g.End)
//	for b, ok := c.TryNext(); ok; b, ok = c.TryNext() {
//		fuse(b.Data["acc"], b.Data["gyro"], b.Start, b.End)
//	}
//
// Parameters:
//   - start: Time all bundle boundaries are offset from
//   - duration: Length of each bundle window (must be > 0)
//   - topics: Named input streams (must be non-empty, unique, non-blank)
//
// Returns a new Combiner, or ErrInvalidConfig for a malformed grid or topic
// list.
func NewCombiner[T any](start time.Time, duration time.Duration, topics []string) (*Combiner[T], error) {
	if duration <= 0 {
		return nil, newConfigError("combiner", "duration", duration, "must be positive")
	}
	if len(topics) == 0 {
		return nil, newConfigError("combiner", "topics", topics, "must be non-empty")
	}
	known := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t == "" {
			return nil, newConfigError("combiner", "topics", topics, "must not contain blank names")
		}
		if known[t] {
			return nil, newConfigError("combiner", "topics", topics, "must not contain duplicates")
		}
		known[t] = true
	}
	return &Combiner[T]{
		topics:    topics,
		known:     known,
		seen:      make(map[string]bool, len(topics)),
		dur:       duration,
		nextStart: start,
		name:      "combiner",
	}, nil
}

// OnDrop registers a diagnostic callback invoked when a datum is dropped:
// either its topic is unknown or its interval ends before any open window.
// Dropping never aborts ingestion. Passing nil clears the callback.
func (c *Combiner[T]) OnDrop(fn func(topic string, iv Interval)) {
	c.onDrop = fn
}

// Put routes datum into every open window its interval overlaps, replacing
// a topic's slot only on strictly greater overlap, and marks the topic
// ready in windows its stream has moved past.
func (c *Combiner[T]) Put(topic string, datum T, start, end time.Time) {
	if !c.known[topic] {
		c.drop(topic, start, end)
		return
	}
	if !c.seen[topic] {
		c.firstContact(topic, start)
	}

	if len(c.windows) == 0 {
		c.addWindow()
	}
	if end.Before(c.windows[0].iv.Start) {
		c.drop(topic, start, end)
		return
	}
	// Cover the datum's full span: keep opening windows until the newest
	// starts strictly after it ends.
	for !c.windows[len(c.windows)-1].iv.Start.After(end) {
		c.addWindow()
	}

	iv := Interval{Start: start, End: end}
	for _, w := range c.windows {
		if !w.iv.End.After(start) {
			// The topic's stream is already past this window; nothing
			// arriving later can overlap it more.
			w.ready[topic] = true
			continue
		}
		if w.iv.Start.After(end) {
			break
		}
		if ov := w.iv.Overlap(iv); ov > w.overlap[topic] {
			w.data[topic] = datum
			w.overlap[topic] = ov
		}
	}
}

// firstContact handles the first datum seen on a topic: windows this topic
// can never serve are discarded outright, and when no windows remain the
// grid is fast-forwarded by whole window multiples so a late-starting topic
// does not spawn a long run of hopeless windows.
func (c *Combiner[T]) firstContact(topic string, start time.Time) {
	c.seen[topic] = true
	for len(c.windows) > 0 && start.After(c.windows[0].iv.End) {
		c.windows = c.windows[1:]
	}
	if start.After(c.nextStart) {
		// Only reachable with no windows open.
		c.nextStart = c.nextStart.Add(c.dur * (start.Sub(c.nextStart) / c.dur))
	}
}

func (c *Combiner[T]) addWindow() {
	c.windows = append(c.windows, &syncWindow[T]{
		iv:      Interval{Start: c.nextStart, End: c.nextStart.Add(c.dur)},
		data:    make(map[string]T, len(c.topics)),
		overlap: make(map[string]float64, len(c.topics)),
		ready:   make(map[string]bool, len(c.topics)),
	})
	c.nextStart = c.nextStart.Add(c.dur)
}

func (c *Combiner[T]) drop(topic string, start, end time.Time) {
	if c.onDrop != nil {
		c.onDrop(topic, Interval{Start: start, End: end})
	}
}

// TryNext pops the oldest window once every topic is ready in it. Later
// windows never emit first, however complete.
func (c *Combiner[T]) TryNext() (Bundle[T], bool) {
	if len(c.windows) == 0 {
		return Bundle[T]{}, false
	}
	w := c.windows[0]
	for _, t := range c.topics {
		if !w.ready[t] {
			return Bundle[T]{}, false
		}
	}
	c.windows = c.windows[1:]
	return Bundle[T]{Data: w.data, Start: w.iv.Start, End: w.iv.End}, true
}

// Name returns the synchronizer name.
func (c *Combiner[T]) Name() string {
	return c.name
}
