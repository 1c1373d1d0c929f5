package groupz

import "time"

// RunCounter counts how many consecutive data satisfied a validity
// predicate before each datum. Every Put emits exactly one Count, stamped
// with that datum's interval and carrying the pre-put run length; an
// invalid datum resets the run to zero. Output is available immediately.
type RunCounter[T any] struct {
	name    string
	isValid func(T) bool
	run     int
	out     []Count
}

// NewRunCounter creates a grouper that tracks run lengths of valid data.
//
// When to use:
//   - Detecting how long a sensor has been in a good state
//   - Gating downstream logic on a minimum run of valid readings
//   - Annotating each datum with its stream position since the last fault
//
// Example:
//
//	rc, err := groupz.NewRunCounter(func(r Reading) bool { return r.OK })
//	if err != nil {
//		log.Fatal(err)
//	}
//	rc.Put(r, r.Start, r.End)
//	c, _ := rc.TryNext() // c.Run valid readings preceded r
//
// Parameters:
//   - isValid: Predicate deciding whether a datum extends the run
//
// Returns a new RunCounter grouper, or ErrInvalidConfig for a nil predicate.
func NewRunCounter[T any](isValid func(T) bool) (*RunCounter[T], error) {
	if isValid == nil {
		return nil, newConfigError("run-counter", "isValid", nil, "must be non-nil")
	}
	return &RunCounter[T]{
		isValid: isValid,
		name:    "run-counter",
	}, nil
}

// Put emits the current run length stamped with datum's interval, then
// extends or resets the run.
func (c *RunCounter[T]) Put(datum T, start, end time.Time) {
	c.out = append(c.out, Count{Run: c.run, Start: start, End: end})
	if c.isValid(datum) {
		c.run++
	} else {
		c.run = 0
	}
}

// TryNext pops the oldest emitted count.
func (c *RunCounter[T]) TryNext() (Count, bool) {
	if len(c.out) == 0 {
		return Count{}, false
	}
	n := c.out[0]
	c.out = c.out[1:]
	return n, true
}

// Name returns the grouper name.
func (c *RunCounter[T]) Name() string {
	return c.name
}
