package groupz

import "time"

// Block groups exactly size consecutive data into one output group. Each
// input datum appears in exactly one group; a group's span runs from the
// start of its first datum to the end of its last. Emission is strictly
// FIFO with no overlap logic.
type Block[T any] struct {
	name  string
	size  int
	items []T
	span  Interval
	out   []Group[T]
}

// NewBlock creates a grouper that emits fixed-count blocks of consecutive
// data.
//
// When to use:
//   - Slicing a sample stream into equal-count analysis frames
//   - Feeding feature extractors that require a fixed input length
//   - Micro-batching discrete events without a time dimension
//
// Example:
//
//	block, err := groupz.NewBlock[Sample](256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for s := range samples {
//		block.Put(s, s.Start, s.End)
//	}
//	for g, ok := block.TryNext(); ok; g, ok = block.TryNext() {
//		analyze(g.Items) // always 256 samples
//	}
//
// Parameters:
//   - size: Number of data per block (must be > 0)
//
// Returns a new Block grouper, or ErrInvalidConfig for a non-positive size.
func NewBlock[T any](size int) (*Block[T], error) {
	if size <= 0 {
		return nil, newConfigError("block", "size", size, "must be positive")
	}
	return &Block[T]{
		size: size,
		name: "block",
	}, nil
}

// Put appends datum to the accumulating block, completing a group once size
// data have been collected.
func (b *Block[T]) Put(datum T, start, end time.Time) {
	if len(b.items) == 0 {
		b.span.Start = start
	}
	b.items = append(b.items, datum)
	b.span.End = end

	if len(b.items) == b.size {
		b.out = append(b.out, Group[T]{Items: b.items, Start: b.span.Start, End: b.span.End})
		b.items = nil
	}
}

// TryNext pops the oldest completed block.
func (b *Block[T]) TryNext() (Group[T], bool) {
	if len(b.out) == 0 {
		return Group[T]{}, false
	}
	g := b.out[0]
	b.out = b.out[1:]
	return g, true
}

// Name returns the grouper name.
func (b *Block[T]) Name() string {
	return b.name
}
