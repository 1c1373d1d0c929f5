package groupz

import "time"

// span tracks how many not-yet-sliced elements remain from one Put call and
// the portion of its interval they cover. Start advances as elements are
// consumed so boundary times interpolate proportionally.
type span struct {
	length int
	start  time.Time
	end    time.Time
}

// SlidingBlock groups primitive-valued elements into fixed-size blocks,
// slicing across the chunk boundaries of however the elements were put.
// Each Put supplies a run of elements plus the interval covering them; when
// a block boundary falls inside a put interval, the boundary time is
// interpolated proportionally (elements consumed over elements declared).
// A block may span several put intervals.
type SlidingBlock[T any] struct {
	name  string
	buf   ChunkBuffer[T]
	times []span
	out   []Group[T]
}

// NewSlidingBlock creates a grouper that slices element runs into blocks
// sized by the supplied buffer's chunk size.
//
// When to use:
//   - Re-framing audio or sensor sample runs into fixed-length blocks
//   - Aligning block boundaries independently of producer chunking
//   - Accumulating into packed numeric storage via a custom ChunkBuffer
//
// Example:
//
//	buf, _ := groupz.NewSequentialBuffer[float64](512)
//	sb, err := groupz.NewSlidingBlock[float64](buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sb.Put(samples, batchStart, batchEnd)
//	for g, ok := sb.TryNext(); ok; g, ok = sb.TryNext() {
//		transform(g.Items) // always 512 elements
//	}
//
// Parameters:
//   - buf: The ChunkBuffer elements accumulate in (must be non-nil and empty)
//
// Returns a new SlidingBlock grouper, or ErrInvalidConfig for a nil buffer.
func NewSlidingBlock[T any](buf ChunkBuffer[T]) (*SlidingBlock[T], error) {
	if buf == nil {
		return nil, newConfigError("sliding-block", "buffer", nil, "must be non-nil")
	}
	return &SlidingBlock[T]{
		buf:  buf,
		name: "sliding-block",
	}, nil
}

// Put appends a run of elements covering [start, end], completing as many
// blocks as the buffer now holds.
func (s *SlidingBlock[T]) Put(data []T, start, end time.Time) {
	s.buf.Put(data)
	s.times = append(s.times, span{length: len(data), start: start, end: end})

	for {
		chunk, ok := s.buf.TryNext()
		if !ok {
			return
		}
		blkStart := s.times[0].start
		blkEnd := s.consume(len(chunk))
		s.out = append(s.out, Group[T]{Items: chunk, Start: blkStart, End: blkEnd})
	}
}

// consume advances the span bookkeeping past n elements and returns the
// interpolated time at which the n-th element ends. Spans fully consumed by
// the block are dropped; the span holding the boundary has its start time
// advanced proportionally so the next block starts where this one ended.
func (s *SlidingBlock[T]) consume(n int) time.Time {
	for n > s.times[0].length {
		n -= s.times[0].length
		s.times = s.times[1:]
	}
	head := &s.times[0]
	proportion := float64(n) / float64(head.length)
	head.start = head.start.Add(scale(head.end.Sub(head.start), proportion))
	head.length -= n
	return head.start
}

// TryNext pops the oldest completed block.
func (s *SlidingBlock[T]) TryNext() (Group[T], bool) {
	if len(s.out) == 0 {
		return Group[T]{}, false
	}
	g := s.out[0]
	s.out = s.out[1:]
	return g, true
}

// Name returns the grouper name.
func (s *SlidingBlock[T]) Name() string {
	return s.name
}
