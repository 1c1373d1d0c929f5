package groupz

import (
	"context"
	"time"
)

// Timestamped carries a value together with its validity interval, the wire
// record the channel adapters move around.
type Timestamped[T any] struct {
	Value T
	Start time.Time
	End   time.Time
}

// Stamper converts a channel of bare values into a channel of Timestamped
// values: each item's interval runs from the previous item's end (or the
// stream start) to the clock reading at arrival. It is the bridge between
// untimestamped producers and the groupers in this package.
type Stamper[T any] struct {
	name  string
	clock Clock
}

// NewStamper creates a processor that stamps arrival intervals onto items.
//
// When to use:
//   - Feeding groupers from producers that carry no timestamps
//   - Assigning contiguous sample-and-hold intervals to polled readings
//   - Deterministic interval assignment in tests via a fake clock
//
// Example:
//
//	stamper := groupz.NewStamper[Reading](groupz.RealClock)
//	stamped := stamper.Process(ctx, readings)
//	for r := range stamped {
//		fw.Put(r.Value, r.Start, r.End)
//	}
//
// Parameters:
//   - clock: Clock interface for time operations
func NewStamper[T any](clock Clock) *Stamper[T] {
	return &Stamper[T]{
		name:  "stamper",
		clock: clock,
	}
}

func (s *Stamper[T]) Process(ctx context.Context, in <-chan T) <-chan Timestamped[T] {
	out := make(chan Timestamped[T])

	go func() {
		defer close(out)

		prev := s.clock.Now()
		for item := range in {
			now := s.clock.Now()
			ts := Timestamped[T]{Value: item, Start: prev, End: now}
			prev = now

			select {
			case out <- ts:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (s *Stamper[T]) Name() string {
	return s.name
}

// Pipe adapts a Grouper into a channel processor: incoming Timestamped
// items are put in arrival order and every group completed as a result is
// forwarded downstream. Closing the input closes the output without
// flushing open state; groupers deliberately leave partial groups
// unemitted, so callers wanting end-of-stream output arrange it themselves.
type Pipe[T, G any] struct {
	name    string
	grouper Grouper[T, G]
}

// NewPipe wraps a grouper for channel-based pipelines.
//
// Example:
//
//	block, _ := groupz.NewBlock[float64](256)
//	pipe := groupz.NewPipe[float64, groupz.Group[float64]](block)
//	for g := range pipe.Process(ctx, stamped) {
//		extract(g.Items)
//	}
//
// Parameters:
//   - grouper: The grouper driven by this pipe (must be non-nil)
func NewPipe[T, G any](grouper Grouper[T, G]) *Pipe[T, G] {
	return &Pipe[T, G]{
		name:    "pipe",
		grouper: grouper,
	}
}

func (p *Pipe[T, G]) Process(ctx context.Context, in <-chan Timestamped[T]) <-chan G {
	out := make(chan G)

	go func() {
		defer close(out)

		for item := range in {
			p.grouper.Put(item.Value, item.Start, item.End)

			for {
				g, ok := p.grouper.TryNext()
				if !ok {
					break
				}
				select {
				case out <- g:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (p *Pipe[T, G]) Name() string {
	return p.name
}
