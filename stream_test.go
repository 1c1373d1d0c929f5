package groupz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func TestStamper_Name(t *testing.T) {
	require.Equal(t, "stamper", NewStamper[int](RealClock).Name())
}

func TestStamper_ContiguousIntervals(t *testing.T) {
	clock := clockz.NewFakeClock()
	t0 := clock.Now()

	stamper := NewStamper[int](clock)
	ctx := context.Background()

	in := make(chan int)
	out := stamper.Process(ctx, in)

	in <- 1
	ts := <-out
	require.Equal(t, 1, ts.Value)
	require.Equal(t, t0, ts.Start)
	require.Equal(t, t0, ts.End)

	clock.Advance(time.Second)
	in <- 2
	ts = <-out
	require.Equal(t, 2, ts.Value)
	require.Equal(t, t0, ts.Start)
	require.Equal(t, t0.Add(time.Second), ts.End)

	// Intervals are contiguous: each item starts where the previous ended.
	clock.Advance(2 * time.Second)
	in <- 3
	ts = <-out
	require.Equal(t, t0.Add(time.Second), ts.Start)
	require.Equal(t, t0.Add(3*time.Second), ts.End)

	close(in)
	_, ok := <-out
	require.False(t, ok)
}

func TestPipe_DrivesGrouper(t *testing.T) {
	block, err := NewBlock[int](2)
	require.NoError(t, err)

	pipe := NewPipe[int, Group[int]](block)
	require.Equal(t, "pipe", pipe.Name())

	ctx := context.Background()
	in := make(chan Timestamped[int])
	out := pipe.Process(ctx, in)

	go func() {
		for i := 0; i < 5; i++ {
			in <- Timestamped[int]{Value: i, Start: at(i), End: at(i + 1)}
		}
		close(in)
	}()

	var groups []Group[int]
	for g := range out {
		groups = append(groups, g)
	}

	// Five items make two full blocks; the pending tail is not flushed.
	require.Len(t, groups, 2)
	require.Equal(t, []int{0, 1}, groups[0].Items)
	require.Equal(t, at(0), groups[0].Start)
	require.Equal(t, at(2), groups[0].End)
	require.Equal(t, []int{2, 3}, groups[1].Items)
}

func TestPipe_ContextCancellation(t *testing.T) {
	block, err := NewBlock[int](1)
	require.NoError(t, err)

	pipe := NewPipe[int, Group[int]](block)
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan Timestamped[int])
	out := pipe.Process(ctx, in)

	in <- Timestamped[int]{Value: 1, Start: at(0), End: at(1)}
	<-out

	// With no receiver draining, cancellation must still unblock the pipe.
	in <- Timestamped[int]{Value: 2, Start: at(1), End: at(2)}
	cancel()

	// The in-flight group may or may not be delivered; the channel must
	// close either way.
	for range out { //nolint:revive // draining until close is the assertion
	}
}
