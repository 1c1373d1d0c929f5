package groupz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// base anchors all test timelines; at and sec translate the small integer
// timestamps used throughout the tests into real instants and durations.
var base = time.Unix(1700000000, 0)

func at(s int) time.Time {
	return base.Add(time.Duration(s) * time.Second)
}

func sec(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func TestInterval_Duration(t *testing.T) {
	iv := Interval{Start: at(3), End: at(10)}
	require.Equal(t, sec(7), iv.Duration())
}

func TestInterval_Overlap_Full(t *testing.T) {
	win := Interval{Start: at(0), End: at(10)}
	require.Equal(t, 1.0, win.Overlap(Interval{Start: at(0), End: at(10)}))
	require.Equal(t, 1.0, win.Overlap(Interval{Start: at(-5), End: at(15)}))
}

func TestInterval_Overlap_Partial(t *testing.T) {
	win := Interval{Start: at(0), End: at(10)}
	require.InDelta(t, 0.3, win.Overlap(Interval{Start: at(3), End: at(6)}), 1e-9)
	require.InDelta(t, 0.5, win.Overlap(Interval{Start: at(5), End: at(20)}), 1e-9)
	require.InDelta(t, 0.2, win.Overlap(Interval{Start: at(-3), End: at(2)}), 1e-9)
}

func TestInterval_Overlap_Disjoint(t *testing.T) {
	win := Interval{Start: at(0), End: at(10)}
	require.Zero(t, win.Overlap(Interval{Start: at(11), End: at(15)}))
	require.Zero(t, win.Overlap(Interval{Start: at(-5), End: at(-1)}))
}

func TestInterval_Overlap_Touching(t *testing.T) {
	win := Interval{Start: at(0), End: at(10)}

	// Boundary contact has zero measure but is not treated as disjoint.
	require.Zero(t, win.Overlap(Interval{Start: at(10), End: at(12)}))
	require.Zero(t, win.Overlap(Interval{Start: at(-2), End: at(0)}))
}
