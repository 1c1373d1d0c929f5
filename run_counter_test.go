package groupz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCounter_NilPredicate(t *testing.T) {
	_, err := NewRunCounter[int](nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunCounter_ImmediatelyAvailable(t *testing.T) {
	rc, err := NewRunCounter(func(n int) bool { return n > 0 })
	require.NoError(t, err)

	rc.Put(7, at(0), at(1))

	c, ok := rc.TryNext()
	require.True(t, ok)
	require.Zero(t, c.Run)
	require.Equal(t, at(0), c.Start)
	require.Equal(t, at(1), c.End)

	_, ok = rc.TryNext()
	require.False(t, ok)
}

// The counter reports the run length before each datum and resets on the
// first invalid one.
func TestRunCounter_RunsAndResets(t *testing.T) {
	rc, err := NewRunCounter(func(n int) bool { return n > 0 })
	require.NoError(t, err)

	data := []int{5, 3, 8, 0, 2, 4}
	for i, d := range data {
		rc.Put(d, at(i), at(i+1))
	}

	want := []int{0, 1, 2, 3, 0, 1}
	for i, w := range want {
		c, ok := rc.TryNext()
		require.True(t, ok)
		require.Equal(t, w, c.Run, "put %d", i)
		require.Equal(t, at(i), c.Start)
	}

	_, ok := rc.TryNext()
	require.False(t, ok)
}
