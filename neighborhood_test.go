package groupz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func allNonzero(run []int) bool {
	for _, v := range run {
		if v == 0 {
			return false
		}
	}
	return true
}

func TestNeighborhood_InvalidConfig(t *testing.T) {
	_, err := NewNeighborhood[int](nil, 3)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewNeighborhood(allNonzero, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// A datum's verdict is true iff at least one contiguous run of the
// configured length containing it validates; every datum whose runs are all
// evaluated is emitted exactly once.
func TestNeighborhood_Exhaustiveness(t *testing.T) {
	nb, err := NewNeighborhood(allNonzero, 3)
	require.NoError(t, err)

	data := []int{1, 0, 1, 1, 1, 0}
	for i, d := range data {
		nb.Put(d, at(i), at(i+1))
	}

	type emission struct {
		valid bool
		start int
	}
	var got []emission
	for v, ok := nb.TryNext(); ok; v, ok = nb.TryNext() {
		got = append(got, emission{valid: v.Valid, start: int(v.Start.Sub(base) / sec(1))})
	}

	// Datum 0 and 1 sit in no all-nonzero run of length 3; data 2, 3 and 4
	// share the valid run [2, 4]. Data 4 and 5 still have unevaluated runs
	// pending, but 4 validated early and was emitted at once.
	want := []emission{
		{false, 0},
		{false, 1},
		{true, 2},
		{true, 3},
		{true, 4},
	}
	require.Equal(t, want, got)
}

// A valid run emits the verdict for every member immediately; members are
// not re-emitted when later runs containing them also validate.
func TestNeighborhood_ExactlyOnce(t *testing.T) {
	nb, err := NewNeighborhood(allNonzero, 2)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		nb.Put(1, at(i), at(i+1))
	}

	var starts []time.Duration
	for v, ok := nb.TryNext(); ok; v, ok = nb.TryNext() {
		require.True(t, v.Valid)
		starts = append(starts, v.Start.Sub(base))
	}

	require.Equal(t, []time.Duration{0, sec(1), sec(2), sec(3), sec(4)}, starts)
}

func TestNeighborhood_VerdictCarriesInterval(t *testing.T) {
	nb, err := NewNeighborhood(allNonzero, 2)
	require.NoError(t, err)

	nb.Put(0, at(0), at(3))
	nb.Put(0, at(3), at(6))

	v, ok := nb.TryNext()
	require.True(t, ok)
	require.False(t, v.Valid)
	require.Equal(t, at(0), v.Start)
	require.Equal(t, at(3), v.End)
}
