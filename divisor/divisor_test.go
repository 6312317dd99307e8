package divisor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/internal/logging"
	"github.com/arloliu/apportion/types"
)

func TestApportion(t *testing.T) {
	t.Run("seed divisor hits target without iterations", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"X": 600, "Y": 400}, 10)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"X": 6, "Y": 4}, res.Seats)
		require.Equal(t, 0, res.Iterations)
		require.InDelta(t, 100.0, res.Divisor, 1e-9)
		require.Empty(t, res.Ties)
	})

	t.Run("second state with reversed shares", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"X": 300, "Y": 700}, 10)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"X": 3, "Y": 7}, res.Seats)
	})

	t.Run("searches when seed overshoots", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"A": 53, "B": 24, "C": 23}, 7)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 3, "B": 2, "C": 2}, res.Seats)
		require.Positive(t, res.Iterations)
		for id, v := range map[string]int64{"A": 53, "B": 24, "C": 23} {
			require.Equal(t, res.Seats[id], RoundHalfUp(v, res.Divisor), "entity %s", id)
		}
	})

	t.Run("searches when seed undershoots", func(t *testing.T) {
		// d0 = 10 rounds every quotient down and yields only 4 seats.
		votes := map[string]int64{"A": 12, "B": 12, "C": 12, "D": 14}
		res, err := Apportion(votes, 5)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 2}, res.Seats)
		require.Positive(t, res.Iterations)
		require.Empty(t, res.Ties)
	})

	t.Run("zero votes get zero seats", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"A": 100, "B": 0}, 5)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 5, "B": 0}, res.Seats)
	})

	t.Run("zero target yields all zeros", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"A": 100, "B": 50}, 0)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 0, "B": 0}, res.Seats)
		require.True(t, math.IsInf(res.Divisor, 1))
	})

	t.Run("initial divisor is honored", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"X": 600, "Y": 400}, 10, WithInitialDivisor(100))

		require.NoError(t, err)
		require.Equal(t, 0, res.Iterations)
	})

	t.Run("invalid initial divisor falls back to seed", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"X": 600, "Y": 400}, 10, WithInitialDivisor(math.NaN()))

		require.NoError(t, err)
		require.Equal(t, 0, res.Iterations)
	})
}

func TestApportion_Errors(t *testing.T) {
	tests := []struct {
		name  string
		votes map[string]int64
		seats int
		want  error
	}{
		{name: "empty entity set", votes: map[string]int64{}, seats: 5, want: types.ErrDegenerateInput},
		{name: "nil entity set", votes: nil, seats: 5, want: types.ErrDegenerateInput},
		{name: "all votes zero", votes: map[string]int64{"A": 0, "B": 0}, seats: 5, want: types.ErrDegenerateInput},
		{name: "negative votes", votes: map[string]int64{"A": 10, "B": -1}, seats: 5, want: types.ErrInvalidInput},
		{name: "negative target", votes: map[string]int64{"A": 10}, seats: -1, want: types.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apportion(tt.votes, tt.seats)

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApportion_Ties(t *testing.T) {
	t.Run("exact tie goes to lexically first entity", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"B": 1, "A": 1}, 1, WithLogger(logging.NewTest(t)))

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 1, "B": 0}, res.Seats)
		require.Equal(t, []string{"A", "B"}, res.Ties)
	})

	t.Run("three-way tie for two seats", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"C": 10, "A": 10, "B": 10}, 2)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 1, "B": 1, "C": 0}, res.Seats)
		require.Equal(t, []string{"A", "B", "C"}, res.Ties)
	})

	t.Run("untied entities keep their seats", func(t *testing.T) {
		res, err := Apportion(map[string]int64{"A": 3, "B": 3, "C": 12}, 3)

		require.NoError(t, err)
		require.Equal(t, 3, res.Sum())
		require.Equal(t, 2, res.Seats["C"])
		require.Equal(t, 1, res.Seats["A"])
		require.Equal(t, 0, res.Seats["B"])
		require.Equal(t, []string{"A", "B"}, res.Ties)
	})
}

func TestApportion_IterationBound(t *testing.T) {
	_, err := Apportion(map[string]int64{"A": 1, "B": 1}, 1, WithMaxIterations(3))

	require.ErrorIs(t, err, types.ErrNonConvergence)
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		votes int64
		d     float64
		want  int
	}{
		{votes: 0, d: 1, want: 0},
		{votes: 5, d: 10, want: 1},
		{votes: 4, d: 10, want: 0},
		{votes: 15, d: 10, want: 2},
		{votes: 25, d: 10, want: 3},
		{votes: 600, d: 100, want: 6},
		{votes: 100, d: math.Inf(1), want: 0},
		{votes: 1, d: 1e-300, want: math.MaxInt32},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, RoundHalfUp(tt.votes, tt.d), "votes=%d d=%g", tt.votes, tt.d)
	}
}
