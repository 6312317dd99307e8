package allocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func TestRedistribute(t *testing.T) {
	states := []string{"N", "S"}

	t.Run("unconstrained result meets floors", func(t *testing.T) {
		votes := map[string]map[string]int64{
			"N": {"A": 70, "B": 75},
			"S": {"B": 50},
		}
		floors := types.SeatMatrix{
			"A": {"N": 3, "S": 0},
			"B": {"N": 3, "S": 3},
		}

		seats, err := New().Redistribute(context.Background(), map[string]int{"A": 5, "B": 10}, votes, floors, states)

		require.NoError(t, err)
		require.Equal(t, types.SeatMatrix{
			"A": {"N": 5, "S": 0},
			"B": {"N": 6, "S": 4},
		}, seats)
	})

	t.Run("floor enforced in weak state", func(t *testing.T) {
		rec := newRecordingMetrics()
		votes := map[string]map[string]int64{
			"N": {"P": 900},
			"S": {"P": 100},
		}
		floors := types.SeatMatrix{"P": {"S": 3}}

		seats, err := New(WithMetrics(rec)).Redistribute(context.Background(), map[string]int{"P": 10}, votes, floors, states)

		require.NoError(t, err)
		require.Equal(t, 7, seats.Get("P", "N"))
		require.Equal(t, 3, seats.Get("P", "S"))
		require.Equal(t, 2, rec.iterations[StageRedistribution])
	})

	t.Run("party without second votes holds its floors", func(t *testing.T) {
		votes := map[string]map[string]int64{"N": {}, "S": {}}
		floors := types.SeatMatrix{"IND": {"N": 1, "S": 1}}

		seats, err := New().Redistribute(context.Background(), map[string]int{"IND": 2}, votes, floors, states)

		require.NoError(t, err)
		require.Equal(t, 2, seats.PartyTotal("IND"))
	})
}

func TestRedistribute_Errors(t *testing.T) {
	states := []string{"N", "S"}

	t.Run("total below floor sum", func(t *testing.T) {
		votes := map[string]map[string]int64{"N": {"P": 10}, "S": {"P": 10}}
		floors := types.SeatMatrix{"P": {"N": 2, "S": 1}}

		_, err := New().Redistribute(context.Background(), map[string]int{"P": 2}, votes, floors, states)

		require.ErrorIs(t, err, types.ErrFloorViolation)
		require.Contains(t, err.Error(), `party "P"`)
	})

	t.Run("seats beyond floors without votes", func(t *testing.T) {
		votes := map[string]map[string]int64{"N": {}, "S": {}}
		floors := types.SeatMatrix{"IND": {"N": 1}}

		_, err := New().Redistribute(context.Background(), map[string]int{"IND": 3}, votes, floors, states)

		require.ErrorIs(t, err, types.ErrDegenerateInput)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		votes := map[string]map[string]int64{"N": {"P": 10}, "S": {"P": 10}}
		_, err := New().Redistribute(ctx, map[string]int{"P": 2}, votes, types.SeatMatrix{}, states)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRedistribute_RowSumsAndFloors(t *testing.T) {
	states := []string{"BW", "BY", "HH", "SH"}
	votes := map[string]map[string]int64{
		"BW": {"A": 2_000, "B": 1_500, "C": 400},
		"BY": {"A": 3_000, "B": 1_000, "C": 300},
		"HH": {"A": 400, "B": 600, "C": 200},
		"SH": {"A": 700, "B": 650, "C": 150},
	}
	floors := types.SeatMatrix{
		"A": {"BW": 10, "BY": 16, "HH": 4, "SH": 4},
		"B": {"BW": 7, "BY": 5, "HH": 5, "SH": 3},
		"C": {"BW": 2, "BY": 1, "HH": 1, "SH": 1},
	}
	totals := map[string]int{"A": 36, "B": 21, "C": 6}

	seats, err := New(WithParallelism(2)).Redistribute(context.Background(), totals, votes, floors, states)
	require.NoError(t, err)

	for party, total := range totals {
		require.Equal(t, total, seats.PartyTotal(party), "party %s", party)
		for _, state := range states {
			require.GreaterOrEqual(t, seats.Get(party, state), floors.Get(party, state), "party %s state %s", party, state)
		}
	}
}
