package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: state %q has zero population", ErrDegenerateInput, "Bremen")
		require.True(t, errors.Is(wrapped, ErrDegenerateInput))
		require.False(t, errors.Is(wrapped, ErrInconsistentPartition))

		joined := errors.Join(ErrNonConvergence, errors.New("additional context"))
		require.True(t, errors.Is(joined, ErrNonConvergence))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrDegenerateInput,
			ErrInconsistentPartition,
			ErrInvalidInput,
			ErrNonConvergence,
			ErrFloorViolation,
			ErrInvalidConfig,
			ErrVoteSourceRequired,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})

	t.Run("messages are non-empty", func(t *testing.T) {
		for _, err := range []error{ErrDegenerateInput, ErrNonConvergence, ErrFloorViolation} {
			require.NotEmpty(t, err.Error())
		}
	})
}
