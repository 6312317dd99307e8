package allocation

import (
	"fmt"

	"github.com/arloliu/apportion/divisor"
)

// StateSeats apportions the nominal seat total to states by population.
//
// Parameters:
//   - population: Apportionment population per state
//   - total: Nominal number of seats
//
// Returns:
//   - map[string]int: Seat quota per state summing to total
//   - error: Divisor errors wrapped with the stage
func (a *Allocator) StateSeats(population map[string]int64, total int) (map[string]int, error) {
	res, err := divisor.Apportion(population, total, a.divisorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageStateSeats, err)
	}

	a.observe(StageStateSeats, res)
	a.logger.Info("state quotas apportioned",
		"stage", StageStateSeats,
		"states", len(res.Seats),
		"seats", total,
		"divisor", res.Divisor,
		"iterations", res.Iterations)

	return res.Seats, nil
}
