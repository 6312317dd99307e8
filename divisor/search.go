package divisor

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/arloliu/apportion/types"
)

// problem is one divisor search over a fixed entity order.
type problem struct {
	ids    []string
	votes  []int64
	floors []int
	target int
}

func newProblem(votes map[string]int64, floors map[string]int, target int) *problem {
	ids := slices.Sorted(maps.Keys(votes))
	p := &problem{
		ids:    ids,
		votes:  make([]int64, len(ids)),
		floors: make([]int, len(ids)),
		target: target,
	}

	for i, id := range ids {
		p.votes[i] = votes[id]
		p.floors[i] = floors[id]
	}

	return p
}

// seatsAt returns the per-entity seats and their sum at divisor d.
func (p *problem) seatsAt(d float64) ([]int, int) {
	seats := make([]int, len(p.ids))
	sum := 0
	for i, v := range p.votes {
		seats[i] = max(RoundHalfUp(v, d), p.floors[i])
		sum += seats[i]
	}

	return seats, sum
}

func (p *problem) result(seats []int, d float64, iterations int, ties []string) Result {
	out := make(map[string]int, len(p.ids))
	for i, id := range p.ids {
		out[id] = seats[i]
	}

	return Result{Seats: out, Divisor: d, Iterations: iterations, Ties: ties}
}

func (p *problem) floorSum() int {
	sum := 0
	for _, f := range p.floors {
		sum += f
	}

	return sum
}

// search finds a divisor whose rounded sum equals the target. Inputs are
// already validated.
func search(votes map[string]int64, floors map[string]int, target int, s settings) (Result, error) {
	p := newProblem(votes, floors, target)

	// With the target fully covered by floors (including T == 0), any divisor
	// large enough to round every quotient to zero is a solution.
	if target == p.floorSum() {
		seats, _ := p.seatsAt(math.Inf(1))
		return p.result(seats, math.Inf(1), 0, nil), nil
	}

	var total int64
	for _, v := range p.votes {
		total += v
	}

	d := s.initialDivisor
	if d == 0 {
		d = float64(total) / float64(target)
	}

	seats, sum := p.seatsAt(d)
	if sum == target {
		s.logger.Debug("divisor seed hit target", "divisor", d, "target", target, "entities", len(p.ids))
		return p.result(seats, d, 0, nil), nil
	}

	iterations := 0
	step := func() error {
		iterations++
		if iterations > s.maxIterations {
			return fmt.Errorf("%w: no divisor for target %d after %d evaluations", types.ErrNonConvergence, target, s.maxIterations)
		}

		return nil
	}

	// lo always yields more seats than the target, hi fewer.
	var lo, hi float64
	var loSeats, hiSeats []int

	if sum > target {
		lo, loSeats = d, seats
		for {
			if err := step(); err != nil {
				return Result{}, err
			}
			d *= 2
			seats, sum = p.seatsAt(d)
			if sum == target {
				return p.converged(seats, d, iterations, s), nil
			}
			if sum < target {
				hi, hiSeats = d, seats
				break
			}
			lo, loSeats = d, seats
		}
	} else {
		hi, hiSeats = d, seats
		for {
			if err := step(); err != nil {
				return Result{}, err
			}
			d /= 2
			seats, sum = p.seatsAt(d)
			if sum == target {
				return p.converged(seats, d, iterations, s), nil
			}
			if sum > target {
				lo, loSeats = d, seats
				break
			}
			hi, hiSeats = d, seats
		}
	}

	for {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			return p.breakTie(loSeats, hiSeats, hi, iterations, s), nil
		}

		if err := step(); err != nil {
			return Result{}, err
		}

		seats, sum = p.seatsAt(mid)
		switch {
		case sum == target:
			return p.converged(seats, mid, iterations, s), nil
		case sum > target:
			lo, loSeats = mid, seats
		default:
			hi, hiSeats = mid, seats
		}
	}
}

func (p *problem) converged(seats []int, d float64, iterations int, s settings) Result {
	s.logger.Debug("divisor search converged",
		"divisor", d,
		"target", p.target,
		"iterations", iterations,
		"entities", len(p.ids))

	return p.result(seats, d, iterations, nil)
}

// breakTie completes the allocation when no divisor hits the target. Entities
// whose seats differ between lo and hi share the breakpoint; starting from the
// hi allocation, they receive one extra seat each in lexical order until the
// target is met.
func (p *problem) breakTie(loSeats, hiSeats []int, hi float64, iterations int, s settings) Result {
	seats := slices.Clone(hiSeats)
	remaining := p.target
	for _, n := range seats {
		remaining -= n
	}

	var tied []int
	for i := range p.ids {
		if loSeats[i] > hiSeats[i] {
			tied = append(tied, i)
		}
	}

	for remaining > 0 {
		for _, i := range tied {
			if remaining == 0 {
				break
			}
			if seats[i] < loSeats[i] {
				seats[i]++
				remaining--
			}
		}
	}

	ties := make([]string, len(tied))
	for n, i := range tied {
		ties[n] = p.ids[i]
	}

	s.logger.Warn("seat tie resolved by entity order",
		"divisor", hi,
		"target", p.target,
		"tied", ties,
		"iterations", iterations)

	return p.result(seats, hi, iterations, ties)
}
