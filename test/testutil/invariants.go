package testutil

import (
	"testing"

	"github.com/arloliu/apportion/coalition"
	"github.com/arloliu/apportion/types"
)

// AssertResultConsistent verifies the structural invariants every successful
// run must satisfy:
//   - state quotas sum to the nominal seat total, and each state's list seats fill its quota
//   - every eligible party's state seats sum to its national total
//   - national totals reach the floor sums, and state seats reach the direct mandates
//   - the seat matrix sums to the assembly size, which is at least the nominal size
//   - coalition majorities match the assembly size
//
// Parameters:
//   - t: testing handle
//   - res: result of a successful run
func AssertResultConsistent(t testing.TB, res *types.Result) {
	t.Helper()

	quotaSum := 0
	for state, quota := range res.StateQuotas {
		quotaSum += quota
		if got := res.ListSeats.StateTotal(state); got != quota {
			t.Fatalf("state %s: list seats (%d) do not fill quota (%d)", state, got, quota)
		}
	}
	if quotaSum != res.NominalSeats {
		t.Fatalf("state quotas sum to %d, expected nominal %d", quotaSum, res.NominalSeats)
	}

	totalSum := 0
	for party, total := range res.NationalTotals {
		totalSum += total
		if got := res.Seats.PartyTotal(party); got != total {
			t.Fatalf("party %s: state seats sum to %d, national total is %d", party, got, total)
		}

		p, ok := res.Party(party)
		if !ok {
			t.Fatalf("party %s has a national total but no party result", party)
		}
		if total < p.FloorSum {
			t.Fatalf("party %s: national total %d below floor sum %d", party, total, p.FloorSum)
		}
	}

	for _, row := range res.Breakdown {
		if row.Seats < 0 {
			t.Fatalf("%s/%s: negative seats %d", row.Party, row.State, row.Seats)
		}
		if row.Seats < row.DirectMandates {
			t.Fatalf("%s/%s: seats (%d) below direct mandates (%d)", row.Party, row.State, row.Seats, row.DirectMandates)
		}
	}

	if totalSum != res.AssemblySize {
		t.Fatalf("national totals sum to %d, assembly size is %d", totalSum, res.AssemblySize)
	}
	if got := res.Seats.Total(); got != res.AssemblySize {
		t.Fatalf("seat matrix sums to %d, assembly size is %d", got, res.AssemblySize)
	}
	if res.AssemblySize < res.NominalSeats {
		t.Fatalf("assembly size %d below nominal %d", res.AssemblySize, res.NominalSeats)
	}

	majority := coalition.Majority(res.AssemblySize)
	for _, c := range res.Coalitions {
		if c.Majority != majority {
			t.Fatalf("coalition %s: majority %d, expected %d", c.Name, c.Majority, majority)
		}
	}
}
