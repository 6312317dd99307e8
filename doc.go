// Package apportion computes seat allocations for a two-vote mixed-member
// proportional parliament modeled on the German Bundestag electoral law.
//
// Given district-level first and second votes, the district/state partition and
// state populations, a Calculator runs the full apportionment:
//
//	district winners ─┐
//	                  ├─> eligible parties ─> state quotas ─> list seats
//	national votes ───┘                                          │
//	                                                             v
//	coalitions <─ seats per state <─ national leveling <─ minimum seats
//
// Every tier uses the Sainte-Laguë divisor method implemented by the divisor
// package.
//
// # Quick Start
//
//	cfg := apportion.DefaultConfig()
//	src := source.NewFile("btw2017.yaml")
//
//	calc, err := apportion.NewCalculator(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := calc.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.AssemblySize, result.NationalTotals)
//
// # Configuration
//
// Config can be built in code or loaded with LoadConfig, which reads YAML and
// honors APPORTION_* environment overrides (APPORTION_TOTALSEATS,
// APPORTION_ELIGIBILITY_INCLUSIVE, ...).
//
// # Errors
//
// Runs fail as a whole. The sentinel errors in this package (ErrDegenerateInput,
// ErrInconsistentPartition, ErrNonConvergence, ErrFloorViolation, ...) are
// wrapped with context and can be matched with errors.Is.
//
// See the examples/ directory and cmd/apportion for complete programs.
package apportion
