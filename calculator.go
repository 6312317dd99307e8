package apportion

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/apportion/coalition"
	"github.com/arloliu/apportion/internal/allocation"
	"github.com/arloliu/apportion/internal/eligibility"
	"github.com/arloliu/apportion/internal/hash"
	"github.com/arloliu/apportion/internal/logging"
	"github.com/arloliu/apportion/internal/metrics"
	"github.com/arloliu/apportion/internal/tally"
	"github.com/arloliu/apportion/types"
)

// Calculator runs the seat apportionment for elections read from a VoteSource.
//
// A Calculator holds no per-run state. Run may be called repeatedly and
// concurrently; each call produces an independent Result.
type Calculator struct {
	cfg     Config
	source  VoteSource
	alloc   *allocation.Allocator
	metrics MetricsCollector
	logger  Logger
}

// NewCalculator creates a new Calculator.
//
// Missing configuration values are filled with defaults (cfg is modified in
// place) and the result is validated.
//
// Parameters:
//   - cfg: Configuration (required)
//   - source: Vote source supplying the election (required; a typed nil pointer counts as missing)
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Calculator: Calculator ready for Run
//   - error: ErrInvalidConfig or ErrVoteSourceRequired (wrapped)
//
// Example:
//
//	cfg := apportion.DefaultConfig()
//	calc, err := apportion.NewCalculator(&cfg, source.NewFile("btw2017.yaml"))
//	if err != nil { /* handle */ }
//	result, err := calc.Run(ctx)
func NewCalculator(cfg *Config, source VoteSource, opts ...Option) (*Calculator, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if isNilSource(source) {
		return nil, ErrVoteSourceRequired
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	options := &calculatorOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	metricsCollector := metrics.OrNop(options.metrics)
	loggerInstance := logging.OrNop(options.logger)

	cfg.ValidateWithWarnings(loggerInstance)

	c := &Calculator{
		cfg:     *cfg,
		source:  source,
		metrics: metricsCollector,
		logger:  loggerInstance,
	}
	c.cfg.Coalitions = slices.Clone(cfg.Coalitions)
	c.alloc = allocation.New(
		allocation.WithParallelism(cfg.Parallelism),
		allocation.WithMaxIterations(cfg.Search.MaxIterations),
		allocation.WithLogger(loggerInstance),
		allocation.WithMetrics(metricsCollector),
	)

	return c, nil
}

// isNilSource reports whether source is nil or an interface holding a nil
// pointer, such as a (*source.File)(nil).
func isNilSource(source VoteSource) bool {
	if source == nil {
		return true
	}

	v := reflect.ValueOf(source)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Config returns a copy of the effective configuration.
func (c *Calculator) Config() Config {
	cfg := c.cfg
	cfg.Coalitions = slices.Clone(c.cfg.Coalitions)

	return cfg
}

// Run loads the election from the vote source and apportions it.
//
// Parameters:
//   - ctx: Context for cancellation; checked between tiers and inside workers
//
// Returns:
//   - *Result: Complete apportionment
//   - error: Source, input, search or context error; no partial result is returned.
//     A source returning neither an election nor an error yields ErrDegenerateInput.
func (c *Calculator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	election, err := c.source.LoadElection(ctx)
	if err != nil {
		c.metrics.RecordRunDuration(time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("load election: %w", err)
	}
	if election == nil {
		c.metrics.RecordRunDuration(time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("load election: %w: source returned no election", ErrDegenerateInput)
	}

	result, err := c.compute(ctx, election)
	c.metrics.RecordRunDuration(time.Since(start).Seconds(), err == nil)
	if err != nil {
		c.logger.Error("apportionment failed", "election", election.Name, "error", err)
		return nil, err
	}

	return result, nil
}

// Compute apportions an election supplied directly by the caller, bypassing
// the vote source.
//
// Parameters:
//   - ctx: Context for cancellation
//   - election: Election to apportion (not modified)
//
// Returns:
//   - *Result: Complete apportionment
//   - error: Input, search or context error
func (c *Calculator) Compute(ctx context.Context, election *Election) (*Result, error) {
	start := time.Now()
	result, err := c.compute(ctx, election)
	c.metrics.RecordRunDuration(time.Since(start).Seconds(), err == nil)

	return result, err
}

// ValidateElection checks the district/state partition and that every
// district has a direct-mandate winner, without apportioning seats.
//
// Parameters:
//   - election: Election to check
//
// Returns:
//   - error: ErrInconsistentPartition, ErrInvalidInput or ErrDegenerateInput (wrapped), nil when valid
func ValidateElection(election *Election) error {
	if err := tally.ValidatePartition(election); err != nil {
		return err
	}

	if _, err := tally.ResolveDirectMandates(election, nil); err != nil {
		return err
	}

	votes := tally.Aggregate(election)
	if votes.NationalTotal() <= 0 {
		return fmt.Errorf("%w: no national second votes", ErrDegenerateInput)
	}

	return nil
}

func (c *Calculator) compute(ctx context.Context, election *Election) (*Result, error) {
	if err := tally.ValidatePartition(election); err != nil {
		return nil, fmt.Errorf("validate election: %w", err)
	}

	runID := uuid.NewString()
	logger := c.logger
	logger.Info("apportionment started",
		"run_id", runID,
		"election", election.Name,
		"states", len(election.States),
		"districts", len(election.Districts),
		"nominal_seats", c.cfg.TotalSeats)

	mandates, err := tally.ResolveDirectMandates(election, logger)
	if err != nil {
		return nil, fmt.Errorf("direct mandates: %w", err)
	}

	votes := tally.Aggregate(election)
	if votes.FromAggregate {
		logger.Debug("using national aggregate second votes", "run_id", runID, "parties", len(votes.National))
	}

	decisions, err := eligibility.Evaluate(votes.National, mandates.National, c.cfg.eligibilityConfig())
	if err != nil {
		return nil, fmt.Errorf("eligibility: %w", err)
	}

	eligible := make([]string, 0, len(decisions))
	for _, d := range decisions {
		if d.Eligible {
			eligible = append(eligible, d.Party)
			logger.Debug("party eligible", "run_id", runID, "party", d.Party, "reason", string(d.Reason))
		}
	}
	logger.Info("eligibility decided", "run_id", runID, "eligible", eligible)

	quotas, err := c.alloc.StateSeats(votes.Population, c.cfg.TotalSeats)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, err := c.alloc.ListSeats(ctx, votes.ByState, quotas, eligible)
	if err != nil {
		return nil, err
	}

	stateIDs := election.StateIDs()
	direct, unattached := splitMandates(mandates.ByState, eligible)
	floors := allocation.MinimumSeats(list, direct, eligible, stateIDs)

	nationalEligible := make(map[string]int64, len(eligible))
	for _, p := range eligible {
		nationalEligible[p] = votes.National[p]
	}

	leveling, err := c.alloc.Level(nationalEligible, floors.Sums, eligible,
		allocation.LevelingMode(c.cfg.Leveling.Divisor), c.cfg.Leveling.MaxRepairPasses)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stateFloors := direct
	if c.cfg.Redistribution.Floor == FloorMinimumSeats {
		stateFloors = floors.ByState
	}

	seats, err := c.alloc.Redistribute(ctx, leveling.Totals, votes.ByState, stateFloors, stateIDs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:              runID,
		Election:           election.Name,
		InputsHash:         hash.Fingerprint(election),
		NominalSeats:       c.cfg.TotalSeats,
		AssemblySize:       leveling.AssemblySize,
		StateQuotas:        quotas,
		Eligible:           eligible,
		ListSeats:          list,
		DirectMandates:     direct,
		Seats:              seats,
		NationalTotals:     leveling.Totals,
		UnattachedMandates: unattached,
		LevelingDivisor:    leveling.Divisor,
	}
	result.Parties = c.partyResults(election, decisions, votes, floors, leveling)
	result.Breakdown = breakdown(eligible, stateIDs, list, direct, floors.ByState, seats)
	result.Coalitions = coalition.Evaluate(c.cfg.Coalitions, leveling.Totals, leveling.AssemblySize)

	overhang, levelingSeats := 0, leveling.AssemblySize
	for _, row := range result.Breakdown {
		overhang += row.Overhang
	}
	for _, p := range eligible {
		levelingSeats -= floors.Sums[p]
	}

	c.metrics.RecordAssemblySize(leveling.AssemblySize)
	c.metrics.RecordOverhangSeats(overhang)
	c.metrics.RecordLevelingSeats(levelingSeats)

	logger.Info("apportionment complete",
		"run_id", runID,
		"election", election.Name,
		"assembly_size", leveling.AssemblySize,
		"overhang", overhang,
		"leveling", levelingSeats,
		"inputs_hash", result.InputsHash)

	return result, nil
}

// splitMandates separates the direct mandates of eligible parties from those
// won by ineligible parties.
func splitMandates(byState types.SeatMatrix, eligible []string) (types.SeatMatrix, types.SeatMatrix) {
	direct := make(types.SeatMatrix, len(eligible))
	unattached := make(types.SeatMatrix)

	for party, row := range byState {
		target := unattached
		if slices.Contains(eligible, party) {
			target = direct
		}
		for state, n := range row {
			target.Set(party, state, n)
		}
	}

	if len(unattached) == 0 {
		unattached = nil
	}

	return direct, unattached
}

func (c *Calculator) partyResults(
	election *Election,
	decisions []eligibility.Decision,
	votes *tally.Votes,
	floors allocation.Floors,
	leveling allocation.Leveling,
) []PartyResult {
	byParty := make(map[string]eligibility.Decision, len(decisions))
	for _, d := range decisions {
		byParty[d.Party] = d
	}

	parties := election.Parties()
	for p := range byParty {
		if !slices.Contains(parties, p) {
			parties = append(parties, p)
		}
	}
	slices.Sort(parties)

	total := votes.NationalTotal()
	results := make([]PartyResult, 0, len(parties))
	for _, p := range parties {
		d := byParty[p]
		share := 0.0
		if total > 0 {
			share = float64(votes.National[p]) / float64(total)
		}

		results = append(results, PartyResult{
			ID:                p,
			Eligible:          d.Eligible,
			SecondVotes:       votes.National[p],
			VoteShare:         share,
			ProportionalShare: share * float64(c.cfg.TotalSeats),
			DirectMandates:    d.DirectMandates,
			FloorSum:          floors.Sums[p],
			NationalTotal:     leveling.Totals[p],
		})
	}

	return results
}

func breakdown(
	eligible, states []string,
	list, direct, floors, seats types.SeatMatrix,
) []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(eligible)*len(states))
	for _, p := range eligible {
		for _, s := range states {
			row := BreakdownRow{
				Party:          p,
				State:          s,
				ListSeats:      list.Get(p, s),
				DirectMandates: direct.Get(p, s),
				Floor:          floors.Get(p, s),
				Seats:          seats.Get(p, s),
			}
			row.Overhang = max(0, row.DirectMandates-row.ListSeats)
			row.Leveling = row.Seats - row.Floor
			rows = append(rows, row)
		}
	}

	return rows
}
