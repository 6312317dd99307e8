package apportion

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/arloliu/apportion/coalition"
	"github.com/arloliu/apportion/divisor"
	"github.com/arloliu/apportion/internal/eligibility"
	"github.com/arloliu/apportion/internal/logging"
)

// EnvPrefix is the environment variable prefix read by LoadConfig.
const EnvPrefix = "APPORTION"

// Leveling divisor rules.
const (
	// LevelingProvisional starts leveling from min votes/floorSum over parties.
	LevelingProvisional = "provisional"

	// LevelingLargest starts leveling from the largest divisor that keeps every
	// party at its floor sum (smallest enlargement).
	LevelingLargest = "largest"
)

// Redistribution floor rules.
const (
	// FloorDirectMandates keeps every party at its direct mandates per state.
	FloorDirectMandates = "direct-mandates"

	// FloorMinimumSeats keeps every party at max(list seats, direct mandates) per state.
	FloorMinimumSeats = "minimum-seats"
)

// EligibilityConfig controls which parties take part in list seat allocation.
type EligibilityConfig struct {
	// VoteShareThreshold is the national second-vote share a party must exceed.
	// Default: 0.05
	VoteShareThreshold float64 `yaml:"voteShareThreshold" mapstructure:"voteShareThreshold"`

	// DirectMandateThreshold is the number of district wins a party must exceed.
	// Default: 3 (a zero value is replaced by the default)
	DirectMandateThreshold int `yaml:"directMandateThreshold" mapstructure:"directMandateThreshold"`

	// Inclusive switches both comparisons from > to >=.
	Inclusive bool `yaml:"inclusive" mapstructure:"inclusive"`
}

// SearchConfig bounds the divisor searches.
type SearchConfig struct {
	// MaxIterations is the number of rounded-sum evaluations after which a
	// divisor search fails with ErrNonConvergence.
	// Default: 256
	MaxIterations int `yaml:"maxIterations" mapstructure:"maxIterations"`
}

// LevelingConfig controls national leveling.
type LevelingConfig struct {
	// Divisor selects the starting divisor: "provisional" or "largest".
	// Default: "provisional"
	Divisor string `yaml:"divisor" mapstructure:"divisor"`

	// MaxRepairPasses bounds the repair loop. Zero means one pass per eligible party.
	MaxRepairPasses int `yaml:"maxRepairPasses" mapstructure:"maxRepairPasses"`
}

// RedistributionConfig controls how national totals return to the states.
type RedistributionConfig struct {
	// Floor selects the per-state floor: "direct-mandates" or "minimum-seats".
	// Default: "direct-mandates"
	Floor string `yaml:"floor" mapstructure:"floor"`
}

// Config is the configuration for the Calculator.
type Config struct {
	// TotalSeats is the nominal assembly size apportioned to the states.
	// Default: 598
	TotalSeats int `yaml:"totalSeats" mapstructure:"totalSeats"`

	// Eligibility controls the threshold test.
	Eligibility EligibilityConfig `yaml:"eligibility" mapstructure:"eligibility"`

	// Search bounds the divisor searches.
	Search SearchConfig `yaml:"search" mapstructure:"search"`

	// Leveling controls national leveling.
	Leveling LevelingConfig `yaml:"leveling" mapstructure:"leveling"`

	// Redistribution controls the per-state floors of the final distribution.
	Redistribution RedistributionConfig `yaml:"redistribution" mapstructure:"redistribution"`

	// Parallelism bounds the number of concurrent per-state and per-party workers.
	// Default: runtime.GOMAXPROCS(0)
	Parallelism int `yaml:"parallelism" mapstructure:"parallelism"`

	// Coalitions lists the coalitions evaluated after each run.
	Coalitions []Coalition `yaml:"coalitions" mapstructure:"coalitions"`
}

// DefaultConfig returns a Config with the statutory defaults and the standard
// coalition list.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		TotalSeats: 598,
		Eligibility: EligibilityConfig{
			VoteShareThreshold:     eligibility.DefaultVoteShareThreshold,
			DirectMandateThreshold: eligibility.DefaultDirectMandateThreshold,
		},
		Search: SearchConfig{
			MaxIterations: divisor.DefaultMaxIterations,
		},
		Leveling: LevelingConfig{
			Divisor: LevelingProvisional,
		},
		Redistribution: RedistributionConfig{
			Floor: FloorDirectMandates,
		},
		Parallelism: runtime.GOMAXPROCS(0),
		Coalitions:  coalition.Defaults(),
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Coalitions are left untouched: an empty list evaluates no coalitions.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.TotalSeats == 0 {
		cfg.TotalSeats = defaults.TotalSeats
	}
	if cfg.Eligibility.VoteShareThreshold == 0 {
		cfg.Eligibility.VoteShareThreshold = defaults.Eligibility.VoteShareThreshold
	}
	if cfg.Eligibility.DirectMandateThreshold == 0 {
		cfg.Eligibility.DirectMandateThreshold = defaults.Eligibility.DirectMandateThreshold
	}
	if cfg.Search.MaxIterations == 0 {
		cfg.Search.MaxIterations = defaults.Search.MaxIterations
	}
	if cfg.Leveling.Divisor == "" {
		cfg.Leveling.Divisor = defaults.Leveling.Divisor
	}
	if cfg.Redistribution.Floor == "" {
		cfg.Redistribution.Floor = defaults.Redistribution.Floor
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = defaults.Parallelism
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped) with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.TotalSeats <= 0 {
		return fmt.Errorf("%w: TotalSeats must be > 0, got %d", ErrInvalidConfig, cfg.TotalSeats)
	}

	if err := cfg.eligibilityConfig().Validate(); err != nil {
		return err
	}

	if cfg.Search.MaxIterations <= 0 {
		return fmt.Errorf("%w: Search.MaxIterations must be > 0, got %d", ErrInvalidConfig, cfg.Search.MaxIterations)
	}

	switch cfg.Leveling.Divisor {
	case LevelingProvisional, LevelingLargest:
	default:
		return fmt.Errorf("%w: Leveling.Divisor must be %q or %q, got %q",
			ErrInvalidConfig, LevelingProvisional, LevelingLargest, cfg.Leveling.Divisor)
	}

	if cfg.Leveling.MaxRepairPasses < 0 {
		return fmt.Errorf("%w: Leveling.MaxRepairPasses must be >= 0, got %d", ErrInvalidConfig, cfg.Leveling.MaxRepairPasses)
	}

	switch cfg.Redistribution.Floor {
	case FloorDirectMandates, FloorMinimumSeats:
	default:
		return fmt.Errorf("%w: Redistribution.Floor must be %q or %q, got %q",
			ErrInvalidConfig, FloorDirectMandates, FloorMinimumSeats, cfg.Redistribution.Floor)
	}

	if cfg.Parallelism <= 0 {
		return fmt.Errorf("%w: Parallelism must be > 0, got %d", ErrInvalidConfig, cfg.Parallelism)
	}

	seen := make(map[string]struct{}, len(cfg.Coalitions))
	for i, c := range cfg.Coalitions {
		if c.Name == "" {
			return fmt.Errorf("%w: coalition at index %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: duplicate coalition %q", ErrInvalidConfig, c.Name)
		}
		seen[c.Name] = struct{}{}
		if len(c.Parties) == 0 {
			return fmt.Errorf("%w: coalition %q has no parties", ErrInvalidConfig, c.Name)
		}
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but unusual values.
//
// This is called after Validate() in NewCalculator() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	logger = logging.OrNop(logger)

	if cfg.Eligibility.Inclusive {
		logger.Warn(
			"inclusive eligibility thresholds admit parties exactly at the threshold",
			"voteShareThreshold", cfg.Eligibility.VoteShareThreshold,
			"directMandateThreshold", cfg.Eligibility.DirectMandateThreshold,
		)
	}

	if cfg.Search.MaxIterations < 64 {
		logger.Warn(
			"Search.MaxIterations is low, ties may fail to converge",
			"maxIterations", cfg.Search.MaxIterations,
			"recommended", divisor.DefaultMaxIterations,
		)
	}

	if cfg.Parallelism > 4*runtime.GOMAXPROCS(0) {
		logger.Warn(
			"Parallelism far exceeds available CPUs",
			"parallelism", cfg.Parallelism,
			"gomaxprocs", runtime.GOMAXPROCS(0),
		)
	}
}

func (cfg *Config) eligibilityConfig() eligibility.Config {
	return eligibility.Config{
		VoteShareThreshold:     cfg.Eligibility.VoteShareThreshold,
		DirectMandateThreshold: cfg.Eligibility.DirectMandateThreshold,
		Inclusive:              cfg.Eligibility.Inclusive,
	}
}

// newViper builds a Viper instance reading YAML with APPORTION_* environment
// overrides. Nested keys map "." to "_", so "eligibility.inclusive" resolves to
// APPORTION_ELIGIBILITY_INCLUSIVE.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Environment variables only reach Unmarshal for keys Viper knows about.
	d := DefaultConfig()
	v.SetDefault("totalSeats", d.TotalSeats)
	v.SetDefault("eligibility.voteShareThreshold", d.Eligibility.VoteShareThreshold)
	v.SetDefault("eligibility.directMandateThreshold", d.Eligibility.DirectMandateThreshold)
	v.SetDefault("eligibility.inclusive", d.Eligibility.Inclusive)
	v.SetDefault("search.maxIterations", d.Search.MaxIterations)
	v.SetDefault("leveling.divisor", d.Leveling.Divisor)
	v.SetDefault("leveling.maxRepairPasses", d.Leveling.MaxRepairPasses)
	v.SetDefault("redistribution.floor", d.Redistribution.Floor)
	v.SetDefault("parallelism", d.Parallelism)

	coalitions := make([]map[string]any, len(d.Coalitions))
	for i, c := range d.Coalitions {
		coalitions[i] = map[string]any{"name": c.Name, "parties": c.Parties}
	}
	v.SetDefault("coalitions", coalitions)

	return v
}

// LoadConfig reads the YAML file at path, merges APPORTION_* environment
// overrides, applies defaults for unset fields and validates the result.
//
// An empty path builds the configuration from defaults and environment only.
// The standard coalition list applies unless the file sets "coalitions".
//
// Parameters:
//   - path: YAML configuration file ("" for none)
//
// Returns:
//   - *Config: Fully populated configuration
//   - error: Read, decode or validation error
//
// Example:
//
//	cfg, err := apportion.LoadConfig("apportion.yaml")
//	if err != nil { /* handle */ }
//	calc, err := apportion.NewCalculator(cfg, source.NewFile("btw2017.yaml"))
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
