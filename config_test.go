package apportion

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/apportion/internal/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 598, cfg.TotalSeats)
	require.Equal(t, 0.05, cfg.Eligibility.VoteShareThreshold)
	require.Equal(t, 3, cfg.Eligibility.DirectMandateThreshold)
	require.False(t, cfg.Eligibility.Inclusive)
	require.Equal(t, 256, cfg.Search.MaxIterations)
	require.Equal(t, LevelingProvisional, cfg.Leveling.Divisor)
	require.Equal(t, 0, cfg.Leveling.MaxRepairPasses)
	require.Equal(t, FloorDirectMandates, cfg.Redistribution.Floor)
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.Parallelism)
	require.Len(t, cfg.Coalitions, 6)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, 598, cfg.TotalSeats)
		require.Equal(t, 0.05, cfg.Eligibility.VoteShareThreshold)
		require.Equal(t, 3, cfg.Eligibility.DirectMandateThreshold)
		require.Equal(t, 256, cfg.Search.MaxIterations)
		require.Equal(t, LevelingProvisional, cfg.Leveling.Divisor)
		require.Equal(t, FloorDirectMandates, cfg.Redistribution.Floor)
		require.Positive(t, cfg.Parallelism)
		require.Empty(t, cfg.Coalitions)
		require.NoError(t, cfg.Validate())
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			TotalSeats: 631,
			Eligibility: EligibilityConfig{
				VoteShareThreshold:     0.03,
				DirectMandateThreshold: 2,
				Inclusive:              true,
			},
			Search:         SearchConfig{MaxIterations: 128},
			Leveling:       LevelingConfig{Divisor: LevelingLargest, MaxRepairPasses: 4},
			Redistribution: RedistributionConfig{Floor: FloorMinimumSeats},
			Parallelism:    2,
			Coalitions:     []Coalition{{Name: "grand", Parties: []string{"A", "B"}}},
		}
		SetDefaults(&cfg)

		require.Equal(t, 631, cfg.TotalSeats)
		require.Equal(t, 0.03, cfg.Eligibility.VoteShareThreshold)
		require.Equal(t, 2, cfg.Eligibility.DirectMandateThreshold)
		require.True(t, cfg.Eligibility.Inclusive)
		require.Equal(t, 128, cfg.Search.MaxIterations)
		require.Equal(t, LevelingLargest, cfg.Leveling.Divisor)
		require.Equal(t, 4, cfg.Leveling.MaxRepairPasses)
		require.Equal(t, FloorMinimumSeats, cfg.Redistribution.Floor)
		require.Equal(t, 2, cfg.Parallelism)
		require.Len(t, cfg.Coalitions, 1)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero seats", func(c *Config) { c.TotalSeats = 0 }},
		{"negative seats", func(c *Config) { c.TotalSeats = -1 }},
		{"threshold above one", func(c *Config) { c.Eligibility.VoteShareThreshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Eligibility.VoteShareThreshold = -0.1 }},
		{"negative mandate threshold", func(c *Config) { c.Eligibility.DirectMandateThreshold = -1 }},
		{"zero iterations", func(c *Config) { c.Search.MaxIterations = 0 }},
		{"unknown leveling divisor", func(c *Config) { c.Leveling.Divisor = "smallest" }},
		{"negative repair passes", func(c *Config) { c.Leveling.MaxRepairPasses = -1 }},
		{"unknown floor", func(c *Config) { c.Redistribution.Floor = "list-seats" }},
		{"zero parallelism", func(c *Config) { c.Parallelism = 0 }},
		{"unnamed coalition", func(c *Config) { c.Coalitions = []Coalition{{Parties: []string{"A"}}} }},
		{"empty coalition", func(c *Config) { c.Coalitions = []Coalition{{Name: "x"}} }},
		{"duplicate coalition", func(c *Config) {
			c.Coalitions = []Coalition{{Name: "x", Parties: []string{"A"}}, {Name: "x", Parties: []string{"B"}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eligibility.Inclusive = true
	cfg.Search.MaxIterations = 16

	// Must not panic with either a real or a nil logger.
	cfg.ValidateWithWarnings(logging.NewTest(t))
	cfg.ValidateWithWarnings(nil)
}

func TestConfig_YAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalSeats = 299
	cfg.Leveling.Divisor = LevelingLargest

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	require.Contains(t, string(data), "totalSeats: 299")
	require.Contains(t, string(data), "divisor: largest")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, cfg, decoded)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "apportion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, 598, cfg.TotalSeats)
		require.Equal(t, LevelingProvisional, cfg.Leveling.Divisor)
		require.Len(t, cfg.Coalitions, 6)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := writeConfig(t, `
totalSeats: 299
leveling:
  divisor: largest
coalitions:
  - name: grand
    parties: [CDU, CSU, SPD]
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 299, cfg.TotalSeats)
		require.Equal(t, LevelingLargest, cfg.Leveling.Divisor)
		require.Equal(t, 0.05, cfg.Eligibility.VoteShareThreshold)
		require.Equal(t, FloorDirectMandates, cfg.Redistribution.Floor)
		require.Equal(t, []Coalition{{Name: "grand", Parties: []string{"CDU", "CSU", "SPD"}}}, cfg.Coalitions)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "totalSeats: 299\n")
		t.Setenv("APPORTION_TOTALSEATS", "630")
		t.Setenv("APPORTION_ELIGIBILITY_INCLUSIVE", "true")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 630, cfg.TotalSeats)
		require.True(t, cfg.Eligibility.Inclusive)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, "redistribution:\n  floor: nowhere\n")
		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig_ExampleFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("examples", "config", "apportion.yaml"))
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, defaults.TotalSeats, cfg.TotalSeats)
	require.Equal(t, defaults.Eligibility, cfg.Eligibility)
	require.Equal(t, defaults.Leveling, cfg.Leveling)
	require.Equal(t, defaults.Coalitions, cfg.Coalitions)
}
