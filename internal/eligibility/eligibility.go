// Package eligibility decides which parties take part in list seat allocation.
//
// A party qualifies when its national second-vote share exceeds the vote-share
// threshold or when it wins more direct mandates than the mandate threshold.
// Share comparisons are evaluated exactly with rational arithmetic so that a
// party sitting precisely on the threshold is never misclassified by rounding.
package eligibility

import (
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strconv"

	"github.com/arloliu/apportion/types"
)

// Default thresholds.
const (
	DefaultVoteShareThreshold     = 0.05
	DefaultDirectMandateThreshold = 3
)

// Config controls the eligibility test.
type Config struct {
	// VoteShareThreshold is the national share a party must exceed (0 < x < 1).
	VoteShareThreshold float64 `yaml:"voteShareThreshold" mapstructure:"voteShareThreshold"`

	// DirectMandateThreshold is the number of district wins a party must exceed.
	DirectMandateThreshold int `yaml:"directMandateThreshold" mapstructure:"directMandateThreshold"`

	// Inclusive switches both comparisons from > to >=.
	Inclusive bool `yaml:"inclusive" mapstructure:"inclusive"`
}

// DefaultConfig returns the 5% / 3 mandate configuration with strict comparisons.
func DefaultConfig() Config {
	return Config{
		VoteShareThreshold:     DefaultVoteShareThreshold,
		DirectMandateThreshold: DefaultDirectMandateThreshold,
	}
}

// Validate checks the thresholds.
func (c Config) Validate() error {
	if !(c.VoteShareThreshold > 0 && c.VoteShareThreshold < 1) {
		return fmt.Errorf("%w: vote share threshold must be in (0, 1), got %v", types.ErrInvalidConfig, c.VoteShareThreshold)
	}
	if c.DirectMandateThreshold < 0 {
		return fmt.Errorf("%w: direct mandate threshold must be >= 0, got %d", types.ErrInvalidConfig, c.DirectMandateThreshold)
	}

	return nil
}

// Reason explains why a party qualified.
type Reason string

// Qualification reasons.
const (
	ReasonNone          Reason = ""
	ReasonVoteShare     Reason = "vote_share"
	ReasonMandates      Reason = "direct_mandates"
	ReasonShareMandates Reason = "vote_share+direct_mandates"
)

// Decision is the eligibility verdict for one party.
type Decision struct {
	Party          string
	SecondVotes    int64
	DirectMandates int
	Eligible       bool
	Reason         Reason
}

// Evaluate returns one Decision per party that has second votes or direct mandates.
//
// Parameters:
//   - secondVotes: National second votes per party
//   - mandates: National direct-mandate count per party
//   - cfg: Thresholds
//
// Returns:
//   - []Decision: Decisions in lexical party order
//   - error: ErrInvalidConfig or ErrDegenerateInput (wrapped)
func Evaluate(secondVotes map[string]int64, mandates map[string]int, cfg Config) ([]Decision, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var total int64
	for _, v := range secondVotes {
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: no national second votes", types.ErrDegenerateInput)
	}

	threshold, ok := new(big.Rat).SetString(strconv.FormatFloat(cfg.VoteShareThreshold, 'f', -1, 64))
	if !ok {
		return nil, fmt.Errorf("%w: unparsable vote share threshold %v", types.ErrInvalidConfig, cfg.VoteShareThreshold)
	}

	parties := make(map[string]struct{}, len(secondVotes)+len(mandates))
	for p := range secondVotes {
		parties[p] = struct{}{}
	}
	for p := range mandates {
		parties[p] = struct{}{}
	}

	decisions := make([]Decision, 0, len(parties))
	for _, p := range slices.Sorted(maps.Keys(parties)) {
		share := new(big.Rat).SetFrac64(secondVotes[p], total)
		byShare := passes(share.Cmp(threshold), cfg.Inclusive)
		byMandates := passes(compareInt(mandates[p], cfg.DirectMandateThreshold), cfg.Inclusive)

		d := Decision{
			Party:          p,
			SecondVotes:    secondVotes[p],
			DirectMandates: mandates[p],
			Eligible:       byShare || byMandates,
		}
		switch {
		case byShare && byMandates:
			d.Reason = ReasonShareMandates
		case byShare:
			d.Reason = ReasonVoteShare
		case byMandates:
			d.Reason = ReasonMandates
		}
		decisions = append(decisions, d)
	}

	return decisions, nil
}

// Filter returns the eligible party IDs in lexical order.
//
// Parameters:
//   - secondVotes: National second votes per party
//   - mandates: National direct-mandate count per party
//   - cfg: Thresholds
//
// Returns:
//   - []string: Eligible party IDs
//   - error: ErrInvalidConfig or ErrDegenerateInput (wrapped)
func Filter(secondVotes map[string]int64, mandates map[string]int, cfg Config) ([]string, error) {
	decisions, err := Evaluate(secondVotes, mandates, cfg)
	if err != nil {
		return nil, err
	}

	eligible := make([]string, 0, len(decisions))
	for _, d := range decisions {
		if d.Eligible {
			eligible = append(eligible, d.Party)
		}
	}

	return eligible, nil
}

func passes(cmp int, inclusive bool) bool {
	if inclusive {
		return cmp >= 0
	}

	return cmp > 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
