package types

// Coalition is a named set of parties evaluated against the assembly majority.
type Coalition struct {
	// Name labels the coalition (e.g., "ampel").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Parties lists the member party IDs.
	Parties []string `json:"parties" yaml:"parties" mapstructure:"parties"`
}

// Feasibility labels reported for each coalition.
const (
	CoalitionPossible    = "possible"
	CoalitionNotPossible = "not possible"
)

// CoalitionResult is the evaluation of one coalition.
type CoalitionResult struct {
	// Name is the coalition name.
	Name string `json:"name" yaml:"name"`

	// Parties lists the member party IDs as configured.
	Parties []string `json:"parties" yaml:"parties"`

	// Seats is the sum of the members' national seat totals.
	Seats int `json:"seats" yaml:"seats"`

	// Majority is ceil(assembly size / 2).
	Majority int `json:"majority" yaml:"majority"`

	// Margin is Seats - Majority.
	Margin int `json:"margin" yaml:"margin"`

	// Label is CoalitionPossible when Margin >= 0, CoalitionNotPossible otherwise.
	Label string `json:"label" yaml:"label"`

	// Missing lists members without seats in the result (e.g., below threshold).
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Possible reports whether the coalition reaches the majority.
func (c CoalitionResult) Possible() bool {
	return c.Margin >= 0
}
