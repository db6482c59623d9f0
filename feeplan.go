package fundfees

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FeePlan is the fund's fee configuration as read from a YAML plan file. It
// is the input side of every calculator: rates in fee-scale basis points,
// performance tiers as return multiples.
type FeePlan struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`

	SubscriptionBps FeeBps    `yaml:"subscription_bps"`
	ManagementBps   FeeBps    `yaml:"management_bps"`
	Frequency       Frequency `yaml:"frequency"`

	PerformanceBps FeeBps       `yaml:"performance_bps"`
	HurdleBps      FeeBps       `yaml:"hurdle_bps"`
	Tiers          []TierConfig `yaml:"tiers"`

	IntroducerBps FeeBps `yaml:"introducer_bps"`
}

// TierConfig is one performance tier in the plan file. The tiers may appear
// in any order; the engine sorts them before use.
type TierConfig struct {
	ThresholdMultiplier *float64 `yaml:"threshold_multiplier"`
	RateBps             FeeBps   `yaml:"rate_bps"`
}

// PerformanceTiers converts the configured tiers to the engine's Tier form.
func (p *FeePlan) PerformanceTiers() []Tier {
	tiers := make([]Tier, 0, len(p.Tiers))
	for _, tc := range p.Tiers {
		t := Tier{Rate: tc.RateBps}
		if tc.ThresholdMultiplier != nil {
			q := Q(*tc.ThresholdMultiplier)
			t.Threshold = &q
		}
		tiers = append(tiers, t)
	}
	return tiers
}

// LoadFeePlan reads a fee plan from a YAML file.
func LoadFeePlan(path string) (*FeePlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read fee plan: %w", err)
	}
	return ParseFeePlan(data)
}

// ParseFeePlan parses a fee plan from YAML bytes.
func ParseFeePlan(data []byte) (*FeePlan, error) {
	var plan FeePlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("invalid fee plan: %w", err)
	}
	if plan.Currency == "" {
		plan.Currency = "USD"
	}
	return &plan, nil
}
