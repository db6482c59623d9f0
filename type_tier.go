package fundfees

import "sort"

// Tier is one band of a tiered performance-fee schedule. The threshold is a
// return multiple on the entry price (1.5 means +50%); a nil threshold makes
// the tier unbounded.
type Tier struct {
	Threshold *Quantity `json:"threshold_multiplier,omitempty"`
	Rate      FeeBps    `json:"rate_bps"`
}

// sortedTiers returns an owned copy of tiers sorted ascending by threshold,
// unbounded tiers last. Configuration supplies tiers in no particular order
// and the caller's slice is never mutated.
func sortedTiers(tiers []Tier) []Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Threshold, sorted[j].Threshold
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.LessThan(*b)
		}
	})
	return sorted
}
