package fundfees

// Performance-fee algorithms, from flat rate to tiered-with-hurdle. All are
// pure computations on economic inputs. Rounding differs on purpose: the
// hurdle variants round to the cent before returning, the share-price
// variants return the exact amount and leave rounding to the presentation
// boundary. Downstream consumers depend on those exact rounding points.

// SimplePerformanceFee is the flat-rate performance fee on the per-share
// gain. A loss or a flat return charges nothing.
func SimplePerformanceFee(rate FeeBps, shares Quantity, entryPrice, exitPrice Money) Money {
	gainPerShare := exitPrice.Sub(entryPrice)
	if !gainPerShare.IsPositive() {
		return entryPrice.Zero()
	}
	return gainPerShare.Mul(shares).MulRate(rate)
}

// TieredPerformanceFee walks a schedule of return-multiple tiers and charges
// each band of the gain at its own rate. The walk starts at multiplier 1
// (the entry price) and stops as soon as the realized return multiple no
// longer reaches the next band. The sum is returned unrounded.
func TieredPerformanceFee(entryPrice, exitPrice Money, shares Quantity, tiers []Tier) Money {
	if !exitPrice.GreaterThan(entryPrice) {
		return entryPrice.Zero()
	}
	multiple := exitPrice.DivPrice(entryPrice)

	total := entryPrice.Zero()
	previous := One
	for _, tier := range sortedTiers(tiers) {
		if !multiple.GreaterThan(previous) {
			break
		}
		applicable := multiple
		if tier.Threshold != nil && tier.Threshold.LessThan(multiple) {
			applicable = *tier.Threshold
		}
		gainPerShare := entryPrice.Mul(applicable.Sub(previous))
		total = total.Add(gainPerShare.Mul(shares).MulRate(tier.Rate))

		if tier.Threshold == nil {
			// unbounded tier consumed the rest of the gain
			break
		}
		previous = *tier.Threshold
		if !multiple.GreaterThan(previous) {
			// the return does not reach the next tier
			break
		}
	}
	return total
}

// hurdleReturn is the simple, non-compounding hurdle accrual: the minimum
// return the capital must earn before any carry accrues, proportional to the
// years held.
func hurdleReturn(capital Money, hurdleRate FeeBps, yearsHeld Quantity) Money {
	return capital.MulRate(hurdleRate).Mul(yearsHeld)
}

// PerformanceFeeWithHurdle is the capital-based carry: the carry rate applied
// to the profit above the hurdle return, rounded to the cent. Profit at or
// below the hurdle charges nothing.
func PerformanceFeeWithHurdle(capital, proceeds Money, carryRate, hurdleRate FeeBps, yearsHeld Quantity) Money {
	profit := proceeds.Sub(capital)
	if !profit.IsPositive() {
		return capital.Zero()
	}
	aboveHurdle := profit.Sub(hurdleReturn(capital, hurdleRate, yearsHeld))
	if !aboveHurdle.IsPositive() {
		return capital.Zero()
	}
	return aboveHurdle.MulRate(carryRate).Round(2)
}

// HurdleTiers configures TieredPerformanceFeeWithHurdle. Thresholds are
// return multiples on the contributed capital; a zero Tier2Rate or a nil
// Tier1Threshold collapses the schedule to a single tier at Tier1Rate.
type HurdleTiers struct {
	Tier1Rate      FeeBps
	Tier1Threshold *Quantity
	Tier2Rate      FeeBps
	Tier2Threshold *Quantity
}

// TieredPerformanceFeeWithHurdle combines the hurdle with a two-band tier
// schedule on the return multiple. The hurdle deduction is applied once, to
// tier 1's band only: tier 2's band is carved out of the total profit, not
// the profit above hurdle. That asymmetry is part of the established fee
// contract and is preserved here pending product confirmation.
func TieredPerformanceFeeWithHurdle(capital, proceeds Money, yearsHeld Quantity, hurdleRate FeeBps, tiers HurdleTiers) Money {
	profit := proceeds.Sub(capital)
	if !profit.IsPositive() {
		return capital.Zero()
	}
	hurdle := hurdleReturn(capital, hurdleRate, yearsHeld)
	aboveHurdle := profit.Sub(hurdle)
	if !aboveHurdle.IsPositive() {
		return capital.Zero()
	}

	if tiers.Tier1Threshold == nil || tiers.Tier2Rate <= 0 {
		// degenerate single-tier schedule
		return aboveHurdle.MulRate(tiers.Tier1Rate).Round(2)
	}

	fee := capital.Zero()
	returnMultiple := proceeds.DivPrice(capital)

	// Tier 1 band: profit up to capital×(threshold-1), net of the hurdle.
	tier1Max := capital.Mul(tiers.Tier1Threshold.Sub(One))
	tier1Band := tier1Max.Sub(hurdle)
	if tier1Band.IsNegative() {
		tier1Band = capital.Zero()
	}
	tier1Profit := minMoney(aboveHurdle, tier1Band)
	if tier1Profit.IsPositive() {
		fee = fee.Add(tier1Profit.MulRate(tiers.Tier1Rate))
	}

	// Tier 2 band, only reached above the tier-1 threshold. Computed against
	// the total profit: the hurdle consumed the lowest band already.
	if returnMultiple.GreaterThan(*tiers.Tier1Threshold) {
		tier2Start := capital.Mul(tiers.Tier1Threshold.Sub(One))
		tier2End := profit
		if tiers.Tier2Threshold != nil {
			tier2End = capital.Mul(tiers.Tier2Threshold.Sub(One))
		}
		tier2Profit := minMoney(profit, tier2End).Sub(tier2Start)
		if tier2Profit.IsPositive() {
			fee = fee.Add(tier2Profit.MulRate(tiers.Tier2Rate))
		}
	}
	return fee.Round(2)
}
