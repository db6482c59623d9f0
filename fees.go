package fundfees

// Stateless fee calculators. Every function is total: a missing or
// non-positive rate yields a zero fee, never an error, so callers cannot tell
// "no fee configured" from "no fee due".

// SubscriptionFee computes the one-off subscription fee on an investment.
// A flat amount, when configured, takes precedence over the rate.
func SubscriptionFee(investment Money, rate FeeBps, flat *Money) Money {
	if flat != nil {
		return *flat
	}
	return investment.MulRate(rate)
}

// ManagementFee computes the management fee on an investment. An upfront fee
// covering several periods is charged once for the whole duration instead of
// accruing period by period.
func ManagementFee(investment Money, rate FeeBps, upfront bool, durationPeriods int) Money {
	fee := investment.MulRate(rate)
	if upfront && durationPeriods > 0 {
		fee = fee.Mul(Q(durationPeriods))
	}
	return fee
}

// Spread computes the markup charged above the fund's acquisition cost per
// share. There is no negative spread: selling below cost charges nothing.
func Spread(shares Quantity, entryPrice, costPerShare Money) Money {
	perShare := entryPrice.Sub(costPerShare)
	if !perShare.IsPositive() {
		return entryPrice.Zero()
	}
	return perShare.Mul(shares)
}

// IntroducerCommission computes the introducer's cut of a base fee.
func IntroducerCommission(baseFee Money, rate FeeBps) Money {
	return baseFee.MulRate(rate)
}

// NetFeeRetained is the gross fee minus the introducer commission on it.
func NetFeeRetained(grossFee Money, introducerRate FeeBps) Money {
	return grossFee.Sub(IntroducerCommission(grossFee, introducerRate))
}

// TotalWireAmount is the amount the investor actually wires: the investment
// plus the subscription fee on it.
func TotalWireAmount(investment Money, subscriptionRate FeeBps) Money {
	return investment.Add(SubscriptionFee(investment, subscriptionRate, nil))
}

// FormatCurrency renders an amount with its currency's locale rules: symbol,
// grouping, two fixed fraction digits for USD and EUR. A currency-weak
// amount renders as USD.
func FormatCurrency(amount Money) string { return amount.String() }

// FormatBps renders a fee-scale rate as a percentage string with two
// decimals: FormatBps(200) is "2.00%".
func FormatBps(rate FeeBps) string { return rate.String() }
