package fundfees

// daysPerYear is the actual/365 day-count convention used to prorate annual
// management-fee rates. Not actual/actual, not 30/360.
var daysPerYear = Q(365)

// ManagementFeeForPeriod prorates an annual management-fee rate over an
// arbitrary date range using inclusive day counting: the fee for a single day
// is base × rate × 1/365, and a full non-leap year accrues exactly the annual
// fee. Returns zero when the rate or the base is non-positive, or when the
// range is empty.
func ManagementFeeForPeriod(rate FeeBps, base Money, periodStart, periodEnd Date) Money {
	if rate <= 0 || !base.IsPositive() {
		return base.Zero()
	}
	days := DaysBetween(periodStart, periodEnd)
	if days <= 0 {
		return base.Zero()
	}
	return base.MulRate(rate).Mul(Q(days)).Div(daysPerYear)
}
