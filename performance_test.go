package fundfees

import "testing"

func TestSimplePerformanceFee(t *testing.T) {
	// gain/share = 5, fee = 5 × 1000 × 0.20 = 1000
	fee := SimplePerformanceFee(2000, Q(1000), M(10, "USD"), M(15, "USD"))
	if !fee.Equal(M(1000, "USD")) {
		t.Errorf("SimplePerformanceFee = %s, want $1,000.00", fee)
	}

	// no fee on a loss or a flat return
	if got := SimplePerformanceFee(2000, Q(1000), M(10, "USD"), M(10, "USD")); !got.IsZero() {
		t.Errorf("fee on flat return = %s, want 0", got)
	}
	if got := SimplePerformanceFee(2000, Q(1000), M(10, "USD"), M(8, "USD")); !got.IsZero() {
		t.Errorf("fee on a loss = %s, want 0", got)
	}
	if got := SimplePerformanceFee(0, Q(1000), M(10, "USD"), M(15, "USD")); !got.IsZero() {
		t.Errorf("fee without a rate = %s, want 0", got)
	}
}

func TestTieredPerformanceFee(t *testing.T) {
	t15, t20 := Q(1.5), Q(2.0)
	tiers := []Tier{
		{Threshold: &t15, Rate: 1000},
		{Threshold: &t20, Rate: 1500},
		{Rate: 2000}, // unbounded
	}

	// entry 10, exit 25: multiple 2.5 crosses all three bands
	// band 1: 0.5×10×100×10% = 50; band 2: 0.5×10×100×15% = 75; band 3: 0.5×10×100×20% = 100
	fee := TieredPerformanceFee(M(10, "USD"), M(25, "USD"), Q(100), tiers)
	if !fee.Equal(M(225, "USD")) {
		t.Errorf("three-band fee = %s, want $225.00", fee)
	}

	// multiple 1.2 stays inside the first band: 0.2×10×100×10% = 20
	fee = TieredPerformanceFee(M(10, "USD"), M(12, "USD"), Q(100), tiers)
	if !fee.Equal(M(20, "USD")) {
		t.Errorf("single-band fee = %s, want $20.00", fee)
	}

	// no gain, no fee
	if got := TieredPerformanceFee(M(10, "USD"), M(10, "USD"), Q(100), tiers); !got.IsZero() {
		t.Errorf("fee on flat return = %s, want 0", got)
	}
}

func TestTieredPerformanceFeeSortsTiers(t *testing.T) {
	t15, t20 := Q(1.5), Q(2.0)
	unsorted := []Tier{
		{Rate: 2000}, // unbounded first on purpose
		{Threshold: &t20, Rate: 1500},
		{Threshold: &t15, Rate: 1000},
	}
	fee := TieredPerformanceFee(M(10, "USD"), M(25, "USD"), Q(100), unsorted)
	if !fee.Equal(M(225, "USD")) {
		t.Errorf("fee over unsorted tiers = %s, want $225.00", fee)
	}

	// the caller's slice is never reordered
	if unsorted[0].Threshold != nil || !unsorted[1].Threshold.Equal(t20) || !unsorted[2].Threshold.Equal(t15) {
		t.Error("caller's tier slice was mutated")
	}
}

func TestSingleUnboundedTierEqualsSimpleFee(t *testing.T) {
	tiers := []Tier{{Rate: 2000}}
	for _, exit := range []float64{10.01, 11, 15, 100} {
		tiered := TieredPerformanceFee(M(10, "USD"), M(exit, "USD"), Q(1000), tiers)
		simple := SimplePerformanceFee(2000, Q(1000), M(10, "USD"), M(exit, "USD"))
		if !tiered.Equal(simple) {
			t.Errorf("exit %v: tiered %s != simple %s", exit, tiered, simple)
		}
	}
}

func TestPerformanceFeeWithHurdle(t *testing.T) {
	capital := M(1_000_000, "USD")

	// profit 500k, hurdle 8% × 2y = 160k, carry 20% of 340k = 68k
	fee := PerformanceFeeWithHurdle(capital, M(1_500_000, "USD"), 2000, 800, Q(2))
	if !fee.Equal(M(68_000, "USD")) {
		t.Errorf("hurdle fee = %s, want $68,000.00", fee)
	}

	// no profit, no fee
	if got := PerformanceFeeWithHurdle(capital, capital, 2000, 800, Q(2)); !got.IsZero() {
		t.Errorf("fee without profit = %s, want 0", got)
	}
	// profit exactly at the hurdle charges nothing
	if got := PerformanceFeeWithHurdle(capital, M(1_160_000, "USD"), 2000, 800, Q(2)); !got.IsZero() {
		t.Errorf("fee at the hurdle = %s, want 0", got)
	}
	// fee rounds to the cent
	fee = PerformanceFeeWithHurdle(M(1000, "USD"), M(1100.555, "USD"), 2000, 0, Q(1))
	if !fee.Equal(M(20.11, "USD")) {
		t.Errorf("rounded hurdle fee = %s, want $20.11", fee)
	}
}

func TestPerformanceFeeWithHurdleMonotonic(t *testing.T) {
	capital := M(1_000_000, "USD")
	previous := M(0, "USD")
	for proceeds := 1_000_000; proceeds <= 1_400_000; proceeds += 10_000 {
		fee := PerformanceFeeWithHurdle(capital, M(proceeds, "USD"), 2000, 800, Q(2))
		if fee.LessThan(previous) {
			t.Fatalf("fee decreased at proceeds %d: %s < %s", proceeds, fee, previous)
		}
		if proceeds <= 1_160_000 && !fee.IsZero() {
			t.Fatalf("fee below the hurdle at proceeds %d: %s", proceeds, fee)
		}
		previous = fee
	}
}

func TestTieredPerformanceFeeWithHurdle(t *testing.T) {
	capital := M(1_000_000, "USD")
	proceeds := M(2_500_000, "USD")
	t20, t30 := Q(2.0), Q(3.0)

	// profit 1.5M, hurdle 80k, above-hurdle 1.42M, multiple 2.5
	// tier 1 band: min(1.42M, 1M−80k) = 920k at 20% = 184k
	// tier 2 band: min(1.5M, 2M) − 1M = 500k at 25% = 125k
	fee := TieredPerformanceFeeWithHurdle(capital, proceeds, Q(1), 800, HurdleTiers{
		Tier1Rate: 2000, Tier1Threshold: &t20,
		Tier2Rate: 2500, Tier2Threshold: &t30,
	})
	if !fee.Equal(M(309_000, "USD")) {
		t.Errorf("tiered hurdle fee = %s, want $309,000.00", fee)
	}

	// without a tier-2 threshold, tier 2 runs to the full profit
	fee = TieredPerformanceFeeWithHurdle(capital, proceeds, Q(1), 800, HurdleTiers{
		Tier1Rate: 2000, Tier1Threshold: &t20,
		Tier2Rate: 2500,
	})
	if !fee.Equal(M(309_000, "USD")) {
		t.Errorf("unbounded tier 2 fee = %s, want $309,000.00", fee)
	}
}

func TestTieredPerformanceFeeWithHurdleDegenerate(t *testing.T) {
	capital := M(1_000_000, "USD")
	proceeds := M(2_500_000, "USD")

	// without a tier-1 threshold the whole above-hurdle profit is one tier
	fee := TieredPerformanceFeeWithHurdle(capital, proceeds, Q(1), 800, HurdleTiers{Tier1Rate: 2000})
	if !fee.Equal(M(284_000, "USD")) {
		t.Errorf("single-tier fee = %s, want $284,000.00", fee)
	}

	// same without a tier-2 rate
	t20 := Q(2.0)
	fee = TieredPerformanceFeeWithHurdle(capital, proceeds, Q(1), 800, HurdleTiers{
		Tier1Rate: 2000, Tier1Threshold: &t20,
	})
	if !fee.Equal(M(284_000, "USD")) {
		t.Errorf("fee without tier 2 = %s, want $284,000.00", fee)
	}
}

func TestTieredPerformanceFeeWithHurdleShortCircuits(t *testing.T) {
	capital := M(1_000_000, "USD")
	t20 := Q(2.0)
	tiers := HurdleTiers{Tier1Rate: 2000, Tier1Threshold: &t20, Tier2Rate: 2500}

	if got := TieredPerformanceFeeWithHurdle(capital, M(900_000, "USD"), Q(1), 800, tiers); !got.IsZero() {
		t.Errorf("fee on a loss = %s, want 0", got)
	}
	// profit below the hurdle
	if got := TieredPerformanceFeeWithHurdle(capital, M(1_050_000, "USD"), Q(1), 800, tiers); !got.IsZero() {
		t.Errorf("fee below the hurdle = %s, want 0", got)
	}
}

func TestTieredHurdleAsymmetry(t *testing.T) {
	// The hurdle reduces tier 1's band only; tier 2 is carved out of the
	// total profit. A multiple just over the threshold still accrues the
	// full tier-2 band above capital×(threshold−1).
	capital := M(1_000_000, "USD")
	proceeds := M(2_100_000, "USD")
	t20 := Q(2.0)

	// profit 1.1M, hurdle 100k, above-hurdle 1M
	// tier 1: min(1M, 1M−100k) = 900k at 20% = 180k
	// tier 2: min(1.1M, profit) − 1M = 100k at 25% = 25k
	fee := TieredPerformanceFeeWithHurdle(capital, proceeds, Q(1), 1000, HurdleTiers{
		Tier1Rate: 2000, Tier1Threshold: &t20, Tier2Rate: 2500,
	})
	if !fee.Equal(M(205_000, "USD")) {
		t.Errorf("asymmetric fee = %s, want $205,000.00", fee)
	}
}
