package fundfees

import (
	"math"

	"github.com/shopspring/decimal"
)

// The portal carries two independently scaled "basis point" conventions.
// FeeBps is the fee-calculation scale where one point is 1/10000 of the base
// amount. TermBps is the term-sheet scale where one point is 1/100 of a
// percent. The two are deliberately distinct types so a rate can never cross
// from one context to the other without an explicit conversion.

// FeeBps is a rate in fee-calculation basis points (1 bps = 1/10000).
type FeeBps int64

// Fraction returns the rate as an exact decimal multiplier (200 -> 0.02).
func (b FeeBps) Fraction() decimal.Decimal { return decimal.New(int64(b), -4) }

// Percent returns the rate as a percentage number (200 -> 2.00).
func (b FeeBps) Percent() Percent { return Percent(float64(b) / 100) }

// String renders the rate as a percentage string with two decimals.
func (b FeeBps) String() string { return b.Percent().String() }

// FeeBpsFromPercent converts a percentage back to fee-scale basis points,
// rounded to the nearest integer.
func FeeBpsFromPercent(p Percent) FeeBps {
	return FeeBps(math.Round(float64(p) * 100))
}

// TermBps is a rate in term-sheet basis points (1 unit = 1/100 of a percent).
type TermBps int64

// Percent returns the rate as a percentage number (250 -> 2.50).
func (b TermBps) Percent() Percent { return Percent(float64(b) / 100) }

func (b TermBps) String() string { return b.Percent().String() }

// TermBpsFromPercent converts a percentage back to term-sheet basis points,
// rounded to the nearest integer.
func TermBpsFromPercent(p Percent) TermBps {
	return TermBps(math.Round(float64(p) * 100))
}

// TermPercent propagates absence: a missing term-sheet rate converts to a
// missing percentage, never to zero.
func TermPercent(b *TermBps) *Percent {
	if b == nil {
		return nil
	}
	p := b.Percent()
	return &p
}
