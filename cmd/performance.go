package cmd

import (
	"context"
	"flag"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/google/subcommands"
)

// performanceFeeCmd holds the flags for the 'performance-fee' subcommand.
type performanceFeeCmd struct {
	mode     string
	currency string

	// share-price based (simple, tiered)
	rateBps    int64
	shares     float64
	entryPrice float64
	exitPrice  float64
	planFile   string

	// capital based (hurdle, tiered-hurdle)
	capital        float64
	proceeds       float64
	carryBps       int64
	hurdleBps      int64
	years          float64
	tier1Bps       int64
	tier1Threshold float64
	tier2Bps       int64
	tier2Threshold float64
}

func (*performanceFeeCmd) Name() string     { return "performance-fee" }
func (*performanceFeeCmd) Synopsis() string { return "performance fee, flat to tiered with hurdle" }
func (*performanceFeeCmd) Usage() string {
	return `ffc performance-fee -mode simple|tiered|hurdle|tiered-hurdle [flags]

  simple:        -rate -shares -entry -exit
  tiered:        -plan <feeplan.yaml> -shares -entry -exit
  hurdle:        -capital -proceeds -carry -hurdle -years
  tiered-hurdle: -capital -proceeds -years -hurdle -tier1-rate [-tier1-threshold]
                 [-tier2-rate] [-tier2-threshold]
`
}

func (c *performanceFeeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "simple", "Algorithm: simple, tiered, hurdle, tiered-hurdle")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")

	f.Int64Var(&c.rateBps, "rate", 0, "Flat performance fee rate in basis points")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares")
	f.Float64Var(&c.entryPrice, "entry", 0, "Entry price per share")
	f.Float64Var(&c.exitPrice, "exit", 0, "Exit price per share")
	f.StringVar(&c.planFile, "plan", "feeplan.yaml", "Fee plan file supplying the tier schedule")

	f.Float64Var(&c.capital, "capital", 0, "Contributed capital")
	f.Float64Var(&c.proceeds, "proceeds", 0, "Exit proceeds")
	f.Int64Var(&c.carryBps, "carry", 0, "Carry rate in basis points")
	f.Int64Var(&c.hurdleBps, "hurdle", 0, "Hurdle rate in basis points")
	f.Float64Var(&c.years, "years", 0, "Years held")
	f.Int64Var(&c.tier1Bps, "tier1-rate", 0, "Tier 1 carry rate in basis points")
	f.Float64Var(&c.tier1Threshold, "tier1-threshold", 0, "Tier 1 return-multiple threshold")
	f.Int64Var(&c.tier2Bps, "tier2-rate", 0, "Tier 2 carry rate in basis points")
	f.Float64Var(&c.tier2Threshold, "tier2-threshold", 0, "Tier 2 return-multiple threshold")
}

func (c *performanceFeeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.mode {
	case "simple":
		fee := fundfees.SimplePerformanceFee(
			fundfees.FeeBps(c.rateBps), fundfees.Q(c.shares),
			fundfees.M(c.entryPrice, c.currency), fundfees.M(c.exitPrice, c.currency))
		printFee(fee.Round(2))

	case "tiered":
		plan, err := loadPlan(c.planFile)
		if err != nil {
			return fail("Error loading fee plan: %v", err)
		}
		fee := fundfees.TieredPerformanceFee(
			fundfees.M(c.entryPrice, c.currency), fundfees.M(c.exitPrice, c.currency),
			fundfees.Q(c.shares), plan.PerformanceTiers())
		printFee(fee.Round(2))

	case "hurdle":
		fee := fundfees.PerformanceFeeWithHurdle(
			fundfees.M(c.capital, c.currency), fundfees.M(c.proceeds, c.currency),
			fundfees.FeeBps(c.carryBps), fundfees.FeeBps(c.hurdleBps), fundfees.Q(c.years))
		printFee(fee)

	case "tiered-hurdle":
		tiers := fundfees.HurdleTiers{
			Tier1Rate: fundfees.FeeBps(c.tier1Bps),
			Tier2Rate: fundfees.FeeBps(c.tier2Bps),
		}
		if c.tier1Threshold > 0 {
			q := fundfees.Q(c.tier1Threshold)
			tiers.Tier1Threshold = &q
		}
		if c.tier2Threshold > 0 {
			q := fundfees.Q(c.tier2Threshold)
			tiers.Tier2Threshold = &q
		}
		fee := fundfees.TieredPerformanceFeeWithHurdle(
			fundfees.M(c.capital, c.currency), fundfees.M(c.proceeds, c.currency),
			fundfees.Q(c.years), fundfees.FeeBps(c.hurdleBps), tiers)
		printFee(fee)

	default:
		return fail("unknown mode %q", c.mode)
	}
	return subcommands.ExitSuccess
}
