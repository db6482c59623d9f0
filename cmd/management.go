package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/google/subcommands"
)

// managementFeeCmd holds the flags for the 'management-fee' subcommand.
type managementFeeCmd struct {
	amount   float64
	rateBps  int64
	upfront  bool
	duration int
	currency string
}

func (*managementFeeCmd) Name() string     { return "management-fee" }
func (*managementFeeCmd) Synopsis() string { return "compute the management fee on an investment" }
func (*managementFeeCmd) Usage() string {
	return `ffc management-fee -amount <amount> -rate <bps> [-upfront -periods <n>] [-c <currency>]

  Computes the management fee. An upfront fee covering several periods is
  charged once for the whole duration.
`
}

func (c *managementFeeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Investment amount")
	f.Int64Var(&c.rateBps, "rate", 0, "Management fee rate in basis points")
	f.BoolVar(&c.upfront, "upfront", false, "Charge the fee upfront for the whole duration")
	f.IntVar(&c.duration, "periods", 0, "Number of periods an upfront fee covers")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")
}

func (c *managementFeeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fee := fundfees.ManagementFee(fundfees.M(c.amount, c.currency), fundfees.FeeBps(c.rateBps), c.upfront, c.duration)
	printFee(fee)
	return subcommands.ExitSuccess
}

// managementPeriodCmd holds the flags for the 'management-period' subcommand.
type managementPeriodCmd struct {
	rateBps  int64
	base     float64
	start    string
	end      string
	currency string
}

func (*managementPeriodCmd) Name() string { return "management-period" }
func (*managementPeriodCmd) Synopsis() string {
	return "prorate an annual management fee over a date range"
}
func (*managementPeriodCmd) Usage() string {
	return `ffc management-period -rate <bps> -base <amount> -s <date> -e <date> [-c <currency>]

  Prorates the annual rate over the inclusive date range with the actual/365
  day-count convention.
`
}

func (c *managementPeriodCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.rateBps, "rate", 0, "Annual management fee rate in basis points")
	f.Float64Var(&c.base, "base", 0, "Base amount the fee accrues on")
	f.StringVar(&c.start, "s", "", "Period start date (YYYY-MM-DD)")
	f.StringVar(&c.end, "e", "", "Period end date (YYYY-MM-DD), inclusive")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")
}

func (c *managementPeriodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := fundfees.ParseDate(c.start)
	if err != nil {
		return fail("Error parsing start date: %v", err)
	}
	end, err := fundfees.ParseDate(c.end)
	if err != nil {
		return fail("Error parsing end date: %v", err)
	}
	fee := fundfees.ManagementFeeForPeriod(fundfees.FeeBps(c.rateBps), fundfees.M(c.base, c.currency), start, end)
	printFee(fee.Round(2))
	return subcommands.ExitSuccess
}

// periodEndCmd holds the flags for the 'period-end' subcommand.
type periodEndCmd struct {
	start     string
	frequency string
}

func (*periodEndCmd) Name() string     { return "period-end" }
func (*periodEndCmd) Synopsis() string { return "canonical end date of a fee period" }
func (*periodEndCmd) Usage() string {
	return `ffc period-end -s <date> [-f annual|quarterly|monthly]

  Prints the last day of the fee period starting on the given date, so that
  consecutive periods tile without gap or overlap.
`
}

func (c *periodEndCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Period start date (YYYY-MM-DD)")
	f.StringVar(&c.frequency, "f", fundfees.Annual.String(), "Accrual frequency (annual, quarterly, monthly)")
}

func (c *periodEndCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := fundfees.ParseDate(c.start)
	if err != nil {
		return fail("Error parsing start date: %v", err)
	}
	freq, err := fundfees.ParseFrequency(c.frequency)
	if err != nil {
		return fail("Error parsing frequency: %v", err)
	}
	fmt.Println(freq.PeriodEnd(start))
	return subcommands.ExitSuccess
}
