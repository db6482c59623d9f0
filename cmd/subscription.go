package cmd

import (
	"context"
	"flag"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/google/subcommands"
)

// subscriptionFeeCmd holds the flags for the 'subscription-fee' subcommand.
type subscriptionFeeCmd struct {
	amount   float64
	rateBps  int64
	flat     float64
	currency string
}

func (*subscriptionFeeCmd) Name() string     { return "subscription-fee" }
func (*subscriptionFeeCmd) Synopsis() string { return "compute the subscription fee on an investment" }
func (*subscriptionFeeCmd) Usage() string {
	return `ffc subscription-fee -amount <amount> [-rate <bps>] [-flat <amount>] [-c <currency>]

  Computes the one-off subscription fee. A flat amount takes precedence over
  the rate; with neither, the fee is zero.
`
}

func (c *subscriptionFeeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Investment amount")
	f.Int64Var(&c.rateBps, "rate", 0, "Subscription fee rate in basis points")
	f.Float64Var(&c.flat, "flat", 0, "Flat subscription fee amount, overrides the rate")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")
}

func (c *subscriptionFeeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var flat *fundfees.Money
	if c.flat != 0 {
		m := fundfees.M(c.flat, c.currency)
		flat = &m
	}
	fee := fundfees.SubscriptionFee(fundfees.M(c.amount, c.currency), fundfees.FeeBps(c.rateBps), flat)
	printFee(fee)
	return subcommands.ExitSuccess
}
