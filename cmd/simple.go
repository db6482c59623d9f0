package cmd

import (
	"context"
	"flag"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/google/subcommands"
)

// spreadCmd holds the flags for the 'spread' subcommand.
type spreadCmd struct {
	shares     float64
	entryPrice float64
	cost       float64
	currency   string
}

func (*spreadCmd) Name() string     { return "spread" }
func (*spreadCmd) Synopsis() string { return "compute the spread over the acquisition cost" }
func (*spreadCmd) Usage() string {
	return `ffc spread -shares <n> -entry <price> -cost <price> [-c <currency>]

  Computes the markup charged above the fund's acquisition cost per share.
  Selling at or below cost charges nothing.
`
}

func (c *spreadCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.shares, "shares", 0, "Number of shares")
	f.Float64Var(&c.entryPrice, "entry", 0, "Entry price per share charged to the investor")
	f.Float64Var(&c.cost, "cost", 0, "Fund acquisition cost per share")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")
}

func (c *spreadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fee := fundfees.Spread(fundfees.Q(c.shares), fundfees.M(c.entryPrice, c.currency), fundfees.M(c.cost, c.currency))
	printFee(fee)
	return subcommands.ExitSuccess
}

// commissionCmd holds the flags for the 'commission' subcommand.
type commissionCmd struct {
	baseFee  float64
	rateBps  int64
	net      bool
	currency string
}

func (*commissionCmd) Name() string     { return "commission" }
func (*commissionCmd) Synopsis() string { return "introducer commission on a fee" }
func (*commissionCmd) Usage() string {
	return `ffc commission -fee <amount> -rate <bps> [-net] [-c <currency>]

  Computes the introducer's cut of a base fee. With -net, prints the fee
  retained after the commission instead.
`
}

func (c *commissionCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.baseFee, "fee", 0, "Gross fee amount")
	f.Int64Var(&c.rateBps, "rate", 0, "Commission rate in basis points")
	f.BoolVar(&c.net, "net", false, "Print the net fee retained instead of the commission")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")
}

func (c *commissionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gross := fundfees.M(c.baseFee, c.currency)
	if c.net {
		printFee(fundfees.NetFeeRetained(gross, fundfees.FeeBps(c.rateBps)))
	} else {
		printFee(fundfees.IntroducerCommission(gross, fundfees.FeeBps(c.rateBps)))
	}
	return subcommands.ExitSuccess
}

// wireAmountCmd holds the flags for the 'wire-amount' subcommand.
type wireAmountCmd struct {
	amount   float64
	rateBps  int64
	currency string
}

func (*wireAmountCmd) Name() string     { return "wire-amount" }
func (*wireAmountCmd) Synopsis() string { return "total amount the investor wires" }
func (*wireAmountCmd) Usage() string {
	return `ffc wire-amount -amount <amount> -rate <bps> [-c <currency>]

  Prints the investment plus the subscription fee on it.
`
}

func (c *wireAmountCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Investment amount")
	f.Int64Var(&c.rateBps, "rate", 0, "Subscription fee rate in basis points")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code")
}

func (c *wireAmountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printFee(fundfees.TotalWireAmount(fundfees.M(c.amount, c.currency), fundfees.FeeBps(c.rateBps)))
	return subcommands.ExitSuccess
}
