// Package cmd implements the CLI application to compute fund fees and
// reconcile invoices.
package cmd

import (
	"fmt"
	"os"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand the ffc binary registers.
// A main package ranges over it to register, then Execute()s the selected one.
var Commands = []subcommands.Command{
	&subscriptionFeeCmd{},
	&managementFeeCmd{},
	&managementPeriodCmd{},
	&periodEndCmd{},
	&spreadCmd{},
	&commissionCmd{},
	&wireAmountCmd{},
	&performanceFeeCmd{},
	&validateInvoiceCmd{},
	&termsheetCheckCmd{},
	&planCmd{},
	&serveCmd{},
	&topicCmd{},
}

// printFee prints a computed fee in the currency's locale format.
func printFee(fee fundfees.Money) {
	fmt.Println(fundfees.FormatCurrency(fee))
}

// fail reports a subcommand error on stderr.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// loadPlan reads the fee plan file backing rate and tier flags.
func loadPlan(path string) (*fundfees.FeePlan, error) {
	return fundfees.LoadFeePlan(path)
}

// renderMarkdown renders markdown to ANSI for the terminal, falling back to
// the raw markdown when the terminal renderer cannot be built.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
