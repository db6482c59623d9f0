package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Ghiles-CTO/fundfees"
	"github.com/Ghiles-CTO/fundfees/renderer"
	"github.com/google/subcommands"
)

// validateInvoiceCmd holds the flags for the 'validate-invoice' subcommand.
type validateInvoiceCmd struct {
	file   string
	asJSON bool
	raw    bool
}

func (*validateInvoiceCmd) Name() string     { return "validate-invoice" }
func (*validateInvoiceCmd) Synopsis() string { return "reconcile an invoice against its fee events" }
func (*validateInvoiceCmd) Usage() string {
	return `ffc validate-invoice -f <invoice.json> [-json|-raw]

  Reads an invoice export, reconciles the declared total against the line
  items and the fee events they reference, and prints the report. The exit
  status is non-zero when the invoice is discrepant.
`
}

func (c *validateInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Invoice export file (JSON), - for stdin")
	f.BoolVar(&c.asJSON, "json", false, "Print the raw report as JSON")
	f.BoolVar(&c.raw, "raw", false, "Print the report as plain markdown")
}

func (c *validateInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.file != "" && c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			return fail("Error opening invoice file: %v", err)
		}
		defer file.Close()
		in = file
	}

	inv, err := fundfees.DecodeInvoiceExport(in)
	if err != nil {
		return fail("Error reading invoice: %v", err)
	}
	report := fundfees.ValidateInvoice(inv)

	switch {
	case c.asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fail("Error encoding report: %v", err)
		}
	case c.raw:
		fmt.Print(renderer.RenderValidation(report))
	default:
		fmt.Print(renderMarkdown(renderer.RenderValidation(report)))
	}

	if !report.Valid {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
