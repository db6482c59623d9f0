package fundfees

import "fmt"

// centTolerance is the reconciliation tolerance: differences of one cent or
// less are treated as rounding noise, not discrepancies.
func centTolerance(currency string) Money { return M(0.01, currency) }

// ValidateInvoiceTotal reconciles an invoice's declared total against the sum
// of its line items and the fee events they reference. It never fails: the
// outcome, including every discrepancy found, is the returned report, and the
// caller decides whether a non-valid report blocks the invoice.
func ValidateInvoiceTotal(invoiceTotal, invoiceSubtotal Money, lines []InvoiceLine) *InvoiceValidationReport {
	currency := invoiceTotal.Currency()
	if currency == "" {
		currency = invoiceSubtotal.Currency()
	}
	tolerance := centTolerance(currency)

	feeEventsTotal := M(0, currency)
	customItemsTotal := M(0, currency)
	lineItemsTotal := M(0, currency)
	var details []string

	// rebase coerces an amount into the report currency. A foreign currency
	// code becomes a report detail, never a failure.
	rebase := func(m Money, what string) Money {
		if c := m.Currency(); c != "" && c != currency {
			details = append(details, fmt.Sprintf(
				"%s is in %s but the invoice is in %s", what, c, currency))
		}
		return NewMoney(m.Decimal(), currency)
	}
	invoiceSubtotal = rebase(invoiceSubtotal, "subtotal")

	for i, line := range lines {
		amount := rebase(line.Amount, fmt.Sprintf("line %d", i+1))
		lineItemsTotal = lineItemsTotal.Add(amount)
		if line.FeeEvent != nil {
			computed := rebase(line.FeeEvent.ComputedAmount,
				fmt.Sprintf("fee event %s", line.FeeEvent.ID))
			if amount.Sub(computed).Abs().GreaterThan(tolerance) {
				details = append(details, fmt.Sprintf(
					"line %d (%s): invoiced %s but fee event %s computed %s",
					i+1, line.FeeEvent.FeeType, FormatCurrency(amount),
					line.FeeEvent.ID, FormatCurrency(computed)))
			}
			feeEventsTotal = feeEventsTotal.Add(amount)
		} else if line.FeeEventID != "" {
			feeEventsTotal = feeEventsTotal.Add(amount)
		} else {
			customItemsTotal = customItemsTotal.Add(amount)
		}
	}

	expected := lineItemsTotal
	discrepancy := invoiceTotal.Sub(expected).Abs()

	var percent Percent
	switch {
	case expected.IsPositive():
		percent = Percent(discrepancy.Decimal().Div(expected.Decimal()).InexactFloat64() * 100)
	case invoiceTotal.IsPositive():
		percent = 100
	default:
		percent = 0
	}

	hasDiscrepancy := discrepancy.GreaterThan(tolerance)
	if hasDiscrepancy {
		summary := fmt.Sprintf(
			"invoice total %s does not match line items total %s (difference %s, %s)",
			FormatCurrency(invoiceTotal), FormatCurrency(expected),
			FormatCurrency(discrepancy), percent)
		details = append([]string{summary}, details...)
	}

	// Informational only: a total/subtotal gap usually means tax, and does
	// not affect validity.
	if invoiceTotal.Sub(invoiceSubtotal).Abs().GreaterThan(tolerance) {
		details = append(details, fmt.Sprintf(
			"invoice total %s differs from subtotal %s; the difference may be tax",
			FormatCurrency(invoiceTotal), FormatCurrency(invoiceSubtotal)))
	}

	return &InvoiceValidationReport{
		Valid:              !hasDiscrepancy,
		HasDiscrepancy:     hasDiscrepancy,
		ExpectedTotal:      expected,
		ActualTotal:        invoiceTotal,
		DiscrepancyAmount:  discrepancy,
		DiscrepancyPercent: percent,
		FeeEventsTotal:     feeEventsTotal,
		CustomItemsTotal:   customItemsTotal,
		LineItemsTotal:     lineItemsTotal,
		Details:            details,
	}
}

// ValidateInvoice is the convenience entry point over a whole Invoice.
func ValidateInvoice(inv *Invoice) *InvoiceValidationReport {
	return ValidateInvoiceTotal(inv.Total, inv.Subtotal, inv.Lines)
}
