package fundfees

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Invoice exports come from the portal's invoicing service and from a few
// third-party back offices, so the shapes drift: amounts appear as numbers or
// strings, fee events inline or by id only. DecodeInvoiceExport extracts what
// it can and coerces what it cannot: a non-numeric amount reads as 0, per the
// validator's contract, rather than failing the whole export.

// DecodeInvoiceExport reads one invoice from a JSON export stream.
func DecodeInvoiceExport(r io.Reader) (*Invoice, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid invoice export: %w", err)
	}

	currency := jstring(doc, "$.currency")
	if currency == "" {
		currency = "USD"
	}

	inv := &Invoice{
		ID:       jstring(doc, "$.id"),
		Currency: currency,
		Total:    NewMoney(jamount(doc, "$.total"), currency),
		Subtotal: NewMoney(jamount(doc, "$.subtotal"), currency),
	}

	jlines, err := jsonpath.Get("$.lines", doc)
	if err != nil {
		// an export with no lines is still a (wildly discrepant) invoice
		return inv, nil
	}
	list, ok := jlines.([]any)
	if !ok {
		return inv, nil
	}
	for _, jl := range list {
		line := InvoiceLine{
			Description: jstring(jl, "$.description"),
			Amount:      NewMoney(jamount(jl, "$.amount"), currency),
			FeeEventID:  jstring(jl, "$.fee_event_id"),
		}
		if jev, err := jsonpath.Get("$.fee_event", jl); err == nil && jev != nil {
			line.FeeEvent = decodeFeeEvent(jev, currency)
			if line.FeeEventID == "" {
				line.FeeEventID = line.FeeEvent.ID
			}
		}
		inv.Lines = append(inv.Lines, line)
	}
	return inv, nil
}

func decodeFeeEvent(jev any, currency string) *FeeEvent {
	ev := &FeeEvent{
		ID:             jstring(jev, "$.id"),
		FeeType:        jstring(jev, "$.fee_type"),
		ComputedAmount: NewMoney(jamount(jev, "$.computed_amount"), currency),
		AllocationID:   jstring(jev, "$.allocation_id"),
		SubscriptionID: jstring(jev, "$.subscription_id"),
		Status:         jstring(jev, "$.status"),
	}
	if s := jstring(jev, "$.event_date"); s != "" {
		if d, err := ParseDate(s); err == nil {
			ev.EventDate = d
		}
	}
	return ev
}

// jamount extracts a monetary value, coercing numbers, numeric strings, and
// anything else to a decimal (0 when absent or non-numeric).
func jamount(doc any, path string) decimal.Decimal {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return decimal.Zero
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// jstring extracts a string field, "" when absent or not a string.
func jstring(doc any, path string) string {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	s, _ := jval.(string)
	return s
}
