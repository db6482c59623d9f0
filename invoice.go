package fundfees

// FeeEvent is an accrued, not-yet-invoiced fee obligation computed upstream
// and consumed read-only here.
type FeeEvent struct {
	ID             string `json:"id"`
	FeeType        string `json:"fee_type"`
	ComputedAmount Money  `json:"computed_amount"`
	EventDate      Date   `json:"event_date,omitzero"`
	AllocationID   string `json:"allocation_id,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
	Status         string `json:"status,omitempty"`
}

// InvoiceLine is one line of an invoice. It either references exactly one fee
// event or is a custom line item.
type InvoiceLine struct {
	Description string    `json:"description,omitempty"`
	Amount      Money     `json:"amount"`
	FeeEventID  string    `json:"fee_event_id,omitempty"`
	FeeEvent    *FeeEvent `json:"fee_event,omitempty"`
}

// Invoice is the reconciliation input: a declared total and subtotal plus the
// lines backing them.
type Invoice struct {
	ID       string        `json:"id,omitempty"`
	Currency string        `json:"currency,omitempty"`
	Total    Money         `json:"total"`
	Subtotal Money         `json:"subtotal"`
	Lines    []InvoiceLine `json:"lines"`
}

// InvoiceValidationReport is the outcome of one validation call. It is built
// fresh per call and never persisted here.
type InvoiceValidationReport struct {
	Valid              bool     `json:"is_valid"`
	HasDiscrepancy     bool     `json:"has_discrepancy"`
	ExpectedTotal      Money    `json:"expected_total"`
	ActualTotal        Money    `json:"actual_total"`
	DiscrepancyAmount  Money    `json:"discrepancy_amount"`
	DiscrepancyPercent Percent  `json:"discrepancy_percent"`
	FeeEventsTotal     Money    `json:"fee_events_total"`
	CustomItemsTotal   Money    `json:"custom_items_total"`
	LineItemsTotal     Money    `json:"line_items_total"`
	Details            []string `json:"details"`
}
