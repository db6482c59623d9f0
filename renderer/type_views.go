package renderer

import (
	"fmt"

	"github.com/Ghiles-CTO/fundfees"
)

// validationView is the template-facing shape of a validation report: every
// amount preformatted, so the templates stay free of formatting logic.
type validationView struct {
	Status             string
	ActualTotal        string
	ExpectedTotal      string
	FeeEventsTotal     string
	CustomItemsTotal   string
	DiscrepancyAmount  string
	DiscrepancyPercent string
	HasDiscrepancy     bool
	Details            []string
}

func newValidationView(r *fundfees.InvoiceValidationReport) *validationView {
	status := "VALID"
	if !r.Valid {
		status = "DISCREPANT"
	}
	return &validationView{
		Status:             status,
		ActualTotal:        fundfees.FormatCurrency(r.ActualTotal),
		ExpectedTotal:      fundfees.FormatCurrency(r.ExpectedTotal),
		FeeEventsTotal:     fundfees.FormatCurrency(r.FeeEventsTotal),
		CustomItemsTotal:   fundfees.FormatCurrency(r.CustomItemsTotal),
		DiscrepancyAmount:  fundfees.FormatCurrency(r.DiscrepancyAmount),
		DiscrepancyPercent: r.DiscrepancyPercent.String(),
		HasDiscrepancy:     r.HasDiscrepancy,
		Details:            r.Details,
	}
}

type feePlanView struct {
	Name         string
	Currency     string
	Subscription string
	Management   string
	Frequency    string
	Performance  string
	Hurdle       string
	Introducer   string
	Tiers        []tierView
}

type tierView struct {
	Band string
	Rate string
}

func newFeePlanView(p *fundfees.FeePlan) *feePlanView {
	v := &feePlanView{
		Name:         p.Name,
		Currency:     p.Currency,
		Subscription: fundfees.FormatBps(p.SubscriptionBps),
		Management:   fundfees.FormatBps(p.ManagementBps),
		Frequency:    p.Frequency.String(),
		Performance:  fundfees.FormatBps(p.PerformanceBps),
		Hurdle:       fundfees.FormatBps(p.HurdleBps),
		Introducer:   fundfees.FormatBps(p.IntroducerBps),
	}
	for _, t := range p.Tiers {
		band := "unbounded"
		if t.ThresholdMultiplier != nil {
			band = fmt.Sprintf("up to %.2fx", *t.ThresholdMultiplier)
		}
		v.Tiers = append(v.Tiers, tierView{Band: band, Rate: fundfees.FormatBps(t.RateBps)})
	}
	return v
}
