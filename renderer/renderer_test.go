package renderer

import (
	"strings"
	"testing"

	"github.com/Ghiles-CTO/fundfees"
)

func TestRenderValidation(t *testing.T) {
	lines := []fundfees.InvoiceLine{
		{Amount: fundfees.M(6000, "USD"), FeeEventID: "fe-1"},
		{Amount: fundfees.M(3999, "USD")},
	}
	report := fundfees.ValidateInvoiceTotal(fundfees.M(10_000, "USD"), fundfees.M(10_000, "USD"), lines)

	md := RenderValidation(report)
	for _, want := range []string{
		"DISCREPANT",
		"$10,000.00",
		"$9,999.00",
		"$1.00 (0.01%)",
		"## Findings",
		"does not match",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered report missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("template error leaked into output:\n%s", md)
	}
}

func TestRenderValidationClean(t *testing.T) {
	report := fundfees.ValidateInvoiceTotal(fundfees.M(100, "USD"), fundfees.M(100, "USD"),
		[]fundfees.InvoiceLine{{Amount: fundfees.M(100, "USD")}})

	md := RenderValidation(report)
	if !strings.Contains(md, "VALID") {
		t.Errorf("clean report not marked valid:\n%s", md)
	}
	if strings.Contains(md, "## Findings") {
		t.Errorf("clean report rendered findings:\n%s", md)
	}
}

func TestRenderFeePlan(t *testing.T) {
	threshold := 1.5
	plan := &fundfees.FeePlan{
		Name:            "growth-fund-a",
		Currency:        "USD",
		SubscriptionBps: 150,
		ManagementBps:   200,
		Frequency:       fundfees.Quarterly,
		PerformanceBps:  2000,
		HurdleBps:       800,
		Tiers: []fundfees.TierConfig{
			{ThresholdMultiplier: &threshold, RateBps: 1000},
			{RateBps: 2000},
		},
	}

	md := RenderFeePlan(plan)
	for _, want := range []string{
		"growth-fund-a",
		"quarterly",
		"1.50%", // subscription
		"2.00%", // management
		"## Performance Tiers",
		"up to 1.50x",
		"unbounded",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered plan missing %q:\n%s", want, md)
		}
	}
}
