package fundfees

import (
	"fmt"
	"log"
)

// FeeKind identifies which cap of a term sheet a fee component is checked
// against.
type FeeKind string

const (
	SubscriptionFeeKind FeeKind = "subscription"
	ManagementFeeKind   FeeKind = "management"
	PerformanceFeeKind  FeeKind = "performance"
)

// FeeComponent is a configured fee rate in term-sheet scale.
type FeeComponent struct {
	Kind FeeKind `json:"kind" yaml:"kind"`
	Rate TermBps `json:"rate_bps" yaml:"rate_bps"`
}

// TermSheetCaps holds the percentage caps a term sheet imposes per fee kind.
// A nil cap means the term sheet is silent on that kind.
type TermSheetCaps struct {
	Subscription *Percent `yaml:"subscription_cap"`
	Management   *Percent `yaml:"management_cap"`
	Performance  *Percent `yaml:"performance_cap"`
}

func (c TermSheetCaps) cap(kind FeeKind) *Percent {
	switch kind {
	case SubscriptionFeeKind:
		return c.Subscription
	case ManagementFeeKind:
		return c.Management
	case PerformanceFeeKind:
		return c.Performance
	default:
		return nil
	}
}

// ValidateFeeComponentsAgainstTermSheet compares each component's term-scale
// rate against the term sheet's cap for its kind, and returns one message per
// violation. An empty slice means every component fits its cap.
func ValidateFeeComponentsAgainstTermSheet(components []FeeComponent, caps TermSheetCaps) []string {
	var violations []string
	for _, c := range components {
		limit := caps.cap(c.Kind)
		if limit == nil {
			continue
		}
		p := TermPercent(&c.Rate)
		if float64(*p) > float64(*limit) {
			violations = append(violations, fmt.Sprintf(
				"%s fee %s exceeds term sheet cap %s", c.Kind, *p, *limit))
		}
	}
	return violations
}

// SyncStatus tags the outcome of a term-sheet/fee-plan sync request.
type SyncStatus string

const (
	// SyncDeprecated marks a request served by a retained no-op shim after
	// the auto-sync feature was intentionally disabled.
	SyncDeprecated SyncStatus = "deprecated"
)

// SyncResult is the tagged result of a sync entry point.
type SyncResult struct {
	Status  SyncStatus `json:"status"`
	Message string     `json:"message"`
}

// OK reports success; deprecated no-ops still succeed so legacy callers keep
// working unchanged.
func (r SyncResult) OK() bool { return true }

// SyncTermSheetToFeePlan is a retained compatibility shim. The underlying
// auto-sync was disabled; the call performs no write.
//
// Deprecated: fee plans are edited directly, term sheets no longer drive them.
func SyncTermSheetToFeePlan(termSheetID, dealID, userID string) SyncResult {
	log.Printf("deprecated: syncTermSheetToFeePlan(term sheet %s, deal %s) requested by %s ignored, auto-sync is disabled", termSheetID, dealID, userID)
	return SyncResult{Status: SyncDeprecated, Message: "term sheet to fee plan auto-sync is disabled; no changes made"}
}

// SyncFeePlanToTermSheet is a retained compatibility shim. The underlying
// auto-sync was disabled; the call performs no write.
//
// Deprecated: term sheets are edited directly, fee plans no longer drive them.
func SyncFeePlanToTermSheet(feePlanID, dealID string) SyncResult {
	log.Printf("deprecated: syncFeePlanToTermSheet(fee plan %s, deal %s) ignored, auto-sync is disabled", feePlanID, dealID)
	return SyncResult{Status: SyncDeprecated, Message: "fee plan to term sheet auto-sync is disabled; no changes made"}
}
