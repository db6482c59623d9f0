package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Ghiles-CTO/fundfees"
)

// Handlers groups all HTTP handler methods. The calculators are pure, so
// there are no dependencies to carry.
type Handlers struct{}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// currencyOr defaults a request currency to USD.
func currencyOr(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

// feeResponse is the uniform response for every calculator endpoint.
type feeResponse struct {
	Fee       fundfees.Money `json:"fee"`
	Formatted string         `json:"formatted"`
}

func writeFee(w http.ResponseWriter, fee fundfees.Money) {
	writeJSON(w, http.StatusOK, feeResponse{Fee: fee, Formatted: fundfees.FormatCurrency(fee)})
}

// tierReq converts wire tiers to engine tiers.
type tierReq struct {
	ThresholdMultiplier *float64 `json:"threshold_multiplier"`
	RateBps             int64    `json:"rate_bps"`
}

func toTiers(reqs []tierReq) []fundfees.Tier {
	tiers := make([]fundfees.Tier, 0, len(reqs))
	for _, tr := range reqs {
		t := fundfees.Tier{Rate: fundfees.FeeBps(tr.RateBps)}
		if tr.ThresholdMultiplier != nil {
			q := fundfees.Q(*tr.ThresholdMultiplier)
			t.Threshold = &q
		}
		tiers = append(tiers, t)
	}
	return tiers
}

// --- handlers ---

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) SubscriptionFee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InvestmentAmount float64  `json:"investment_amount"`
		RateBps          int64    `json:"rate_bps"`
		FlatAmount       *float64 `json:"flat_amount"`
		Currency         string   `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	var flat *fundfees.Money
	if req.FlatAmount != nil {
		f := fundfees.M(*req.FlatAmount, c)
		flat = &f
	}
	writeFee(w, fundfees.SubscriptionFee(fundfees.M(req.InvestmentAmount, c), fundfees.FeeBps(req.RateBps), flat))
}

func (h *Handlers) ManagementFee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InvestmentAmount float64 `json:"investment_amount"`
		RateBps          int64   `json:"rate_bps"`
		Upfront          bool    `json:"upfront"`
		DurationPeriods  int     `json:"duration_periods"`
		Currency         string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.ManagementFee(fundfees.M(req.InvestmentAmount, c), fundfees.FeeBps(req.RateBps), req.Upfront, req.DurationPeriods))
}

func (h *Handlers) ManagementFeePeriod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RateBps     int64   `json:"rate_bps"`
		BaseAmount  float64 `json:"base_amount"`
		PeriodStart string  `json:"period_start"`
		PeriodEnd   string  `json:"period_end"`
		Currency    string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	start, err := fundfees.ParseDate(req.PeriodStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := fundfees.ParseDate(req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.ManagementFeeForPeriod(fundfees.FeeBps(req.RateBps), fundfees.M(req.BaseAmount, c), start, end))
}

func (h *Handlers) Spread(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NumShares          float64 `json:"num_shares"`
		EntryPricePerShare float64 `json:"entry_price_per_share"`
		CostPerShare       float64 `json:"cost_per_share"`
		Currency           string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.Spread(fundfees.Q(req.NumShares), fundfees.M(req.EntryPricePerShare, c), fundfees.M(req.CostPerShare, c)))
}

func (h *Handlers) IntroducerCommission(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BaseFeeAmount float64 `json:"base_fee_amount"`
		RateBps       int64   `json:"commission_rate_bps"`
		Currency      string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.IntroducerCommission(fundfees.M(req.BaseFeeAmount, c), fundfees.FeeBps(req.RateBps)))
}

func (h *Handlers) TotalWireAmount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InvestmentAmount float64 `json:"investment_amount"`
		RateBps          int64   `json:"subscription_fee_bps"`
		Currency         string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.TotalWireAmount(fundfees.M(req.InvestmentAmount, c), fundfees.FeeBps(req.RateBps)))
}

func (h *Handlers) PerformanceFee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RateBps    int64   `json:"rate_bps"`
		NumShares  float64 `json:"num_shares"`
		EntryPrice float64 `json:"entry_price_per_share"`
		ExitPrice  float64 `json:"exit_price_per_share"`
		Currency   string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.SimplePerformanceFee(fundfees.FeeBps(req.RateBps), fundfees.Q(req.NumShares), fundfees.M(req.EntryPrice, c), fundfees.M(req.ExitPrice, c)))
}

func (h *Handlers) TieredPerformanceFee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EntryPrice float64   `json:"entry_price_per_share"`
		ExitPrice  float64   `json:"exit_price_per_share"`
		NumShares  float64   `json:"num_shares"`
		Tiers      []tierReq `json:"tiers"`
		Currency   string    `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.TieredPerformanceFee(fundfees.M(req.EntryPrice, c), fundfees.M(req.ExitPrice, c), fundfees.Q(req.NumShares), toTiers(req.Tiers)))
}

func (h *Handlers) PerformanceFeeWithHurdle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContributedCapital float64 `json:"contributed_capital"`
		ExitProceeds       float64 `json:"exit_proceeds"`
		CarryRateBps       int64   `json:"carry_rate_bps"`
		HurdleRateBps      int64   `json:"hurdle_rate_bps"`
		YearsHeld          float64 `json:"years_held"`
		Currency           string  `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	writeFee(w, fundfees.PerformanceFeeWithHurdle(
		fundfees.M(req.ContributedCapital, c), fundfees.M(req.ExitProceeds, c),
		fundfees.FeeBps(req.CarryRateBps), fundfees.FeeBps(req.HurdleRateBps), fundfees.Q(req.YearsHeld)))
}

func (h *Handlers) TieredPerformanceFeeWithHurdle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContributedCapital       float64  `json:"contributed_capital"`
		ExitProceeds             float64  `json:"exit_proceeds"`
		YearsHeld                float64  `json:"years_held"`
		HurdleRateBps            int64    `json:"hurdle_rate_bps"`
		Tier1RateBps             int64    `json:"tier1_rate_bps"`
		Tier1ThresholdMultiplier *float64 `json:"tier1_threshold_multiplier"`
		Tier2RateBps             int64    `json:"tier2_rate_bps"`
		Tier2ThresholdMultiplier *float64 `json:"tier2_threshold_multiplier"`
		Currency                 string   `json:"currency"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := currencyOr(req.Currency)
	tiers := fundfees.HurdleTiers{
		Tier1Rate: fundfees.FeeBps(req.Tier1RateBps),
		Tier2Rate: fundfees.FeeBps(req.Tier2RateBps),
	}
	if req.Tier1ThresholdMultiplier != nil {
		q := fundfees.Q(*req.Tier1ThresholdMultiplier)
		tiers.Tier1Threshold = &q
	}
	if req.Tier2ThresholdMultiplier != nil {
		q := fundfees.Q(*req.Tier2ThresholdMultiplier)
		tiers.Tier2Threshold = &q
	}
	writeFee(w, fundfees.TieredPerformanceFeeWithHurdle(
		fundfees.M(req.ContributedCapital, c), fundfees.M(req.ExitProceeds, c),
		fundfees.Q(req.YearsHeld), fundfees.FeeBps(req.HurdleRateBps), tiers))
}

func (h *Handlers) ValidateInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := fundfees.DecodeInvoiceExport(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fundfees.ValidateInvoice(inv))
}

func (h *Handlers) ValidateFeeComponents(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Components []struct {
			Kind    string `json:"kind"`
			RateBps int64  `json:"rate_bps"`
		} `json:"components"`
		Caps struct {
			Subscription *float64 `json:"subscription_cap"`
			Management   *float64 `json:"management_cap"`
			Performance  *float64 `json:"performance_cap"`
		} `json:"caps"`
	}
	if !decode(w, r, &req) {
		return
	}
	components := make([]fundfees.FeeComponent, 0, len(req.Components))
	for _, c := range req.Components {
		components = append(components, fundfees.FeeComponent{
			Kind: fundfees.FeeKind(c.Kind),
			Rate: fundfees.TermBps(c.RateBps),
		})
	}
	caps := fundfees.TermSheetCaps{
		Subscription: toPercent(req.Caps.Subscription),
		Management:   toPercent(req.Caps.Management),
		Performance:  toPercent(req.Caps.Performance),
	}
	violations := fundfees.ValidateFeeComponentsAgainstTermSheet(components, caps)
	if violations == nil {
		violations = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":      len(violations) == 0,
		"violations": violations,
	})
}

func toPercent(f *float64) *fundfees.Percent {
	if f == nil {
		return nil
	}
	p := fundfees.Percent(*f)
	return &p
}
