// Package api exposes the fee calculators and the invoice validator over
// HTTP to the invoice-generation endpoints and fee-accrual jobs.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter() http.Handler {
	h := &Handlers{}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		// Simple fees.
		r.Post("/fees/subscription", h.SubscriptionFee)
		r.Post("/fees/management", h.ManagementFee)
		r.Post("/fees/management-period", h.ManagementFeePeriod)
		r.Post("/fees/spread", h.Spread)
		r.Post("/fees/commission", h.IntroducerCommission)
		r.Post("/fees/wire-amount", h.TotalWireAmount)

		// Performance fees.
		r.Post("/fees/performance", h.PerformanceFee)
		r.Post("/fees/performance/tiered", h.TieredPerformanceFee)
		r.Post("/fees/performance/hurdle", h.PerformanceFeeWithHurdle)
		r.Post("/fees/performance/tiered-hurdle", h.TieredPerformanceFeeWithHurdle)

		// Reconciliation.
		r.Post("/invoices/validate", h.ValidateInvoice)

		// Term sheet guard.
		r.Post("/termsheets/validate-components", h.ValidateFeeComponents)
	})

	return r
}
