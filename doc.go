// Package fundfees implements the fee computation and reconciliation core of
// an investor-relations back office: deterministic functions converting fund
// economics into monetary amounts, and a validator reconciling computed
// amounts against invoices.
//
// The core functionalities include:
//   - Rate Conversion: two independently scaled basis-point conventions
//     (fee-calculation scale and term-sheet scale) kept as distinct types.
//   - Simple Fee Calculators: subscription fees, flat spreads, introducer
//     commissions, net retained fees, and total wire amounts.
//   - Management Fee Proration: actual/365 day-count proration of annual
//     rates over arbitrary inclusive date ranges, with canonical period end
//     dates for annual, quarterly, and monthly frequencies.
//   - Performance Fees: flat-rate, multi-tier (share-price based),
//     hurdle-adjusted (capital based), and combined tiered+hurdle carry.
//   - Invoice Reconciliation: comparing an invoice's declared total against
//     its line items and their fee events into a structured report.
//
// Every calculator is a pure, stateless function on exact decimal values;
// monetary amounts never travel as binary floating point. This package is
// the foundational logic for the `ffc` command-line tool and the fee API.
package fundfees
