// Package fees contains the fee/billing engine: the pricing catalog
// (fee types and priced instances per year/class), installment plans,
// the payment ledger with its amendment history, and the per-school,
// per-year receipt counter that numbers payments.
//
// Balances are never stored; they are derived from the ledger on demand.
package fees
