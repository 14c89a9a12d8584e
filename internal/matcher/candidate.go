// Package matcher implements the reconciliation core: candidate generation by
// independent matching heuristics, confidence-ranked aggregation to one match
// per payment, and remainder derivation for underpaid invoices.
package matcher

import (
	"github.com/shopspring/decimal"

	"fjacquet/invoice-recon/internal/models"
)

// Rationale labels identifying which matcher branch produced a candidate.
const (
	RationaleDirectReference = "direct_reference"
	RationaleAmountDate      = "amount_date_proximity"
	RationaleNameAmountExact = "name_amount_exact"
	RationaleNamePartial     = "name_partial_payment"
	RationaleNameOverpayment = "name_overpayment"
)

// Confidence values per matcher branch. Ties between equal confidences are
// broken by candidate generation order, so these values also encode strategy
// precedence.
const (
	ConfidenceDirectReference = 1.0
	ConfidenceAmountDate      = 0.8
	ConfidenceNameAmountExact = 0.7
	ConfidenceNamePartial     = 0.5
	ConfidenceNameOverpayment = 0.4
)

// amountTolerance is the currency-minor-unit band inside which two amounts
// count as equal.
var amountTolerance = decimal.NewFromFloat(0.01)

// Candidate is a proposed, unresolved payment/invoice link. Many candidates
// may exist per payment before aggregation.
type Candidate struct {
	PaymentID  string
	InvoiceID  string
	Confidence float64
	Rationale  string
}

// Matcher generates candidates for every payment/invoice pair it considers
// linked. Matchers are read-only over their inputs and independent of each
// other; only the aggregation step depends on their combined output order.
type Matcher interface {
	Match(payments []models.Payment, invoices []models.Invoice) []Candidate
}

// amountsWithinTolerance reports whether two amounts differ by less than the
// minor-unit tolerance. Either amount missing means no comparison is possible.
func amountsWithinTolerance(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Sub(*b).Abs().LessThan(amountTolerance)
}
