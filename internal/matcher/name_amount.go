package matcher

import (
	"fjacquet/invoice-recon/internal/models"
	"fjacquet/invoice-recon/internal/textutils"
)

// NameAmountMatcher finds payment/invoice pairs with equal normalized
// payer/customer names and classifies the amount relationship as exact,
// partial payment or overpayment.
//
// Two records that both lack a name normalize to the empty string and compare
// equal. That can generate spurious candidates and is a known quirk of the
// matching rules kept for result compatibility; see DESIGN.md before changing
// it.
type NameAmountMatcher struct {
	Rules []textutils.Rule
}

// NewNameAmountMatcher creates a NameAmountMatcher using the built-in
// normalization rules.
func NewNameAmountMatcher() *NameAmountMatcher {
	return &NameAmountMatcher{Rules: textutils.DefaultRules}
}

// Match emits one candidate per pair with equal normalized names and both
// amounts present: equal amounts (within tolerance) score highest, an
// underpaying payment scores as a partial payment, an overpaying one lowest.
func (m *NameAmountMatcher) Match(payments []models.Payment, invoices []models.Invoice) []Candidate {
	var candidates []Candidate
	for _, pay := range payments {
		payName := textutils.NormalizeNameWithRules(pay.PayerName, m.Rules)
		for _, inv := range invoices {
			invName := textutils.NormalizeNameWithRules(inv.CustomerName, m.Rules)
			if payName != invName {
				continue
			}
			if pay.Amount == nil || inv.Amount == nil {
				continue
			}

			var confidence float64
			var rationale string
			switch {
			case amountsWithinTolerance(pay.Amount, inv.Amount):
				confidence = ConfidenceNameAmountExact
				rationale = RationaleNameAmountExact
			case pay.Amount.LessThan(*inv.Amount):
				confidence = ConfidenceNamePartial
				rationale = RationaleNamePartial
			case pay.Amount.GreaterThan(*inv.Amount):
				confidence = ConfidenceNameOverpayment
				rationale = RationaleNameOverpayment
			default:
				// Unreachable: equal amounts already satisfied the
				// tolerance branch.
				continue
			}

			candidates = append(candidates, Candidate{
				PaymentID:  pay.PaymentID,
				InvoiceID:  inv.InvoiceID,
				Confidence: confidence,
				Rationale:  rationale,
			})
		}
	}
	return candidates
}
