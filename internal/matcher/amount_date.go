package matcher

import (
	"fjacquet/invoice-recon/internal/dateutils"
	"fjacquet/invoice-recon/internal/models"
)

// DefaultDateWindowDays is the date proximity window used when none is
// configured.
const DefaultDateWindowDays = 7

// AmountDateMatcher finds payment/invoice pairs in the same currency whose
// amounts agree within the minor-unit tolerance and whose dates fall within a
// day window of each other.
type AmountDateMatcher struct {
	WindowDays int
}

// NewAmountDateMatcher creates an AmountDateMatcher with the default window.
func NewAmountDateMatcher() *AmountDateMatcher {
	return &AmountDateMatcher{WindowDays: DefaultDateWindowDays}
}

// Match emits a candidate for every pair with equal currency (exact,
// case-sensitive), both dates present and at most WindowDays apart, and both
// amounts present and within tolerance. A record with a missing amount or
// date never matches here.
func (m *AmountDateMatcher) Match(payments []models.Payment, invoices []models.Invoice) []Candidate {
	var candidates []Candidate
	for _, pay := range payments {
		for _, inv := range invoices {
			if inv.Currency != pay.Currency {
				continue
			}
			if pay.Date == nil || inv.Date == nil {
				continue
			}
			if dateutils.DaysApart(*pay.Date, *inv.Date) > m.WindowDays {
				continue
			}
			if !amountsWithinTolerance(pay.Amount, inv.Amount) {
				continue
			}
			candidates = append(candidates, Candidate{
				PaymentID:  pay.PaymentID,
				InvoiceID:  inv.InvoiceID,
				Confidence: ConfidenceAmountDate,
				Rationale:  RationaleAmountDate,
			})
		}
	}
	return candidates
}
