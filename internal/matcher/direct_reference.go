package matcher

import (
	"strings"

	"fjacquet/invoice-recon/internal/models"
)

// DirectReferenceMatcher finds invoice identifiers embedded in a payment's
// free-text fields (memo and reference number). A hit is the strongest signal
// the engine knows.
type DirectReferenceMatcher struct{}

// NewDirectReferenceMatcher creates a DirectReferenceMatcher.
func NewDirectReferenceMatcher() *DirectReferenceMatcher {
	return &DirectReferenceMatcher{}
}

// Match scans every payment's search text for every invoice id as a plain
// substring. A single payment can match several invoices, for instance when
// one invoice id is a prefix of another; each hit is a separate candidate.
func (m *DirectReferenceMatcher) Match(payments []models.Payment, invoices []models.Invoice) []Candidate {
	var candidates []Candidate
	for _, pay := range payments {
		searchText := pay.SearchText()
		for _, inv := range invoices {
			if strings.Contains(searchText, inv.InvoiceID) {
				candidates = append(candidates, Candidate{
					PaymentID:  pay.PaymentID,
					InvoiceID:  inv.InvoiceID,
					Confidence: ConfidenceDirectReference,
					Rationale:  RationaleDirectReference,
				})
			}
		}
	}
	return candidates
}
