package matcher

import (
	"sort"

	"fjacquet/invoice-recon/internal/models"
)

// Aggregate resolves the combined candidate sequence to at most one match per
// payment. Candidates are stable-sorted by confidence descending, so on equal
// confidence the earlier-generated candidate wins: matcher registration order
// first, then payment scan order, then invoice scan order. The first candidate
// per payment id in the sorted sequence becomes the final match.
func Aggregate(candidates []Candidate) []models.Match {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	seen := make(map[string]bool, len(sorted))
	matches := make([]models.Match, 0, len(sorted))
	for _, c := range sorted {
		if seen[c.PaymentID] {
			continue
		}
		seen[c.PaymentID] = true
		matches = append(matches, models.Match{
			PaymentID:  c.PaymentID,
			InvoiceID:  c.InvoiceID,
			Confidence: c.Confidence,
			Rationale:  c.Rationale,
		})
	}
	return matches
}
