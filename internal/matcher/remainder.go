package matcher

import (
	"fjacquet/invoice-recon/internal/models"
)

// Remainders derives the outstanding balance for every final match whose
// payment underpays its invoice. It runs only over the deduplicated match
// set, never over raw candidates. A match whose payment or invoice amount is
// missing cannot be compared and produces no remainder, as do equal-or-over
// payments.
func Remainders(matches []models.Match, payments []models.Payment, invoices []models.Invoice) []models.RemainderRecord {
	paymentsByID := make(map[string]models.Payment, len(payments))
	for _, p := range payments {
		paymentsByID[p.PaymentID] = p
	}
	invoicesByID := make(map[string]models.Invoice, len(invoices))
	for _, i := range invoices {
		invoicesByID[i.InvoiceID] = i
	}

	var remainders []models.RemainderRecord
	for _, m := range matches {
		pay, ok := paymentsByID[m.PaymentID]
		if !ok {
			continue
		}
		inv, ok := invoicesByID[m.InvoiceID]
		if !ok {
			continue
		}
		if pay.Amount == nil || inv.Amount == nil {
			continue
		}
		if !pay.Amount.LessThan(*inv.Amount) {
			continue
		}
		remainders = append(remainders, models.RemainderRecord{
			InvoiceID:       inv.InvoiceID,
			CustomerName:    inv.CustomerName,
			InvoiceAmount:   *inv.Amount,
			PaymentID:       pay.PaymentID,
			PaymentAmount:   *pay.Amount,
			RemainingAmount: inv.Amount.Sub(*pay.Amount),
			Currency:        inv.Currency,
		})
	}
	return remainders
}
