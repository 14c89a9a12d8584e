package matcher

import (
	"testing"

	"fjacquet/invoice-recon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainders_Underpayment(t *testing.T) {
	matches := []models.Match{
		{PaymentID: "PAY-1", InvoiceID: "INV-1", Confidence: 0.5, Rationale: RationaleNamePartial},
	}
	payments := []models.Payment{
		{PaymentID: "PAY-1", Amount: amt(t, "30.00"), Currency: "USD"},
	}
	invoices := []models.Invoice{
		{InvoiceID: "INV-1", CustomerName: "Acme Pvt Ltd", Amount: amt(t, "50.00"), Currency: "USD"},
	}

	remainders := Remainders(matches, payments, invoices)

	require.Len(t, remainders, 1)
	r := remainders[0]
	assert.Equal(t, "INV-1", r.InvoiceID)
	assert.Equal(t, "Acme Pvt Ltd", r.CustomerName)
	assert.Equal(t, "PAY-1", r.PaymentID)
	assert.Equal(t, "USD", r.Currency)
	assert.True(t, r.RemainingAmount.Equal(*amt(t, "20.00")), "got %s", r.RemainingAmount)
	assert.True(t, r.InvoiceAmount.Equal(*invoices[0].Amount))
	assert.True(t, r.PaymentAmount.Equal(*payments[0].Amount))
}

func TestRemainders_NoRecordForEqualOrOverpaid(t *testing.T) {
	payments := []models.Payment{
		{PaymentID: "PAY-1", Amount: amt(t, "50.00"), Currency: "USD"},
		{PaymentID: "PAY-2", Amount: amt(t, "80.00"), Currency: "USD"},
	}
	invoices := []models.Invoice{
		{InvoiceID: "INV-1", Amount: amt(t, "50.00"), Currency: "USD"},
		{InvoiceID: "INV-2", Amount: amt(t, "60.00"), Currency: "USD"},
	}
	matches := []models.Match{
		{PaymentID: "PAY-1", InvoiceID: "INV-1", Confidence: 0.7},
		{PaymentID: "PAY-2", InvoiceID: "INV-2", Confidence: 0.4},
	}

	assert.Empty(t, Remainders(matches, payments, invoices))
}

func TestRemainders_MissingAmounts(t *testing.T) {
	// A direct-reference match can link records whose amounts never parsed;
	// no balance can be derived for those.
	payments := []models.Payment{
		{PaymentID: "PAY-1", Currency: "USD"},
	}
	invoices := []models.Invoice{
		{InvoiceID: "INV-1", Amount: amt(t, "50.00"), Currency: "USD"},
	}
	matches := []models.Match{
		{PaymentID: "PAY-1", InvoiceID: "INV-1", Confidence: 1.0, Rationale: RationaleDirectReference},
	}

	assert.Empty(t, Remainders(matches, payments, invoices))
}
