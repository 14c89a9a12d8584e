package loader

import (
	"time"

	"fjacquet/invoice-recon/internal/currencyutils"
	"fjacquet/invoice-recon/internal/dateutils"
	"fjacquet/invoice-recon/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ReadInvoices loads an invoice CSV file into canonical Invoice records.
func ReadInvoices(filePath string) ([]models.Invoice, error) {
	rows, err := readNormalized[invoiceCSVRow](filePath, requiredInvoiceColumns)
	if err != nil {
		return nil, err
	}

	invoices := make([]models.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, models.Invoice{
			InvoiceID:    row.InvoiceID,
			CustomerName: row.CustomerName,
			Amount:       coerceAmount(row.Amount, "invoice_amount"),
			Currency:     row.Currency,
			Date:         coerceDate(row.Date, "invoice_date"),
		})
	}
	return invoices, nil
}

// ReadPayments loads a payment CSV file into canonical Payment records.
func ReadPayments(filePath string) ([]models.Payment, error) {
	rows, err := readNormalized[paymentCSVRow](filePath, requiredPaymentColumns)
	if err != nil {
		return nil, err
	}

	payments := make([]models.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, models.Payment{
			PaymentID:       row.PaymentID,
			PayerName:       row.PayerName,
			Memo:            row.Memo,
			ReferenceNumber: row.ReferenceNumber,
			Amount:          coerceAmount(row.Amount, "payment_amount"),
			Currency:        row.Currency,
			Date:            coerceDate(row.Date, "payment_date"),
		})
	}
	return payments, nil
}

// coerceAmount parses an amount cell, returning nil for empty or unparseable
// values. An unmatchable amount is not a load error.
func coerceAmount(value, field string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	amount, err := currencyutils.ParseAmount(value)
	if err != nil {
		log.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Debug("Unparseable amount coerced to null")
		return nil
	}
	return &amount
}

// coerceDate parses a date cell, returning nil for empty or unparseable values.
func coerceDate(value, field string) *time.Time {
	if value == "" {
		return nil
	}
	date, _, err := dateutils.ParseDate(value)
	if err != nil {
		log.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Debug("Unparseable date coerced to null")
		return nil
	}
	return &date
}
