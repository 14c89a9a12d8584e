// Package writer persists the four reconciliation output tables as CSV files.
package writer

import (
	"path/filepath"
	"time"

	"fjacquet/invoice-recon/internal/common"
	"fjacquet/invoice-recon/internal/dateutils"
	"fjacquet/invoice-recon/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Output file names within the output directory.
const (
	MatchesFile           = "matches.csv"
	UnmatchedPaymentsFile = "unmatched_payments.csv"
	UnmatchedInvoicesFile = "unmatched_invoices.csv"
	RemaindersFile        = "remaining_payments.csv"
)

// SetLogger allows setting a configured logger for the underlying CSV writer
func SetLogger(logger *logrus.Logger) {
	common.SetLogger(logger)
}

// invoiceRow is the canonical (renamed, coerced) invoice output shape.
type invoiceRow struct {
	InvoiceID    string `csv:"invoice_id"`
	CustomerName string `csv:"customer_name"`
	Amount       string `csv:"amount"`
	Currency     string `csv:"currency"`
	Date         string `csv:"date"`
}

type paymentRow struct {
	PaymentID       string `csv:"payment_id"`
	PayerName       string `csv:"payer_name"`
	Memo            string `csv:"memo"`
	ReferenceNumber string `csv:"reference_number"`
	Amount          string `csv:"amount"`
	Currency        string `csv:"currency"`
	Date            string `csv:"date"`
}

type remainderRow struct {
	InvoiceID       string `csv:"invoice_id"`
	CustomerName    string `csv:"customer_name"`
	InvoiceAmount   string `csv:"invoice_amount"`
	PaymentID       string `csv:"payment_id"`
	PaymentAmount   string `csv:"payment_amount"`
	RemainingAmount string `csv:"remaining_amount"`
	Currency        string `csv:"currency"`
}

// WriteResult writes all four output tables into outputDir, creating it when
// needed.
func WriteResult(result models.Result, outputDir string) error {
	if err := WriteMatches(result.Matches, filepath.Join(outputDir, MatchesFile)); err != nil {
		return err
	}
	if err := WriteUnmatchedPayments(result.UnmatchedPayments, filepath.Join(outputDir, UnmatchedPaymentsFile)); err != nil {
		return err
	}
	if err := WriteUnmatchedInvoices(result.UnmatchedInvoices, filepath.Join(outputDir, UnmatchedInvoicesFile)); err != nil {
		return err
	}
	return WriteRemainders(result.Remainders, filepath.Join(outputDir, RemaindersFile))
}

// WriteMatches writes the final match table.
func WriteMatches(matches []models.Match, csvFile string) error {
	return common.WriteCSVFile(matches, csvFile)
}

// WriteUnmatchedPayments writes payments that received no final match.
func WriteUnmatchedPayments(payments []models.Payment, csvFile string) error {
	rows := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, paymentRow{
			PaymentID:       p.PaymentID,
			PayerName:       p.PayerName,
			Memo:            p.Memo,
			ReferenceNumber: p.ReferenceNumber,
			Amount:          formatAmount(p.Amount),
			Currency:        p.Currency,
			Date:            formatDate(p.Date),
		})
	}
	return common.WriteCSVFile(rows, csvFile)
}

// WriteUnmatchedInvoices writes invoices no payment resolved to.
func WriteUnmatchedInvoices(invoices []models.Invoice, csvFile string) error {
	rows := make([]invoiceRow, 0, len(invoices))
	for _, i := range invoices {
		rows = append(rows, invoiceRow{
			InvoiceID:    i.InvoiceID,
			CustomerName: i.CustomerName,
			Amount:       formatAmount(i.Amount),
			Currency:     i.Currency,
			Date:         formatDate(i.Date),
		})
	}
	return common.WriteCSVFile(rows, csvFile)
}

// WriteRemainders writes the outstanding balances of underpaid invoices.
func WriteRemainders(remainders []models.RemainderRecord, csvFile string) error {
	rows := make([]remainderRow, 0, len(remainders))
	for _, r := range remainders {
		rows = append(rows, remainderRow{
			InvoiceID:       r.InvoiceID,
			CustomerName:    r.CustomerName,
			InvoiceAmount:   r.InvoiceAmount.StringFixed(2),
			PaymentID:       r.PaymentID,
			PaymentAmount:   r.PaymentAmount.StringFixed(2),
			RemainingAmount: r.RemainingAmount.StringFixed(2),
			Currency:        r.Currency,
		})
	}
	return common.WriteCSVFile(rows, csvFile)
}

func formatAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.StringFixed(2)
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return dateutils.ToISODate(*date)
}
