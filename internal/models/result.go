package models

import (
	"github.com/shopspring/decimal"
)

// Match is the single candidate retained for a payment after aggregation.
type Match struct {
	PaymentID  string  `csv:"payment_id" json:"payment_id"`
	InvoiceID  string  `csv:"invoice_id" json:"invoice_id"`
	Confidence float64 `csv:"confidence" json:"confidence"`
	Rationale  string  `csv:"rationale" json:"rationale"`
}

// RemainderRecord is the outstanding balance of an invoice whose matched
// payment was smaller than the invoice amount. Both amounts are always
// present: a remainder is only derived when they could be compared.
type RemainderRecord struct {
	InvoiceID       string
	CustomerName    string
	InvoiceAmount   decimal.Decimal
	PaymentID       string
	PaymentAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Currency        string
}

// Result holds the four output collections of one reconciliation run.
type Result struct {
	Matches           []Match
	UnmatchedPayments []Payment
	UnmatchedInvoices []Invoice
	Remainders        []RemainderRecord
}

// Summary returns the aggregate counts reported to the caller after a run.
func (r Result) Summary() Summary {
	return Summary{
		Matches:           len(r.Matches),
		UnmatchedPayments: len(r.UnmatchedPayments),
		UnmatchedInvoices: len(r.UnmatchedInvoices),
		Remainders:        len(r.Remainders),
	}
}

// Summary carries the match/unmatched counts of a reconciliation run.
type Summary struct {
	Matches           int `json:"matches" xml:"Matches"`
	UnmatchedPayments int `json:"unmatched_payments" xml:"UnmatchedPayments"`
	UnmatchedInvoices int `json:"unmatched_invoices" xml:"UnmatchedInvoices"`
	Remainders        int `json:"remainders" xml:"Remainders"`
}
