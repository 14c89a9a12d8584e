// Package models defines the record shapes flowing through the reconciliation
// engine: the two input record sets and the derived match, remainder and
// summary records.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a single receivable record. Amount and Date are nil when the
// source value was absent or unparseable; every comparison involving a nil
// field fails, so such records can never match on that field.
type Invoice struct {
	InvoiceID    string
	CustomerName string
	Amount       *decimal.Decimal
	Currency     string
	Date         *time.Time
}

// Payment is a single incoming payment record.
type Payment struct {
	PaymentID       string
	PayerName       string
	Memo            string
	ReferenceNumber string
	Amount          *decimal.Decimal
	Currency        string
	Date            *time.Time
}

// SearchText returns the free-text fields a payment carries, joined the way
// the direct-reference matcher scans them.
func (p Payment) SearchText() string {
	return strings.Join([]string{p.Memo, p.ReferenceNumber}, " ")
}
