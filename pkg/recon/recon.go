// Package recon exposes the reconciliation engine as a small library API for
// callers that already hold parsed record sets.
package recon

import (
	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/matcher"
	"fjacquet/invoice-recon/internal/models"
)

// Invoice is the canonical invoice record shape.
type Invoice = models.Invoice

// Payment is the canonical payment record shape.
type Payment = models.Payment

// Match is one resolved payment/invoice link.
type Match = models.Match

// RemainderRecord is the outstanding balance of an underpaid invoice.
type RemainderRecord = models.RemainderRecord

// Result holds the four output collections of one reconciliation run.
type Result = models.Result

// Reconcile matches payments against invoices using the standard matcher
// sequence and returns the final matches, both unmatched sets and the
// remainder records. Records missing an identifier or currency return an
// error.
func Reconcile(invoices []Invoice, payments []Payment) (Result, error) {
	engine := matcher.NewEngine(nil)
	return engine.Reconcile(invoices, payments)
}

// ReconcileWithLogging is Reconcile with an explicitly configured logger, for
// callers that want run logs at a chosen level ("debug", "info", "warn",
// "error") and format ("text" or "json") without wiring a logger themselves.
func ReconcileWithLogging(invoices []Invoice, payments []Payment, logLevel, logFormat string) (Result, error) {
	engine := matcher.NewEngine(logging.NewLogrusAdapter(logLevel, logFormat))
	return engine.Reconcile(invoices, payments)
}
