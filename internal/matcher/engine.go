package matcher

import (
	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/models"
	"fjacquet/invoice-recon/internal/parsererror"
)

// Engine runs the full reconciliation over one pair of record sets: candidate
// generation by each registered matcher, aggregation, unmatched-set derivation
// and remainder calculation. It holds no state across runs.
type Engine struct {
	matchers []Matcher
	logger   logging.Logger
}

// NewEngine creates an Engine with the standard matcher sequence: direct
// reference, then amount/date, then name/amount. The sequence is the
// tie-break between candidates of equal confidence, so the order is part of
// the engine's contract.
func NewEngine(logger logging.Logger) *Engine {
	return NewEngineWithMatchers(logger,
		NewDirectReferenceMatcher(),
		NewAmountDateMatcher(),
		NewNameAmountMatcher(),
	)
}

// NewEngineWithMatchers creates an Engine with an explicit matcher sequence.
func NewEngineWithMatchers(logger logging.Logger, matchers ...Matcher) *Engine {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(logging.GetLogger())
	}
	return &Engine{
		matchers: matchers,
		logger:   logger,
	}
}

// Reconcile matches payments against invoices and partitions both record sets
// into matched, unmatched and remainder collections. Records missing an
// identifier or currency are caller-input errors and abort the run before any
// matching happens; unparseable amounts and dates are not errors and simply
// never match.
func (e *Engine) Reconcile(invoices []models.Invoice, payments []models.Payment) (models.Result, error) {
	if err := validateRecords(invoices, payments); err != nil {
		return models.Result{}, err
	}

	e.logger.Info("Starting reconciliation",
		logging.Field{Key: "invoices", Value: len(invoices)},
		logging.Field{Key: "payments", Value: len(payments)})

	var candidates []Candidate
	for _, m := range e.matchers {
		generated := m.Match(payments, invoices)
		e.logger.Debug("Matcher produced candidates",
			logging.Field{Key: logging.FieldMatcher, Value: matcherName(m)},
			logging.Field{Key: logging.FieldCount, Value: len(generated)})
		candidates = append(candidates, generated...)
	}

	matches := Aggregate(candidates)
	for _, m := range matches {
		e.logger.Debug("Retained match",
			logging.Field{Key: logging.FieldPaymentID, Value: m.PaymentID},
			logging.Field{Key: logging.FieldInvoiceID, Value: m.InvoiceID},
			logging.Field{Key: logging.FieldRationale, Value: m.Rationale},
			logging.Field{Key: logging.FieldConfidence, Value: m.Confidence})
	}

	matchedPayments := make(map[string]bool, len(matches))
	matchedInvoices := make(map[string]bool, len(matches))
	for _, m := range matches {
		matchedPayments[m.PaymentID] = true
		matchedInvoices[m.InvoiceID] = true
	}

	result := models.Result{
		Matches:    matches,
		Remainders: Remainders(matches, payments, invoices),
	}
	for _, p := range payments {
		if !matchedPayments[p.PaymentID] {
			result.UnmatchedPayments = append(result.UnmatchedPayments, p)
		}
	}
	for _, i := range invoices {
		if !matchedInvoices[i.InvoiceID] {
			result.UnmatchedInvoices = append(result.UnmatchedInvoices, i)
		}
	}

	summary := result.Summary()
	e.logger.Info("Reconciliation complete",
		logging.Field{Key: "matches", Value: summary.Matches},
		logging.Field{Key: "unmatched_payments", Value: summary.UnmatchedPayments},
		logging.Field{Key: "unmatched_invoices", Value: summary.UnmatchedInvoices},
		logging.Field{Key: "remainders", Value: summary.Remainders})

	return result, nil
}

// validateRecords rejects records lacking the fields no matcher can proceed
// without. Missing names, amounts and dates are fine; missing identifiers and
// currencies are not.
func validateRecords(invoices []models.Invoice, payments []models.Payment) error {
	for _, inv := range invoices {
		if inv.InvoiceID == "" {
			return &parsererror.MissingFieldError{RecordKind: "invoice", Field: "invoice_id"}
		}
		if inv.Currency == "" {
			return &parsererror.MissingFieldError{RecordKind: "invoice", RecordID: inv.InvoiceID, Field: "currency"}
		}
	}
	for _, pay := range payments {
		if pay.PaymentID == "" {
			return &parsererror.MissingFieldError{RecordKind: "payment", Field: "payment_id"}
		}
		if pay.Currency == "" {
			return &parsererror.MissingFieldError{RecordKind: "payment", RecordID: pay.PaymentID, Field: "currency"}
		}
	}
	return nil
}

func matcherName(m Matcher) string {
	switch m.(type) {
	case *DirectReferenceMatcher:
		return "direct_reference"
	case *AmountDateMatcher:
		return "amount_date"
	case *NameAmountMatcher:
		return "name_amount"
	default:
		return "custom"
	}
}
