package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldPaymentID  = "payment_id"
	FieldInvoiceID  = "invoice_id"
	FieldMatcher    = "matcher"
	FieldRationale  = "rationale"
	FieldConfidence = "confidence"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
