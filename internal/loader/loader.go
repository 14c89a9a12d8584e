// Package loader reads invoice and payment CSV files into the canonical
// record shapes. Column headers are matched case- and whitespace-insensitively
// and the source-specific amount/date column names are mapped onto the
// canonical fields. Unparseable amounts and dates coerce to nil instead of
// failing the load; missing required columns fail it before the engine runs.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/invoice-recon/internal/common"
	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// invoiceCSVRow maps the raw invoice CSV columns. invoice_amount and
// invoice_date are renamed to the canonical amount/date during conversion.
type invoiceCSVRow struct {
	InvoiceID    string `csv:"invoice_id"`
	CustomerName string `csv:"customer_name"`
	Amount       string `csv:"invoice_amount"`
	Currency     string `csv:"currency"`
	Date         string `csv:"invoice_date"`
}

// paymentCSVRow maps the raw payment CSV columns.
type paymentCSVRow struct {
	PaymentID       string `csv:"payment_id"`
	PayerName       string `csv:"payer_name"`
	Memo            string `csv:"memo"`
	ReferenceNumber string `csv:"reference_number"`
	Amount          string `csv:"payment_amount"`
	Currency        string `csv:"currency"`
	Date            string `csv:"payment_date"`
}

var (
	requiredInvoiceColumns = []string{"invoice_id", "currency"}
	requiredPaymentColumns = []string{"payment_id", "currency"}
)

// sliceCSVReader feeds already-read CSV records to gocsv.
type sliceCSVReader struct {
	records [][]string
	pos     int
}

func (r *sliceCSVReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *sliceCSVReader) ReadAll() ([][]string, error) {
	rec := r.records[r.pos:]
	r.pos = len(r.records)
	return rec, nil
}

// readNormalized reads a CSV file, normalizes its header row (trim +
// lowercase) and unmarshals the rows into TCSVRow structs. Returns a
// ValidationError when a required column is absent.
func readNormalized[TCSVRow any](filePath string, required []string) ([]TCSVRow, error) {
	log.WithField(logging.FieldInputFile, filePath).Info("Reading CSV file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = common.Delimiter
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV file %s: %w", filePath, err)
	}
	if len(records) == 0 {
		return nil, &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   "file is empty",
		}
	}

	header := records[0]
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	if err := checkColumns(filePath, header, required); err != nil {
		return nil, err
	}

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(&sliceCSVReader{records: records}, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV rows")
		return nil, fmt.Errorf("error parsing CSV file %s: %w", filePath, err)
	}

	log.WithField(logging.FieldCount, len(rows)).Info("Successfully read CSV data")
	return rows, nil
}

func checkColumns(filePath string, header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, col := range required {
		if !present[col] {
			return &parsererror.ValidationError{
				FilePath: filePath,
				Reason:   fmt.Sprintf("missing required column %q", col),
			}
		}
	}
	return nil
}

// ValidateInvoicesFile reports whether the file carries the columns the
// engine cannot run without.
func ValidateInvoicesFile(filePath string) (bool, error) {
	return validateColumns(filePath, requiredInvoiceColumns)
}

// ValidatePaymentsFile reports whether the file carries the columns the
// engine cannot run without.
func ValidatePaymentsFile(filePath string) (bool, error) {
	return validateColumns(filePath, requiredPaymentColumns)
}

func validateColumns(filePath string, required []string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = common.Delimiter
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("error reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	if err := checkColumns(filePath, header, required); err != nil {
		return false, nil
	}
	return true, nil
}
