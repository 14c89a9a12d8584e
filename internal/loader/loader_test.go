package loader

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/invoice-recon/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadInvoices(t *testing.T) {
	csv := `invoice_id,customer_name,invoice_amount,currency,invoice_date
INV-1,Acme Private Limited,100.00,USD,2024-01-01
INV-2,Globex Ltd,250.50,EUR,2024-02-15
`
	path := writeTempCSV(t, "invoices.csv", csv)

	invoices, err := ReadInvoices(path)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	assert.Equal(t, "INV-1", invoices[0].InvoiceID)
	assert.Equal(t, "Acme Private Limited", invoices[0].CustomerName)
	require.NotNil(t, invoices[0].Amount)
	assert.Equal(t, "100", invoices[0].Amount.String())
	assert.Equal(t, "USD", invoices[0].Currency)
	require.NotNil(t, invoices[0].Date)
	assert.Equal(t, "2024-01-01", invoices[0].Date.Format("2006-01-02"))

	require.NotNil(t, invoices[1].Amount)
	assert.Equal(t, "250.5", invoices[1].Amount.String())
}

func TestReadInvoices_HeaderCaseAndWhitespace(t *testing.T) {
	csv := ` Invoice_ID , Customer_Name ,Invoice_Amount,CURRENCY,Invoice_Date
INV-1,Acme,42.00,USD,2024-01-01
`
	path := writeTempCSV(t, "invoices.csv", csv)

	invoices, err := ReadInvoices(path)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-1", invoices[0].InvoiceID)
	assert.Equal(t, "USD", invoices[0].Currency)
}

func TestReadInvoices_UnparseableValuesCoerceToNil(t *testing.T) {
	csv := `invoice_id,customer_name,invoice_amount,currency,invoice_date
INV-1,Acme,not-a-number,USD,not-a-date
INV-2,Globex,,EUR,
`
	path := writeTempCSV(t, "invoices.csv", csv)

	invoices, err := ReadInvoices(path)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Nil(t, invoices[0].Amount)
	assert.Nil(t, invoices[0].Date)
	assert.Nil(t, invoices[1].Amount)
	assert.Nil(t, invoices[1].Date)
}

func TestReadInvoices_MissingRequiredColumn(t *testing.T) {
	csv := `customer_name,invoice_amount,currency,invoice_date
Acme,100.00,USD,2024-01-01
`
	path := writeTempCSV(t, "invoices.csv", csv)

	_, err := ReadInvoices(path)
	require.Error(t, err)
	var verr *parsererror.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReadInvoices_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "invoices.csv", "")

	_, err := ReadInvoices(path)
	require.Error(t, err)
	var verr *parsererror.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReadPayments(t *testing.T) {
	csv := `payment_id,payer_name,memo,reference_number,payment_amount,currency,payment_date
PAY-1,acme pvt ltd,paid INV-1,REF-9,100.00,USD,2024-01-05
PAY-2,,,,30.00,USD,2024-02-20
`
	path := writeTempCSV(t, "payments.csv", csv)

	payments, err := ReadPayments(path)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, "PAY-1", payments[0].PaymentID)
	assert.Equal(t, "paid INV-1", payments[0].Memo)
	assert.Equal(t, "REF-9", payments[0].ReferenceNumber)
	assert.Equal(t, "paid INV-1 REF-9", payments[0].SearchText())

	assert.Empty(t, payments[1].Memo)
	assert.Empty(t, payments[1].PayerName)
	require.NotNil(t, payments[1].Amount)
	assert.Equal(t, "30", payments[1].Amount.String())
}

func TestReadPayments_OptionalColumnsAbsent(t *testing.T) {
	// memo and reference_number default to empty when the columns are
	// missing entirely.
	csv := `payment_id,payer_name,payment_amount,currency,payment_date
PAY-1,Acme,10.00,USD,2024-01-01
`
	path := writeTempCSV(t, "payments.csv", csv)

	payments, err := ReadPayments(path)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Empty(t, payments[0].Memo)
	assert.Empty(t, payments[0].ReferenceNumber)
	assert.Equal(t, " ", payments[0].SearchText())
}

func TestValidateFiles(t *testing.T) {
	goodInvoices := writeTempCSV(t, "good_inv.csv", "invoice_id,currency\nINV-1,USD\n")
	badInvoices := writeTempCSV(t, "bad_inv.csv", "customer_name,currency\nAcme,USD\n")
	goodPayments := writeTempCSV(t, "good_pay.csv", "payment_id,currency\nPAY-1,USD\n")
	badPayments := writeTempCSV(t, "bad_pay.csv", "payment_id,payer_name\nPAY-1,Acme\n")

	valid, err := ValidateInvoicesFile(goodInvoices)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = ValidateInvoicesFile(badInvoices)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = ValidatePaymentsFile(goodPayments)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = ValidatePaymentsFile(badPayments)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestReadInvoices_FileNotFound(t *testing.T) {
	_, err := ReadInvoices(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestSliceCSVReader_ReadAndReadAll(t *testing.T) {
	records := [][]string{
		{"invoice_id", "currency"},
		{"INV-1", "USD"},
		{"INV-2", "EUR"},
	}

	r := &sliceCSVReader{records: records}
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, records[0], header)

	rest, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, records[1:], rest)

	rest, err = r.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestReadPayments_AllRowsDecoded(t *testing.T) {
	csv := `payment_id,payer_name,memo,reference_number,payment_amount,currency,payment_date
PAY-1,Acme,for INV-1,REF-1,100.00,USD,2024-01-02
PAY-2,Globex,,REF-2,250.50,EUR,2024-02-16
PAY-3,Initech,wire,REF-3,42.00,USD,2024-03-01
PAY-4,Hooli,,,13.37,USD,2024-04-01
`
	path := writeTempCSV(t, "payments.csv", csv)

	payments, err := ReadPayments(path)
	require.NoError(t, err)
	require.Len(t, payments, 4)
	for i, id := range []string{"PAY-1", "PAY-2", "PAY-3", "PAY-4"} {
		assert.Equal(t, id, payments[i].PaymentID)
	}
}
