// Package csvexport renders stored invoices as CSV for spreadsheet
// tooling that cannot read xlsx.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"telebill/internal/export"
	"telebill/internal/port"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row, one row per mobile line.
var columns = []string{
	"Invoice Number",
	"Account Number",
	"Carrier",
	"Invoice Date",
	"Mobile Number",
	"User",
	"Cost Centre",
	"Service Charge",
	"Usage Charge",
	"Additional Charge",
	"Total Charge",
}

// Writer wraps csv.Writer for exporting invoices as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoice writes one row per mobile line of the invoice. An invoice
// with no line detail (Three bills carry none) gets a single row with
// the line columns empty and the invoice total in the last column.
func (w *Writer) WriteInvoice(detail *port.InvoiceDetail) error {
	inv := detail.Invoice
	if len(detail.MobileLines) == 0 {
		row := make([]string, len(columns))
		row[0] = inv.InvoiceNumber
		row[1] = inv.AccountNumber
		row[2] = string(inv.Carrier)
		row[3] = inv.InvoiceDate
		row[10] = formatMoney(inv.TotalAmount)
		return w.csv.Write(row)
	}

	for i := range detail.MobileLines {
		line := &detail.MobileLines[i]
		row := []string{
			inv.InvoiceNumber,
			inv.AccountNumber,
			string(inv.Carrier),
			inv.InvoiceDate,
			line.MobileNumber,
			line.UserName,
			line.CostCentre,
			formatMoney(line.ServiceCharge),
			formatMoney(line.UsageCharge),
			formatMoney(line.AdditionalCharge),
			formatMoney(line.TotalCharge),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: invoice_{number}_{YYYY-MM-DD}.csv
func BuildFilename(invoiceNumber string) string {
	return fmt.Sprintf("invoice_%s_%s.csv",
		export.SanitizeFilename(invoiceNumber), time.Now().Format("2006-01-02"))
}
