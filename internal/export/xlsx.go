// Package export renders stored invoices as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"telebill/internal/port"
)

const (
	summarySheet     = "Summary"
	mobileLinesSheet = "Mobile Lines"
	costCentresSheet = "Cost Centres"
)

// WriteWorkbook renders one stored invoice as an Excel workbook with
// Summary, Mobile Lines, and Cost Centres sheets.
func WriteWorkbook(w io.Writer, detail *port.InvoiceDetail) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("export: renaming sheet: %w", err)
	}

	inv := detail.Invoice
	summaryRows := [][]interface{}{
		{"Invoice Number", inv.InvoiceNumber},
		{"Account Number", inv.AccountNumber},
		{"Carrier", string(inv.Carrier)},
		{"Invoice Date", inv.InvoiceDate},
		{"Payment Due Date", inv.PaymentDueDate},
		{"Total Mobiles", inv.TotalMobiles},
		{"Total Before VAT", inv.TotalBeforeVAT},
		{"Total VAT", inv.TotalVAT},
		{"Total Amount", inv.TotalAmount},
		{"ECS Extra Advisor", inv.ECSExtraAdvisor},
		{"Unallocated Mobiles", inv.UnallocatedMobiles},
	}
	if err := writeRows(f, summarySheet, 1, summaryRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(mobileLinesSheet); err != nil {
		return fmt.Errorf("export: adding sheet: %w", err)
	}
	lineRows := [][]interface{}{
		{"Mobile Number", "User", "Cost Centre", "Service", "Usage", "Additional", "Total"},
	}
	for _, line := range detail.MobileLines {
		lineRows = append(lineRows, []interface{}{
			line.MobileNumber, line.UserName, line.CostCentre,
			line.ServiceCharge, line.UsageCharge, line.AdditionalCharge, line.TotalCharge,
		})
	}
	if err := writeRows(f, mobileLinesSheet, 1, lineRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(costCentresSheet); err != nil {
		return fmt.Errorf("export: adding sheet: %w", err)
	}
	ccRows := [][]interface{}{
		{"Cost Centre", "Mobiles", "Service", "Usage", "Additional", "Total"},
	}
	for _, cc := range detail.CostCentres {
		ccRows = append(ccRows, []interface{}{
			cc.Code, cc.MobileCount,
			cc.TotalService, cc.TotalUsage, cc.TotalAdditional, cc.TotalAmount,
		})
	}
	if err := writeRows(f, costCentresSheet, 1, ccRows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("export: writing row: %w", err)
		}
	}
	return nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an invoice number for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// WorkbookFilename returns a sanitized filename for the exported
// workbook. Format: invoice_{number}_{YYYY-MM-DD}.xlsx
func WorkbookFilename(invoiceNumber string) string {
	return fmt.Sprintf("invoice_%s_%s.xlsx",
		SanitizeFilename(invoiceNumber), time.Now().Format("2006-01-02"))
}
