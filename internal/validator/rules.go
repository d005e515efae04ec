package validator

import (
	"fmt"
	"math"
	"time"

	"telebill/internal/domain"
)

// moneyTolerance absorbs the rounding the carriers apply to printed figures.
const moneyTolerance = 0.01

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// vatReconciliationRule checks that net plus VAT equals the invoice
// total. Skipped when the document carried no totals block.
type vatReconciliationRule struct{}

func (vatReconciliationRule) Name() string { return "vat_reconciliation" }

func (vatReconciliationRule) Check(rec *domain.InvoiceRecord) []Result {
	if rec.Summary.TotalBeforeVAT == 0 {
		return nil
	}

	expected := rec.Summary.TotalBeforeVAT + rec.Summary.VAT.VATAmount()
	actual := rec.Metadata.TotalAmount
	res := Result{
		FieldPath:     "metadata.total_amount",
		Passed:        math.Abs(expected-actual) <= moneyTolerance,
		ExpectedValue: money(expected),
		ActualValue:   money(actual),
	}
	if !res.Passed {
		res.Message = "net plus VAT does not match the invoice total"
	}
	return []Result{res}
}

// lineTotalsRule checks that each mobile line's charges sum to its
// stated total.
type lineTotalsRule struct{}

func (lineTotalsRule) Name() string { return "line_totals" }

func (lineTotalsRule) Check(rec *domain.InvoiceRecord) []Result {
	var results []Result
	for i := range rec.Mobiles {
		line := &rec.Mobiles[i]
		expected := line.ServiceCharge + line.UsageCharge + line.AdditionalCharge
		res := Result{
			FieldPath:     fmt.Sprintf("mobiles[%d].total_charge", i),
			Passed:        math.Abs(expected-line.TotalCharge) <= moneyTolerance,
			ExpectedValue: money(expected),
			ActualValue:   money(line.TotalCharge),
		}
		if !res.Passed {
			res.Message = fmt.Sprintf("charges for %s do not sum to the line total", line.MobileNumber)
		}
		results = append(results, res)
	}
	return results
}

// costCentreCountsRule checks each cost centre's mobile count against
// the lines billed under it. Stated subtotals replace summed charge
// figures but never the row count, so the count must always agree.
type costCentreCountsRule struct{}

func (costCentreCountsRule) Name() string { return "cost_centre_counts" }

func (costCentreCountsRule) Check(rec *domain.InvoiceRecord) []Result {
	if len(rec.CostCentres) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for i := range rec.Mobiles {
		counts[rec.Mobiles[i].CostCentre]++
	}

	var results []Result
	for code, cc := range rec.CostCentres {
		res := Result{
			FieldPath:     fmt.Sprintf("cost_centres[%s].mobile_count", code),
			Passed:        cc.MobileCount == counts[code],
			ExpectedValue: fmt.Sprintf("%d", counts[code]),
			ActualValue:   fmt.Sprintf("%d", cc.MobileCount),
		}
		if !res.Passed {
			res.Message = "cost centre count disagrees with its billed lines"
		}
		results = append(results, res)
	}
	return results
}

// invoiceDateRule flags dates that failed to normalize or were
// defaulted to the import date.
type invoiceDateRule struct{}

func (invoiceDateRule) Name() string { return "invoice_date" }

func (invoiceDateRule) Check(rec *domain.InvoiceRecord) []Result {
	res := Result{
		FieldPath:   "metadata.invoice_date",
		Passed:      true,
		ActualValue: rec.Metadata.InvoiceDate,
	}

	switch {
	case rec.Metadata.DateDefaulted:
		res.Passed = false
		res.Message = "invoice date was unreadable and defaulted to the import date"
	case rec.Metadata.InvoiceDate == "":
		res.Passed = false
		res.Message = "invoice date missing"
	default:
		if _, err := time.Parse("2006-01-02", rec.Metadata.InvoiceDate); err != nil {
			res.Passed = false
			res.Message = "invoice date kept as raw document text"
		}
	}
	return []Result{res}
}
