package extract

import (
	"log"
	"strconv"
	"strings"
	"time"

	"telebill/internal/domain"
)

// ThreeExtractor parses Three business invoices: a summary-dense layout
// where values precede their labels, so every fence anchors on the
// trailing label with the numeric capture first. Three invoices carry no
// flat per-mobile charge table; the record's line items stay empty.
type ThreeExtractor struct{}

func (e *ThreeExtractor) Carrier() domain.Carrier { return domain.CarrierThree }

var (
	threeConnections = newFence("connection count", `(?i)(\d+)\s*[\r\n]+\s*Number of Connections`)
	threeBillNumber  = newFence("invoice number", `(?i)(\d+)\s*[\r\n]+\s*Your Bill Number`)
	threeAccount     = newFence("account number", `(?i)(\d+)\s*[\r\n]+\s*Your Account Number`)
	threeBillDate    = newFence("invoice date", `(?i)(\d+\s+[A-Za-z]+\s+\d+)\s*[\r\n]+\s*Bill Date`)

	// Recurring charges print without the currency symbol on this layout.
	threeRecurring = newFence("recurring charges", `(?i)Total monthly recurring charges\s*([\d,]+\.?\d*)`)
	threeUsage     = newFence("usage charges", `(?i)Total usage charges\s*£([\d,]+\.?\d*)`)
	threeBeforeVAT = newFence("total before VAT", `(?i)Total charges before VAT\s*£([\d,]+\.?\d*)`)

	threeVAT0  = newFence("VAT at 0%", `(?i)VAT at 0%\s*on\s*£([\d,]+\.?\d*)\s*([\d,]+\.?\d*)`)
	threeVAT20 = newFence("VAT at 20%", `(?i)VAT at 20%\s*on\s*£([\d,]+\.?\d*)\s*([\d,]+\.?\d*)`)

	// Total fallback chain: the after-VAT line, then the net-charges
	// line, then the computed net + tiers.
	threeAfterVAT   = newFence("total after VAT", `(?i)Total charges after VAT\s*£([\d,]+\.?\d*)`)
	threeNetCharges = newFence("net charges", `(?i)Net Charges for this month\s*£([\d,]+\.?\d*)`)
)

func (e *ThreeExtractor) Parse(pages []string) (*domain.InvoiceRecord, error) {
	// Labels straddle page boundaries on this layout, so pages are
	// concatenated without a separator.
	text := strings.Join(pages, "")
	rec := newRecord(domain.CarrierThree)

	if err := e.parseHeader(text, rec); err != nil {
		return nil, err
	}
	e.parseSummary(text, rec)
	e.parseVAT(text, rec)

	// This layout treats identity and total as load-bearing; refuse a
	// partial record rather than store one.
	if rec.Metadata.InvoiceNumber == "" {
		return nil, &RequiredFieldError{Carrier: domain.CarrierThree, Field: "invoice number"}
	}
	if rec.Metadata.InvoiceDate == "" {
		return nil, &RequiredFieldError{Carrier: domain.CarrierThree, Field: "invoice date"}
	}
	if rec.Metadata.TotalAmount == 0 {
		return nil, &RequiredFieldError{Carrier: domain.CarrierThree, Field: "total amount"}
	}

	return rec, nil
}

func (e *ThreeExtractor) parseHeader(text string, rec *domain.InvoiceRecord) error {
	if m, ok := threeConnections.find(text); ok {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			return &MalformedFieldError{Field: "connection count", Value: m[1], Reason: "not a plausible count"}
		}
		rec.Summary.TotalMobiles = n
	}
	if m, ok := threeBillNumber.find(text); ok {
		rec.Metadata.InvoiceNumber = m[1]
	}
	if m, ok := threeAccount.find(text); ok {
		rec.Metadata.AccountNumber = m[1]
	}

	if m, ok := threeBillDate.find(text); ok {
		if iso, ok := normalizeThreeDate(m[1]); ok {
			rec.Metadata.InvoiceDate = iso
		}
	}
	if rec.Metadata.InvoiceDate == "" {
		rec.Metadata.InvoiceDate = time.Now().Format(isoDate)
		rec.Metadata.DateDefaulted = true
		log.Printf("extract.Three: bill date not readable; defaulting to current date")
	}
	return nil
}

func (e *ThreeExtractor) parseSummary(text string, rec *domain.InvoiceRecord) {
	if m, ok := threeRecurring.find(text); ok {
		rec.Summary.RecurringCharges = amount(m[1])
	}
	if m, ok := threeUsage.find(text); ok {
		rec.Summary.UsageCharges = amount(m[1])
	}
	if m, ok := threeBeforeVAT.find(text); ok {
		rec.Summary.TotalBeforeVAT = amount(m[1])
	}
}

func (e *ThreeExtractor) parseVAT(text string, rec *domain.InvoiceRecord) {
	if m, ok := threeVAT0.find(text); ok {
		rec.Summary.VAT[0] = domain.VATTier{Base: amount(m[1]), Amount: amount(m[2])}
	}
	if m, ok := threeVAT20.find(text); ok {
		rec.Summary.VAT[20] = domain.VATTier{Base: amount(m[1]), Amount: amount(m[2])}
	}

	if m, ok := threeAfterVAT.find(text); ok {
		rec.Metadata.TotalAmount = amount(m[1])
	} else if m, ok := threeNetCharges.find(text); ok {
		rec.Metadata.TotalAmount = amount(m[1])
	}
	if rec.Metadata.TotalAmount == 0 {
		rec.Metadata.TotalAmount = rec.Summary.TotalBeforeVAT + rec.Summary.VAT.VATAmount()
	}
}
