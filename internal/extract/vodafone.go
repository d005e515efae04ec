package extract

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"telebill/internal/domain"
)

// VodafoneExtractor parses Vodafone business invoices: a metadata-dense,
// line-item-heavy layout where every value follows its label. PDF text
// extraction drops spacing unpredictably, so the patterns allow optional
// whitespace between tokens.
type VodafoneExtractor struct{}

func (e *VodafoneExtractor) Carrier() domain.Carrier { return domain.CarrierVodafone }

var (
	// The header prints the three labels on one row and the three values
	// on the next. The fallback matches the bare value shapes when the
	// labels did not survive text extraction.
	vodafoneHeaderTight = newFence("invoice header",
		`(?i)Accountnumber\s*Invoicenumber\s*Date\s*(\d+\s*/\s*\d+)\s*(\d+)\s*(\d+\s*[A-Za-z]+\s*\d+)`)
	vodafoneHeaderLoose = newFence("invoice header",
		`(\d{9})\s*/\s*(\d{5})\s+(\d+)\s+(\d+[A-Za-z]+\d+)`)

	vodafoneStatedTotal = newFence("stated total", `Total\s+£([\d,]+\.?\d*)`)
	vodafoneDueDate     = newFence("payment due date", `(?i)please\s*pay\s*by\s+(\d+\s+[A-Za-z]+\s+\d+)`)

	vodafoneMobileCount = newFence("mobile count", `(?i)For\s*(\d+)\s*mobiles`)
	vodafoneECSCharge   = newFence("ECS extra advisor charge", `(?i)ECS.*?EXTRA.*?ADVISOR\s+£([\d,]+\.?\d*)`)
	vodafoneUnallocated = newFence("unallocated mobiles charge", `(?i)Unallocated\s*mobiles\s+£([\d,]+\.?\d*)`)

	vodafoneBeforeVAT = newFence("total before VAT", `(?i)Total\s*before\s*VAT\s*£\s*([\d,]+\.?\d*)`)
	vodafoneVAT20     = newFence("VAT at 20%", `(?i)VAT\s*at\s*20%\s*(?:on\s*)?£\s*([\d,]+\.?\d*)\s*£\s*([\d,]+\.?\d*)`)
	vodafoneVAT0      = newFence("VAT at 0%", `(?i)VAT\s*at\s*0%\s*(?:on\s*)?£\s*([\d,]+\.?\d*)\s*£\s*([\d,]+\.?\d*)`)

	// Per-mobile charge row: number split 5+6, then service, usage,
	// additional, and line total columns. A "cr" marker before the last
	// two columns flips the figure to a credit.
	vodafoneMobileRow    = regexp.MustCompile(`(\d{5}\s+\d{6})\s+£([\d,]+\.?\d*)\s+£([\d,]+\.?\d*)\s+(cr)?£([\d,]+\.?\d*)\s+(cr)?£([\d,]+\.?\d*)`)
	vodafoneCostCentreID = regexp.MustCompile(`^([A-Z0-9]+)`)
	vodafoneUserRef      = regexp.MustCompile(`REF:\s*([A-Z\s]+?)\s*on`)
	vodafoneUserTitle    = regexp.MustCompile(`(MR|MRS|DR|MS)\s*([A-Z\s]+?)\s*on`)
)

func (e *VodafoneExtractor) Parse(pages []string) (*domain.InvoiceRecord, error) {
	text := strings.Join(pages, "\n")
	rec := newRecord(domain.CarrierVodafone)

	e.parseMetadata(text, rec)
	if err := e.parseQuickSummary(text, rec); err != nil {
		return nil, err
	}
	e.parseCostCentres(text, rec)
	e.parseVATSummary(text, rec)

	return rec, nil
}

// parseMetadata fills account number, invoice number, dates, and the
// stated top-of-document total. All of these are tolerated missing:
// several multi-invoice statements omit the header on continuation
// documents, and the totals block downstream still reconciles.
func (e *VodafoneExtractor) parseMetadata(text string, rec *domain.InvoiceRecord) {
	if m, ok := vodafoneHeaderTight.find(text); ok {
		rec.Metadata.AccountNumber = stripSpaces(m[1])
		rec.Metadata.InvoiceNumber = m[2]
		rec.Metadata.InvoiceDate, _ = normalizeVodafoneDate(m[3])
	} else if m, ok := vodafoneHeaderLoose.find(text); ok {
		rec.Metadata.AccountNumber = m[1] + "/" + m[2]
		rec.Metadata.InvoiceNumber = m[3]
		rec.Metadata.InvoiceDate, _ = normalizeVodafoneDate(m[4])
	} else {
		log.Printf("extract.Vodafone: invoice header not found")
	}

	if m, ok := vodafoneStatedTotal.find(text); ok {
		rec.Metadata.TotalAmount = amount(m[1])
	}
	if m, ok := vodafoneDueDate.find(text); ok {
		rec.Metadata.PaymentDueDate, _ = normalizeVodafoneDate(m[1])
	}
}

// parseQuickSummary reads the "For N mobiles" count and the two
// account-level surcharges from the first-page summary box. The
// surcharges are optional and stay zero when absent.
func (e *VodafoneExtractor) parseQuickSummary(text string, rec *domain.InvoiceRecord) error {
	if m, ok := vodafoneMobileCount.find(text); ok {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			return &MalformedFieldError{Field: "mobile count", Value: m[1], Reason: "not a plausible count"}
		}
		rec.Summary.TotalMobiles = n
	}
	if m, ok := vodafoneECSCharge.find(text); ok {
		rec.Summary.ECSExtraAdvisor = amount(m[1])
	}
	if m, ok := vodafoneUnallocated.find(text); ok {
		rec.Summary.UnallocatedMobiles = amount(m[1])
	}
	return nil
}

// parseCostCentres splits the document on the "Cost centre " headings
// and walks each section for per-mobile charge rows. Aggregates are
// summed from the rows first, then replaced by the document's own
// "Total for cost centre" figures when that line is present, because
// the stated subtotal also covers adjustment rows the mobile-row
// pattern cannot see.
func (e *VodafoneExtractor) parseCostCentres(text string, rec *domain.InvoiceRecord) {
	sections := strings.Split(text, "Cost centre ")
	for _, section := range sections[1:] {
		idMatch := vodafoneCostCentreID.FindStringSubmatch(section)
		if idMatch == nil {
			continue
		}
		code := idMatch[1]

		cc := rec.CostCentres[code]
		if cc == nil {
			cc = &domain.CostCentre{Code: code}
			rec.CostCentres[code] = cc
		}

		for _, idx := range vodafoneMobileRow.FindAllStringSubmatchIndex(section, -1) {
			line := domain.MobileLine{
				MobileNumber:     stripSpaces(group(section, idx, 1)),
				UserName:         findUserName(section, idx[0], idx[1]),
				CostCentre:       code,
				ServiceCharge:    amount(group(section, idx, 2)),
				UsageCharge:      amount(group(section, idx, 3)),
				AdditionalCharge: signedAmount(group(section, idx, 4), group(section, idx, 5)),
				TotalCharge:      signedAmount(group(section, idx, 6), group(section, idx, 7)),
			}
			rec.Mobiles = append(rec.Mobiles, line)

			cc.MobileCount++
			cc.TotalService += line.ServiceCharge
			cc.TotalUsage += line.UsageCharge
			cc.TotalAdditional += line.AdditionalCharge
			cc.TotalAmount += line.TotalCharge
		}

		e.applyStatedSubtotal(section, cc)
	}
}

// applyStatedSubtotal overwrites the summed aggregates with the
// document's own cost-centre subtotal line when present.
func (e *VodafoneExtractor) applyStatedSubtotal(section string, cc *domain.CostCentre) {
	re := regexp.MustCompile(
		`Total for cost centre ` + regexp.QuoteMeta(cc.Code) +
			`\s+before VAT\s+£([\d,]+\.?\d*)\s*£([\d,]+\.?\d*)\s*(cr)?£([\d,]+\.?\d*)\s*(cr)?£([\d,]+\.?\d*)`)
	m := re.FindStringSubmatch(section)
	if m == nil {
		return
	}
	cc.TotalService = amount(m[1])
	cc.TotalUsage = amount(m[2])
	cc.TotalAdditional = signedAmount(m[3], m[4])
	cc.TotalAmount = signedAmount(m[5], m[6])
}

// findUserName searches a window around a mobile row for the subscriber
// name, preferring the explicit "REF: NAME on" form over a title match.
// The window reaches 100 chars back and 200 forward because the name
// line can land on either side of the charge row in extracted text.
func findUserName(section string, start, end int) string {
	lo := start - 100
	if lo < 0 {
		lo = 0
	}
	hi := end + 200
	if hi > len(section) {
		hi = len(section)
	}
	window := section[lo:hi]

	if m := vodafoneUserRef.FindStringSubmatch(window); m != nil {
		return collapseSpaces(m[1])
	}
	if m := vodafoneUserTitle.FindStringSubmatch(window); m != nil {
		return collapseSpaces(m[1] + " " + m[2])
	}
	return ""
}

// parseVATSummary reads the totals block and reconciles the invoice
// total. Some statements print only a VAT-inclusive figure with no tier
// breakdown; in that case the net and the 20% tier are recovered from
// the gross so the total = net + VAT identity still holds.
func (e *VodafoneExtractor) parseVATSummary(text string, rec *domain.InvoiceRecord) {
	if m, ok := vodafoneBeforeVAT.find(text); ok {
		rec.Summary.TotalBeforeVAT = amount(m[1])
	}
	if m, ok := vodafoneVAT20.find(text); ok {
		rec.Summary.VAT[20] = domain.VATTier{Base: amount(m[1]), Amount: amount(m[2])}
	}
	if m, ok := vodafoneVAT0.find(text); ok {
		rec.Summary.VAT[0] = domain.VATTier{Base: amount(m[1]), Amount: amount(m[2])}
	}

	beforeVAT := rec.Summary.TotalBeforeVAT
	vat := rec.Summary.VAT.VATAmount()

	switch {
	case vat == 0 && beforeVAT > 0:
		net := beforeVAT / 1.2
		recovered := beforeVAT - net
		rec.Summary.TotalBeforeVAT = net
		rec.Summary.VAT[20] = domain.VATTier{Base: net, Amount: recovered}
		rec.Metadata.TotalAmount = beforeVAT
		log.Printf("extract.Vodafone: no VAT tier matched; treating %.2f as gross (net %.2f, VAT %.2f)",
			beforeVAT, net, recovered)
	case beforeVAT > 0 || vat > 0:
		rec.Metadata.TotalAmount = beforeVAT + vat
	default:
		// Totals block missing entirely; keep the stated header total.
	}
}

// group extracts one submatch from a FindAllStringSubmatchIndex entry,
// returning "" for unmatched optional groups.
func group(s string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return s[idx[2*n]:idx[2*n+1]]
}
