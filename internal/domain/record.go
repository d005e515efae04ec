package domain

// InvoiceRecord is the structured output of parsing one invoice document.
// A fresh record is built per parse call and handed to storage; the
// extractor holds no reference to it afterward.
type InvoiceRecord struct {
	Metadata    InvoiceMetadata        `json:"metadata"`
	Summary     InvoiceSummary         `json:"summary"`
	Mobiles     []MobileLine           `json:"mobiles"`
	CostCentres map[string]*CostCentre `json:"cost_centres"`
}

// InvoiceMetadata holds the header fields of a parsed invoice.
type InvoiceMetadata struct {
	Carrier       Carrier `json:"carrier"`
	AccountNumber string  `json:"account_number,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	// InvoiceDate is ISO YYYY-MM-DD, or the raw document text when
	// normalization failed.
	InvoiceDate string `json:"invoice_date,omitempty"`
	// DateDefaulted marks an invoice date that fell back to the current
	// date because no date fence matched. Downstream consumers should
	// treat such dates as unreliable.
	DateDefaulted  bool    `json:"invoice_date_defaulted,omitempty"`
	PaymentDueDate string  `json:"payment_due_date,omitempty"`
	TotalAmount    float64 `json:"total_amount"`
}

// VATTier is one VAT rate bracket's taxable base and tax amount.
type VATTier struct {
	Base   float64 `json:"base"`
	Amount float64 `json:"amount"`
}

// VATTiers maps a VAT rate percentage (0, 20) to its tier figures.
type VATTiers map[int]VATTier

// VATAmount returns the summed tax amount across all tiers.
func (t VATTiers) VATAmount() float64 {
	var sum float64
	for _, tier := range t {
		sum += tier.Amount
	}
	return sum
}

// InvoiceSummary holds the billing summary of a parsed invoice.
// Surcharge and per-category fields are carrier-specific and stay zero
// when the document does not carry them.
type InvoiceSummary struct {
	TotalMobiles   int      `json:"total_mobiles"`
	TotalBeforeVAT float64  `json:"total_before_vat"`
	VAT            VATTiers `json:"vat"`

	// Vodafone surcharges
	ECSExtraAdvisor    float64 `json:"ecs_extra_advisor,omitempty"`
	UnallocatedMobiles float64 `json:"unallocated_mobiles,omitempty"`

	// Three charge categories
	RecurringCharges float64 `json:"recurring_charges,omitempty"`
	UsageCharges     float64 `json:"usage_charges,omitempty"`
}
