package domain

// MonthlyTrend is one month of spend for one carrier, grouped from the
// stored invoices.
type MonthlyTrend struct {
	Month          string  `db:"month" json:"month"`
	Carrier        Carrier `db:"carrier" json:"carrier"`
	InvoiceCount   int     `db:"invoice_count" json:"invoice_count"`
	TotalMobiles   int     `db:"total_mobiles" json:"total_mobiles"`
	TotalBeforeVAT float64 `db:"total_before_vat" json:"total_before_vat"`
	TotalAmount    float64 `db:"total_amount" json:"total_amount"`
	AvgPerMobile   float64 `db:"avg_per_mobile" json:"avg_per_mobile"`
}

// CostCentreTrend aggregates one cost centre across all stored invoices.
type CostCentreTrend struct {
	CostCentre     string  `db:"cost_centre" json:"cost_centre"`
	MonthsActive   int     `db:"months_active" json:"months_active"`
	AvgMobiles     float64 `db:"avg_mobiles" json:"avg_mobiles"`
	AvgMonthlyCost float64 `db:"avg_monthly_cost" json:"avg_monthly_cost"`
	TotalCost      float64 `db:"total_cost" json:"total_cost"`
}

// TopSpender is one cost centre in the highest-spend ranking.
type TopSpender struct {
	CostCentre       string  `db:"cost_centre" json:"cost_centre"`
	InvoiceCount     int     `db:"invoice_count" json:"invoice_count"`
	TotalMobiles     int     `db:"total_mobiles" json:"total_mobiles"`
	TotalSpent       float64 `db:"total_spent" json:"total_spent"`
	AvgCostPerMobile float64 `db:"avg_cost_per_mobile" json:"avg_cost_per_mobile"`
}

// CarrierBreakdown summarizes the stored invoices of one carrier for the
// dashboard.
type CarrierBreakdown struct {
	Carrier       Carrier `db:"carrier" json:"carrier"`
	InvoiceCount  int     `db:"invoice_count" json:"invoice_count"`
	TotalSpent    float64 `db:"total_spent" json:"total_spent"`
	LatestMobiles int     `db:"latest_mobiles" json:"latest_mobiles"`
}

// DashboardStats is the headline view over everything stored.
type DashboardStats struct {
	TotalInvoices   int                `db:"total_invoices" json:"total_invoices"`
	TotalSpent      float64            `db:"total_spent" json:"total_spent"`
	TotalMobileRows int                `db:"total_mobile_rows" json:"total_mobile_rows"`
	EarliestInvoice string             `db:"earliest_invoice" json:"earliest_invoice"`
	LatestInvoice   string             `db:"latest_invoice" json:"latest_invoice"`
	Carriers        []CarrierBreakdown `db:"-" json:"carriers"`
}

// ComparisonInvoice is one stored invoice shaped for the carrier
// comparison: per-mobile cost precomputed, newest first per carrier.
type ComparisonInvoice struct {
	Carrier       Carrier `db:"carrier" json:"carrier"`
	InvoiceNumber string  `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   string  `db:"invoice_date" json:"invoice_date"`
	TotalMobiles  int     `db:"total_mobiles" json:"total_mobiles"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	CostPerMobile float64 `db:"cost_per_mobile" json:"cost_per_mobile"`
}

// CarrierComparison is the recent-window average for one carrier.
type CarrierComparison struct {
	Carrier          Carrier             `json:"carrier"`
	InvoicesSampled  int                 `json:"invoices_sampled"`
	AvgMonthlyTotal  float64             `json:"avg_monthly_total"`
	AvgCostPerMobile float64             `json:"avg_cost_per_mobile"`
	LatestMobiles    int                 `json:"latest_mobiles"`
	Invoices         []ComparisonInvoice `json:"invoices"`
}

// ComparisonSavings projects what moving every line to the cheaper
// carrier would save, based on the recent per-mobile averages.
type ComparisonSavings struct {
	CheaperCarrier      Carrier `json:"cheaper_carrier"`
	PerMobileDifference float64 `json:"per_mobile_difference"`
	MonthlySaving       float64 `json:"monthly_saving"`
	AnnualSaving        float64 `json:"annual_saving"`
}

// ComparisonReport is the full two-carrier comparison. Savings is nil
// until both carriers have at least one stored invoice.
type ComparisonReport struct {
	Carriers []CarrierComparison `json:"carriers"`
	Savings  *ComparisonSavings  `json:"savings,omitempty"`
}
