package domain

import "time"

// Invoice is the stored header row for one imported invoice.
// Dates are ISO YYYY-MM-DD strings; the extractor preserves the raw
// document text when a date fails to normalize, so the column stays text.
type Invoice struct {
	ID                 int64   `db:"id" json:"id"`
	InvoiceNumber      string  `db:"invoice_number" json:"invoice_number"`
	AccountNumber      string  `db:"account_number" json:"account_number"`
	Carrier            Carrier `db:"carrier" json:"carrier"`
	InvoiceDate        string  `db:"invoice_date" json:"invoice_date"`
	PaymentDueDate     string  `db:"payment_due_date" json:"payment_due_date"`
	TotalMobiles       int     `db:"total_mobiles" json:"total_mobiles"`
	TotalBeforeVAT     float64 `db:"total_before_vat" json:"total_before_vat"`
	TotalVAT           float64 `db:"total_vat" json:"total_vat"`
	TotalAmount        float64 `db:"total_amount" json:"total_amount"`
	ECSExtraAdvisor    float64 `db:"ecs_extra_advisor" json:"ecs_extra_advisor"`
	UnallocatedMobiles float64 `db:"unallocated_mobiles" json:"unallocated_mobiles"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MobileLine is one billed mobile subscription's charges for the period.
// The extractor fills everything except ID and InvoiceID; the repository
// assigns those on insert. Additional and total charges may be negative
// when the document carries a credit marker.
type MobileLine struct {
	ID               int64   `db:"id" json:"id,omitempty"`
	InvoiceID        int64   `db:"invoice_id" json:"invoice_id,omitempty"`
	MobileNumber     string  `db:"mobile_number" json:"mobile_number"`
	UserName         string  `db:"user_name" json:"user_name,omitempty"`
	CostCentre       string  `db:"cost_centre" json:"cost_centre,omitempty"`
	ServiceCharge    float64 `db:"service_charge" json:"service_charge"`
	UsageCharge      float64 `db:"usage_charge" json:"usage_charge"`
	AdditionalCharge float64 `db:"additional_charge" json:"additional_charge"`
	TotalCharge      float64 `db:"total_charge" json:"total_charge"`
}

// CostCentre aggregates the mobile lines billed under one cost-centre code.
// When the document prints its own subtotal line for the block, those stated
// figures replace the incrementally summed ones.
type CostCentre struct {
	ID              int64   `db:"id" json:"id,omitempty"`
	InvoiceID       int64   `db:"invoice_id" json:"invoice_id,omitempty"`
	Code            string  `db:"cost_centre" json:"cost_centre"`
	MobileCount     int     `db:"mobile_count" json:"mobile_count"`
	TotalService    float64 `db:"total_service" json:"total_service"`
	TotalUsage      float64 `db:"total_usage" json:"total_usage"`
	TotalAdditional float64 `db:"total_additional" json:"total_additional"`
	TotalAmount     float64 `db:"total_amount" json:"total_amount"`
}
