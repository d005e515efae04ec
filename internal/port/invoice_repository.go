package port

import (
	"context"

	"telebill/internal/domain"
)

// InvoiceDetail is a stored invoice with its dependent rows.
type InvoiceDetail struct {
	Invoice     domain.Invoice     `json:"invoice"`
	MobileLines []domain.MobileLine `json:"mobile_lines"`
	CostCentres []domain.CostCentre `json:"cost_centres"`
}

// InvoiceRepository persists extracted invoice records and their
// dependent mobile-line and cost-centre rows.
type InvoiceRepository interface {
	// Create stores a record transactionally. A record whose invoice
	// number already exists fails with domain.ErrDuplicateInvoice unless
	// replace is set, in which case the stored invoice and its dependent
	// rows are deleted first.
	Create(ctx context.Context, rec *domain.InvoiceRecord, replace bool) (int64, error)
	GetByID(ctx context.Context, id int64) (*InvoiceDetail, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (*InvoiceDetail, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Delete(ctx context.Context, id int64) error
}
