package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"

	"telebill/internal/domain"
	"telebill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const insertInvoiceQuery = `INSERT INTO invoices
	(invoice_number, account_number, carrier, invoice_date, payment_due_date,
	 total_mobiles, total_before_vat, total_vat, total_amount,
	 ecs_extra_advisor, unallocated_mobiles, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id`

const insertMobileLineQuery = `INSERT INTO mobile_lines
	(invoice_id, mobile_number, user_name, cost_centre,
	 service_charge, usage_charge, additional_charge, total_charge)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const insertCostCentreQuery = `INSERT INTO cost_centres
	(invoice_id, cost_centre, mobile_count,
	 total_service, total_usage, total_additional, total_amount)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *invoiceRepo) Create(ctx context.Context, rec *domain.InvoiceRecord, replace bool) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.GetContext(ctx, &existingID,
		"SELECT id FROM invoices WHERE invoice_number = $1", rec.Metadata.InvoiceNumber)
	switch {
	case err == nil:
		if !replace {
			return 0, domain.ErrDuplicateInvoice
		}
		for _, q := range []string{
			"DELETE FROM mobile_lines WHERE invoice_id = $1",
			"DELETE FROM cost_centres WHERE invoice_id = $1",
			"DELETE FROM invoices WHERE id = $1",
		} {
			if _, err := tx.ExecContext(ctx, q, existingID); err != nil {
				return 0, fmt.Errorf("invoiceRepo.Create replace: %w", err)
			}
		}
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("invoiceRepo.Create lookup: %w", err)
	}

	// The extractors reconcile the total; recompute only when the record
	// arrived without one.
	total := rec.Metadata.TotalAmount
	if total == 0 {
		total = rec.Summary.TotalBeforeVAT + rec.Summary.VAT.VATAmount()
	}

	var id int64
	err = tx.QueryRowxContext(ctx, insertInvoiceQuery,
		rec.Metadata.InvoiceNumber, rec.Metadata.AccountNumber, rec.Metadata.Carrier,
		rec.Metadata.InvoiceDate, rec.Metadata.PaymentDueDate,
		rec.Summary.TotalMobiles, rec.Summary.TotalBeforeVAT, rec.Summary.VAT.VATAmount(), total,
		rec.Summary.ECSExtraAdvisor, rec.Summary.UnallocatedMobiles, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.Create invoice: %w", err)
	}

	for _, line := range rec.Mobiles {
		if _, err := tx.ExecContext(ctx, insertMobileLineQuery,
			id, line.MobileNumber, line.UserName, line.CostCentre,
			line.ServiceCharge, line.UsageCharge, line.AdditionalCharge, line.TotalCharge); err != nil {
			return 0, fmt.Errorf("invoiceRepo.Create mobile line: %w", err)
		}
	}

	codes := make([]string, 0, len(rec.CostCentres))
	for code := range rec.CostCentres {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		cc := rec.CostCentres[code]
		if _, err := tx.ExecContext(ctx, insertCostCentreQuery,
			id, cc.Code, cc.MobileCount,
			cc.TotalService, cc.TotalUsage, cc.TotalAdditional, cc.TotalAmount); err != nil {
			return 0, fmt.Errorf("invoiceRepo.Create cost centre: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return id, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id int64) (*port.InvoiceDetail, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return r.loadDetail(ctx, inv)
}

func (r *invoiceRepo) GetByNumber(ctx context.Context, invoiceNumber string) (*port.InvoiceDetail, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE invoice_number = $1", invoiceNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByNumber: %w", err)
	}
	return r.loadDetail(ctx, inv)
}

func (r *invoiceRepo) loadDetail(ctx context.Context, inv domain.Invoice) (*port.InvoiceDetail, error) {
	detail := &port.InvoiceDetail{Invoice: inv}

	err := r.db.SelectContext(ctx, &detail.MobileLines,
		"SELECT * FROM mobile_lines WHERE invoice_id = $1 ORDER BY id", inv.ID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.loadDetail mobile lines: %w", err)
	}

	err = r.db.SelectContext(ctx, &detail.CostCentres,
		"SELECT * FROM cost_centres WHERE invoice_id = $1 ORDER BY cost_centre", inv.ID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.loadDetail cost centres: %w", err)
	}
	return detail, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY invoice_date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM mobile_lines WHERE invoice_id = $1",
		"DELETE FROM cost_centres WHERE invoice_id = $1",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("invoiceRepo.Delete children: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Delete commit: %w", err)
	}
	return nil
}
