package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"telebill/internal/domain"
	"telebill/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// Invoice dates are stored as ISO YYYY-MM-DD text, so the month key is a
// plain prefix.
const monthlyTrendsQuery = `SELECT
	left(invoice_date, 7) AS month,
	carrier,
	COUNT(*) AS invoice_count,
	COALESCE(SUM(total_mobiles), 0) AS total_mobiles,
	COALESCE(SUM(total_before_vat), 0) AS total_before_vat,
	COALESCE(SUM(total_amount), 0) AS total_amount,
	COALESCE(AVG(total_amount / NULLIF(total_mobiles, 0)), 0) AS avg_per_mobile
FROM invoices
GROUP BY month, carrier
ORDER BY month, carrier`

func (r *statsRepo) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	var trends []domain.MonthlyTrend
	if err := r.db.SelectContext(ctx, &trends, monthlyTrendsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.MonthlyTrends: %w", err)
	}
	return trends, nil
}

const costCentreTrendsQuery = `SELECT
	cc.cost_centre,
	COUNT(DISTINCT left(i.invoice_date, 7)) AS months_active,
	COALESCE(AVG(cc.mobile_count), 0) AS avg_mobiles,
	COALESCE(AVG(cc.total_amount), 0) AS avg_monthly_cost,
	COALESCE(SUM(cc.total_amount), 0) AS total_cost
FROM cost_centres cc
INNER JOIN invoices i ON i.id = cc.invoice_id
GROUP BY cc.cost_centre
ORDER BY total_cost DESC`

func (r *statsRepo) CostCentreTrends(ctx context.Context) ([]domain.CostCentreTrend, error) {
	var trends []domain.CostCentreTrend
	if err := r.db.SelectContext(ctx, &trends, costCentreTrendsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.CostCentreTrends: %w", err)
	}
	return trends, nil
}

const topSpendersQuery = `SELECT
	cc.cost_centre,
	COUNT(*) AS invoice_count,
	COALESCE(SUM(cc.mobile_count), 0) AS total_mobiles,
	COALESCE(SUM(cc.total_amount), 0) AS total_spent,
	COALESCE(SUM(cc.total_amount) / NULLIF(SUM(cc.mobile_count), 0), 0) AS avg_cost_per_mobile
FROM cost_centres cc
INNER JOIN invoices i ON i.id = cc.invoice_id
WHERE i.carrier = $1
GROUP BY cc.cost_centre
ORDER BY total_spent DESC
LIMIT $2`

func (r *statsRepo) TopSpenders(ctx context.Context, carrier domain.Carrier, limit int) ([]domain.TopSpender, error) {
	var spenders []domain.TopSpender
	if err := r.db.SelectContext(ctx, &spenders, topSpendersQuery, carrier, limit); err != nil {
		return nil, fmt.Errorf("statsRepo.TopSpenders: %w", err)
	}
	return spenders, nil
}

const dashboardQuery = `SELECT
	COUNT(*) AS total_invoices,
	COALESCE(SUM(total_amount), 0) AS total_spent,
	COALESCE(MIN(invoice_date), '') AS earliest_invoice,
	COALESCE(MAX(invoice_date), '') AS latest_invoice
FROM invoices`

const carrierBreakdownQuery = `SELECT
	i.carrier,
	COUNT(*) AS invoice_count,
	COALESCE(SUM(i.total_amount), 0) AS total_spent,
	COALESCE((SELECT i2.total_mobiles FROM invoices i2
		WHERE i2.carrier = i.carrier
		ORDER BY i2.invoice_date DESC, i2.id DESC LIMIT 1), 0) AS latest_mobiles
FROM invoices i
GROUP BY i.carrier
ORDER BY i.carrier`

func (r *statsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, dashboardQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.Dashboard: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.TotalMobileRows,
		"SELECT COUNT(*) FROM mobile_lines"); err != nil {
		return nil, fmt.Errorf("statsRepo.Dashboard mobile rows: %w", err)
	}

	if err := r.db.SelectContext(ctx, &stats.Carriers, carrierBreakdownQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.Dashboard carriers: %w", err)
	}
	return &stats, nil
}

const recentByCarrierQuery = `SELECT
	carrier, invoice_number, invoice_date, total_mobiles, total_amount,
	COALESCE(total_amount / NULLIF(total_mobiles, 0), 0) AS cost_per_mobile
FROM (
	SELECT *, ROW_NUMBER() OVER (
		PARTITION BY carrier ORDER BY invoice_date DESC, id DESC) AS rn
	FROM invoices
) ranked
WHERE rn <= $1
ORDER BY carrier, invoice_date DESC`

func (r *statsRepo) RecentByCarrier(ctx context.Context, limit int) (map[domain.Carrier][]domain.ComparisonInvoice, error) {
	var rows []domain.ComparisonInvoice
	if err := r.db.SelectContext(ctx, &rows, recentByCarrierQuery, limit); err != nil {
		return nil, fmt.Errorf("statsRepo.RecentByCarrier: %w", err)
	}

	byCarrier := make(map[domain.Carrier][]domain.ComparisonInvoice, 2)
	for _, row := range rows {
		byCarrier[row.Carrier] = append(byCarrier[row.Carrier], row)
	}
	return byCarrier, nil
}
