package port

import (
	"context"

	"telebill/internal/domain"
)

// StatsRepository runs the read-side analytics queries over stored
// invoices.
type StatsRepository interface {
	MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	CostCentreTrends(ctx context.Context) ([]domain.CostCentreTrend, error)
	TopSpenders(ctx context.Context, carrier domain.Carrier, limit int) ([]domain.TopSpender, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	// RecentByCarrier returns up to limit newest invoices per carrier,
	// shaped for the comparison report.
	RecentByCarrier(ctx context.Context, limit int) (map[domain.Carrier][]domain.ComparisonInvoice, error)
}
