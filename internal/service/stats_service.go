package service

import (
	"context"
	"math"

	"telebill/internal/domain"
	"telebill/internal/port"
)

// comparisonWindow is how many recent invoices per carrier feed the
// cross-carrier averages.
const comparisonWindow = 4

// topSpenderLimit caps the highest-spend cost-centre ranking.
const topSpenderLimit = 10

// StatsService defines the analytics contract over stored invoices.
type StatsService interface {
	MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	CostCentreTrends(ctx context.Context) ([]domain.CostCentreTrend, error)
	TopSpenders(ctx context.Context) ([]domain.TopSpender, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	CarrierComparison(ctx context.Context) (*domain.ComparisonReport, error)
}

type statsService struct {
	repo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(repo port.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	return s.repo.MonthlyTrends(ctx)
}

func (s *statsService) CostCentreTrends(ctx context.Context) ([]domain.CostCentreTrend, error) {
	return s.repo.CostCentreTrends(ctx)
}

// TopSpenders ranks cost centres by spend. Only Vodafone invoices carry
// cost-centre rows, so the ranking is scoped to that carrier.
func (s *statsService) TopSpenders(ctx context.Context) ([]domain.TopSpender, error) {
	return s.repo.TopSpenders(ctx, domain.CarrierVodafone, topSpenderLimit)
}

func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.Dashboard(ctx)
}

// CarrierComparison averages each carrier's most recent invoices and,
// when both carriers have data, projects what moving every line to the
// cheaper one would save.
func (s *statsService) CarrierComparison(ctx context.Context) (*domain.ComparisonReport, error) {
	recent, err := s.repo.RecentByCarrier(ctx, comparisonWindow)
	if err != nil {
		return nil, err
	}

	report := &domain.ComparisonReport{}
	byCarrier := map[domain.Carrier]*domain.CarrierComparison{}

	for _, carrier := range []domain.Carrier{domain.CarrierVodafone, domain.CarrierThree} {
		rows := recent[carrier]
		if len(rows) == 0 {
			continue
		}
		cmp := summarizeCarrier(carrier, rows)
		report.Carriers = append(report.Carriers, cmp)
		byCarrier[carrier] = &cmp
	}

	voda, three := byCarrier[domain.CarrierVodafone], byCarrier[domain.CarrierThree]
	if voda != nil && three != nil {
		report.Savings = projectSavings(voda, three)
	}
	return report, nil
}

func summarizeCarrier(carrier domain.Carrier, rows []domain.ComparisonInvoice) domain.CarrierComparison {
	var totalSum, perMobileSum float64
	perMobileSamples := 0
	for _, row := range rows {
		totalSum += row.TotalAmount
		if row.TotalMobiles > 0 {
			perMobileSum += row.CostPerMobile
			perMobileSamples++
		}
	}

	cmp := domain.CarrierComparison{
		Carrier:         carrier,
		InvoicesSampled: len(rows),
		AvgMonthlyTotal: totalSum / float64(len(rows)),
		LatestMobiles:   rows[0].TotalMobiles,
		Invoices:        rows,
	}
	if perMobileSamples > 0 {
		cmp.AvgCostPerMobile = perMobileSum / float64(perMobileSamples)
	}
	return cmp
}

// projectSavings assumes the dearer carrier's current lines move to the
// cheaper carrier's recent per-mobile rate.
func projectSavings(voda, three *domain.CarrierComparison) *domain.ComparisonSavings {
	diff := math.Abs(voda.AvgCostPerMobile - three.AvgCostPerMobile)

	cheaper, dearer := voda, three
	if three.AvgCostPerMobile < voda.AvgCostPerMobile {
		cheaper, dearer = three, voda
	}

	monthly := diff * float64(dearer.LatestMobiles)
	return &domain.ComparisonSavings{
		CheaperCarrier:      cheaper.Carrier,
		PerMobileDifference: diff,
		MonthlySaving:       monthly,
		AnnualSaving:        monthly * 12,
	}
}
