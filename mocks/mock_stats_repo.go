package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"telebill/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) MonthlyTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}

func (m *MockStatsRepo) CostCentreTrends(ctx context.Context) ([]domain.CostCentreTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCentreTrend), args.Error(1)
}

func (m *MockStatsRepo) TopSpenders(ctx context.Context, carrier domain.Carrier, limit int) ([]domain.TopSpender, error) {
	args := m.Called(ctx, carrier, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopSpender), args.Error(1)
}

func (m *MockStatsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStatsRepo) RecentByCarrier(ctx context.Context, limit int) (map[domain.Carrier][]domain.ComparisonInvoice, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Carrier][]domain.ComparisonInvoice), args.Error(1)
}
