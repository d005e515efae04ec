package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"telebill/internal/domain"
	"telebill/internal/service"
	"telebill/mocks"
)

func TestCarrierComparison_BothCarriers(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	recent := map[domain.Carrier][]domain.ComparisonInvoice{
		domain.CarrierVodafone: {
			{Carrier: domain.CarrierVodafone, InvoiceNumber: "670255301", TotalMobiles: 40, TotalAmount: 480, CostPerMobile: 12},
			{Carrier: domain.CarrierVodafone, InvoiceNumber: "670255300", TotalMobiles: 40, TotalAmount: 400, CostPerMobile: 10},
		},
		domain.CarrierThree: {
			{Carrier: domain.CarrierThree, InvoiceNumber: "100234567", TotalMobiles: 30, TotalAmount: 240, CostPerMobile: 8},
		},
	}
	repo.On("RecentByCarrier", mock.Anything, 4).Return(recent, nil)

	report, err := svc.CarrierComparison(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Carriers, 2)
	voda := report.Carriers[0]
	assert.Equal(t, domain.CarrierVodafone, voda.Carrier)
	assert.Equal(t, 2, voda.InvoicesSampled)
	assert.InDelta(t, 440, voda.AvgMonthlyTotal, 0.001)
	assert.InDelta(t, 11, voda.AvgCostPerMobile, 0.001)
	assert.Equal(t, 40, voda.LatestMobiles)

	// Three is cheaper per mobile (8 vs 11), so the projection moves
	// Vodafone's 40 current lines across.
	require.NotNil(t, report.Savings)
	assert.Equal(t, domain.CarrierThree, report.Savings.CheaperCarrier)
	assert.InDelta(t, 3, report.Savings.PerMobileDifference, 0.001)
	assert.InDelta(t, 120, report.Savings.MonthlySaving, 0.001)
	assert.InDelta(t, 1440, report.Savings.AnnualSaving, 0.001)
}

func TestCarrierComparison_SingleCarrierNoSavings(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	recent := map[domain.Carrier][]domain.ComparisonInvoice{
		domain.CarrierThree: {
			{Carrier: domain.CarrierThree, InvoiceNumber: "100234567", TotalMobiles: 30, TotalAmount: 240, CostPerMobile: 8},
		},
	}
	repo.On("RecentByCarrier", mock.Anything, 4).Return(recent, nil)

	report, err := svc.CarrierComparison(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Carriers, 1)
	assert.Equal(t, domain.CarrierThree, report.Carriers[0].Carrier)
	assert.Nil(t, report.Savings)
}

func TestCarrierComparison_SkipsZeroMobileInvoicesInPerMobileAverage(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	recent := map[domain.Carrier][]domain.ComparisonInvoice{
		domain.CarrierVodafone: {
			{Carrier: domain.CarrierVodafone, TotalMobiles: 0, TotalAmount: 100},
			{Carrier: domain.CarrierVodafone, TotalMobiles: 10, TotalAmount: 100, CostPerMobile: 10},
		},
	}
	repo.On("RecentByCarrier", mock.Anything, 4).Return(recent, nil)

	report, err := svc.CarrierComparison(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Carriers, 1)
	assert.InDelta(t, 10, report.Carriers[0].AvgCostPerMobile, 0.001)
}

func TestCarrierComparison_RepoErrorPropagates(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	repo.On("RecentByCarrier", mock.Anything, 4).Return(nil, assert.AnError)

	_, err := svc.CarrierComparison(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTopSpenders_ScopedToVodafone(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	spenders := []domain.TopSpender{{CostCentre: "ABC123", TotalSpent: 1000}}
	repo.On("TopSpenders", mock.Anything, domain.CarrierVodafone, 10).Return(spenders, nil)

	got, err := svc.TopSpenders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, spenders, got)
	repo.AssertExpectations(t)
}

func TestMonthlyTrends_Passthrough(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	trends := []domain.MonthlyTrend{{Month: "2025-12", Carrier: domain.CarrierVodafone, TotalAmount: 126}}
	repo.On("MonthlyTrends", mock.Anything).Return(trends, nil)

	got, err := svc.MonthlyTrends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trends, got)
}
