package handler

import (
	"github.com/gin-gonic/gin"

	"telebill/internal/service"
)

// StatsHandler handles analytics endpoints over stored invoices.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// MonthlyTrends handles GET /api/v1/analytics/monthly-trends
// @Summary Monthly spend per carrier
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "One row per month per carrier"
// @Router /analytics/monthly-trends [get]
func (h *StatsHandler) MonthlyTrends(c *gin.Context) {
	trends, err := h.statsService.MonthlyTrends(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, trends)
}

// CostCentreTrends handles GET /api/v1/analytics/cost-centres
// @Summary Cost-centre spend aggregated across invoices
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "One row per cost centre, highest spend first"
// @Router /analytics/cost-centres [get]
func (h *StatsHandler) CostCentreTrends(c *gin.Context) {
	trends, err := h.statsService.CostCentreTrends(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, trends)
}

// TopSpenders handles GET /api/v1/analytics/top-spenders
// @Summary Highest-spending cost centres
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "Top cost centres by total spend"
// @Router /analytics/top-spenders [get]
func (h *StatsHandler) TopSpenders(c *gin.Context) {
	spenders, err := h.statsService.TopSpenders(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, spenders)
}

// Comparison handles GET /api/v1/analytics/carrier-comparison
// @Summary Compare recent per-mobile costs across carriers
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "Recent averages per carrier plus projected savings"
// @Router /analytics/carrier-comparison [get]
func (h *StatsHandler) Comparison(c *gin.Context) {
	report, err := h.statsService.CarrierComparison(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Dashboard handles GET /api/v1/stats
// @Summary Headline stats over everything stored
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "Dashboard stats"
// @Router /stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
