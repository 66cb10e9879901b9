package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/analytics"
	"budgetly/internal/services"
)

// DashboardHandler serves the dashboard summary.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns totals, per-category groups and the latest transactions.
// @Summary     Dashboard summary
// @Description Totals and category groups honour the optional date range; recent transactions never do
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       endDate   query string false "Inclusive end date (YYYY-MM-DD)"
// @Success     200 {object} analytics.DashboardSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q DateRangeQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID, analytics.NewDateRange(q.bounds()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
