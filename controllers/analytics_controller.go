// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/anilkaliya/LifeOs/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GetAnalytics serves GET /api/analytics?startDate=&endDate=&search=.
// A malformed or inverted range is rejected with 400 before any data
// access; this endpoint never silently returns empty data for bad input.
func (h *AnalyticsController) GetAnalytics(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be on/after startDate"})
		return
	}

	out, err := h.Svc.Overview(c.Request.Context(), userID, services.RangeQuery{
		Start:  startStr,
		End:    endStr,
		Search: c.Query("search"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, out)
}
