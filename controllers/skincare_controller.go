package controllers

import (
	"errors"
	"net/http"

	"github.com/anilkaliya/LifeOs/config"
	"github.com/anilkaliya/LifeOs/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSkinCareLog returns the day's row, or a zero-value shape when the day
// was never logged so the client can render unchecked toggles.
func GetSkinCareLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date := c.Param("date")
	if !validDay(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	svc := services.NewSkinCareService(config.DB)
	row, err := svc.ForDate(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"date":      date,
				"detan":     false,
				"oiling":    false,
				"sunscreen": false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skincare log"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// UpsertSkinCareLog applies a partial update to the single row for
// (user, date), creating it first if needed. Fields absent from the body
// stay as they were.
func UpsertSkinCareLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var patch services.SkinCarePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDay(patch.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	svc := services.NewSkinCareService(config.DB)
	row, err := svc.Upsert(c.Request.Context(), userID, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skincare log"})
		return
	}
	c.JSON(http.StatusOK, row)
}
