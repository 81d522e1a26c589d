package controllers

import (
	"net/http"

	"github.com/anilkaliya/LifeOs/config"
	"github.com/anilkaliya/LifeOs/services"

	"github.com/gin-gonic/gin"
)

func LogLearningSession(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body services.LearningInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDay(body.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	svc := services.NewLearningService(config.DB)
	session, err := svc.Create(c.Request.Context(), userID, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create learning session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func ListLearningSessions(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	svc := services.NewLearningService(config.DB)
	sessions, err := svc.ListRecent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch learning sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func DeleteLearningSession(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.NewLearningService(config.DB)
	if err := svc.Delete(c.Request.Context(), userID, id); err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete learning session"})
		return
	}
	c.Status(http.StatusNoContent)
}
