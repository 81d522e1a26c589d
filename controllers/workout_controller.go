package controllers

import (
	"net/http"

	"github.com/anilkaliya/LifeOs/config"
	"github.com/anilkaliya/LifeOs/services"

	"github.com/gin-gonic/gin"
)

func LogWorkout(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body services.WorkoutInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDay(body.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	svc := services.NewWorkoutService(config.DB)
	workout, err := svc.Create(c.Request.Context(), userID, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func ListWorkouts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	svc := services.NewWorkoutService(config.DB)
	workouts, err := svc.ListRecent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func DeleteWorkout(c *gin.Context) {
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

	svc := services.NewWorkoutService(config.DB)
	if err := svc.Delete(c.Request.Context(), userID, id); err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}
	c.Status(http.StatusNoContent)
}
