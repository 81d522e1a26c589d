package services

import (
	"context"

	"github.com/anilkaliya/LifeOs/models"

	"gorm.io/gorm"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

type WorkoutInput struct {
	Name  string `json:"name" binding:"required"`
	Notes string `json:"notes"`
	Date  string `json:"date" binding:"required"`
}

func (s *WorkoutService) Create(ctx context.Context, userID uint, in WorkoutInput) (*models.Workout, error) {
	workout := models.Workout{
		UserID: userID,
		Name:   in.Name,
		Notes:  in.Notes,
		Date:   in.Date,
	}
	if err := s.db.WithContext(ctx).Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (s *WorkoutService) ListRecent(ctx context.Context, userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Workout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
