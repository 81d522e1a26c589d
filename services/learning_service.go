package services

import (
	"context"

	"github.com/anilkaliya/LifeOs/models"

	"gorm.io/gorm"
)

type LearningService struct{ db *gorm.DB }

func NewLearningService(db *gorm.DB) *LearningService { return &LearningService{db: db} }

type LearningInput struct {
	Topic           string `json:"topic" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date" binding:"required"`
}

func (s *LearningService) Create(ctx context.Context, userID uint, in LearningInput) (*models.LearningSession, error) {
	session := models.LearningSession{
		UserID:          userID,
		Topic:           in.Topic,
		DurationMinutes: in.DurationMinutes,
		Date:            in.Date,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *LearningService) ListRecent(ctx context.Context, userID uint) ([]models.LearningSession, error) {
	var sessions []models.LearningSession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&sessions).Error
	return sessions, err
}

func (s *LearningService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.LearningSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
