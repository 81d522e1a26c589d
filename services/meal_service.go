package services

import (
	"context"

	"github.com/anilkaliya/LifeOs/models"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

type MealInput struct {
	MealName    string   `json:"mealName" binding:"required"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Date        string   `json:"date" binding:"required"`
}

func (s *MealService) Create(ctx context.Context, userID uint, in MealInput) (*models.Meal, error) {
	meal := models.Meal{
		UserID:      userID,
		MealName:    in.MealName,
		Description: in.Description,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		Date:        in.Date,
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListRecent returns the user's latest 20 meals, newest first.
func (s *MealService) ListRecent(ctx context.Context, userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
