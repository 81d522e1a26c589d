package services

import (
	"context"

	"github.com/anilkaliya/LifeOs/models"

	"gorm.io/gorm"
)

type SkinCareService struct{ db *gorm.DB }

func NewSkinCareService(db *gorm.DB) *SkinCareService { return &SkinCareService{db: db} }

// SkinCarePatch is a partial update: nil pointer fields were absent from
// the request and must leave the stored value untouched.
type SkinCarePatch struct {
	Date          string  `json:"date" binding:"required"`
	Detan         *bool   `json:"detan"`
	Oiling        *bool   `json:"oiling"`
	Sunscreen     *bool   `json:"sunscreen"`
	CustomRoutine *string `json:"customRoutine"`
}

// Upsert finds the row for (user, date), creating it with all flags false
// and empty text when absent, applies only the fields present in the patch,
// and saves. Runs inside a transaction; the (user_id, date) unique index
// backstops concurrent writers, otherwise last write wins.
func (s *SkinCareService) Upsert(ctx context.Context, userID uint, patch SkinCarePatch) (*models.SkinCareLog, error) {
	row := models.SkinCareLog{UserID: userID, Date: patch.Date}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND date = ?", userID, patch.Date).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
		applyPatch(&row, patch)
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ForDate returns the user's row for a day, or gorm.ErrRecordNotFound.
func (s *SkinCareService) ForDate(ctx context.Context, userID uint, date string) (*models.SkinCareLog, error) {
	var row models.SkinCareLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func applyPatch(row *models.SkinCareLog, p SkinCarePatch) {
	if p.Detan != nil {
		row.Detan = *p.Detan
	}
	if p.Oiling != nil {
		row.Oiling = *p.Oiling
	}
	if p.Sunscreen != nil {
		row.Sunscreen = *p.Sunscreen
	}
	if p.CustomRoutine != nil {
		row.CustomRoutine = *p.CustomRoutine
	}
}
