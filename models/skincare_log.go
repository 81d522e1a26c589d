package models

import (
    "gorm.io/gorm"
)

// SkinCareLog is the one upserted (not append-only) log type: at most one
// row per (user, date), enforced by the composite unique index.
type SkinCareLog struct {
    gorm.Model
    UserID        uint   `gorm:"uniqueIndex:idx_skincare_user_date;not null" json:"userId"`
    Date          string `gorm:"type:varchar(10);uniqueIndex:idx_skincare_user_date;not null" json:"date"`
    Detan         bool   `gorm:"not null;default:false" json:"detan"`
    Oiling        bool   `gorm:"not null;default:false" json:"oiling"`
    Sunscreen     bool   `gorm:"not null;default:false" json:"sunscreen"`
    CustomRoutine string `gorm:"type:text" json:"customRoutine"`
}
