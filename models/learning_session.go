package models

import (
    "gorm.io/gorm"
)

type LearningSession struct {
    gorm.Model
    UserID          uint   `gorm:"index;not null" json:"userId"`
    Topic           string `gorm:"not null" json:"topic"`
    DurationMinutes int    `gorm:"not null;default:0" json:"durationMinutes"`
    Date            string `gorm:"type:varchar(10);index;not null" json:"date"`
}
