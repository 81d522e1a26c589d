package models

import (
    "gorm.io/gorm"
)

type Workout struct {
    gorm.Model
    UserID uint   `gorm:"index;not null" json:"userId"`
    Name   string `gorm:"not null" json:"name"`
    Notes  string `gorm:"type:text" json:"notes"`
    Date   string `gorm:"type:varchar(10);index;not null" json:"date"`
}
