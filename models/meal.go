package models

import (
    "gorm.io/gorm"
)

// One logged meal. Macro fields are optional; date is calendar-day
// granularity, an ISO "2006-01-02" string.
type Meal struct {
    gorm.Model
    UserID      uint     `gorm:"index;not null" json:"userId"`
    MealName    string   `gorm:"not null" json:"mealName"`
    Description string   `gorm:"type:text" json:"description"`
    Calories    int      `gorm:"not null;default:0" json:"calories"`
    Protein     *float64 `json:"protein,omitempty"`
    Carbs       *float64 `json:"carbs,omitempty"`
    Fat         *float64 `json:"fat,omitempty"`
    Date        string   `gorm:"type:varchar(10);index;not null" json:"date"`
}
