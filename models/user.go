package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    GoogleID *string `gorm:"uniqueIndex" json:"googleId,omitempty"`
    Email    string  `gorm:"uniqueIndex;not null" json:"email"`
    Password string  `json:"-"` // bcrypt hash; empty for OAuth-only accounts
    Name     string  `gorm:"not null" json:"name"`
    Picture  string  `json:"picture,omitempty"`
}
