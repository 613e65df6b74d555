package entity

import (
	userentity "recipe_backend/internal/feature/user/domain/entity"
)

// Ingredient is a named component owned by exactly one user.
// It has the same shape as Tag but lives in its own table.
type Ingredient struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:255;not null"`
	UserID uint   `gorm:"index;not null"`

	User userentity.User `gorm:"constraint:OnDelete:CASCADE"`
}
