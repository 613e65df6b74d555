// Package entity defines the domain entities for the recipe feature.
package entity

import (
	userentity "recipe_backend/internal/feature/user/domain/entity"
)

// Tag is a named label owned by exactly one user.
// Cross-user access is filtered out at the repository layer; deleting the
// owning user removes their tags through the database cascade.
type Tag struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:255;not null"`
	UserID uint   `gorm:"index;not null"`

	User userentity.User `gorm:"constraint:OnDelete:CASCADE"`
}
