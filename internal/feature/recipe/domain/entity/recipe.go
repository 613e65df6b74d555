package entity

import (
	"time"

	userentity "recipe_backend/internal/feature/user/domain/entity"
)

// Recipe is a user-owned recipe with unordered, duplicate-free sets of
// tags and ingredients. The image field holds the stored media path and
// stays empty until an upload attaches one.
type Recipe struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"size:255;not null"`
	TimeMinutes int    `gorm:"not null"`
	Price       Price  `gorm:"type:decimal(5,2);not null"`
	Link        string `gorm:"size:255"`
	Image       string `gorm:"size:255"`

	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE"`

	User userentity.User `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagIDs returns the ids of the associated tags, for the list read shape.
func (r *Recipe) TagIDs() []uint {
	ids := make([]uint, 0, len(r.Tags))
	for _, t := range r.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// IngredientIDs returns the ids of the associated ingredients.
func (r *Recipe) IngredientIDs() []uint {
	ids := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ids = append(ids, i.ID)
	}
	return ids
}
