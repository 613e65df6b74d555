// Package adapters provides the repository implementations for the recipe feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// tagPostgres is the PostgreSQL implementation of the TagRepository interface.
type tagPostgres struct {
	db *gorm.DB
}

// Compile-time check that tagPostgres implements TagRepository.
var _ usecase.TagRepository = (*tagPostgres)(nil)

// NewTagPostgres creates a new tagPostgres backed by the given gorm.DB.
func NewTagPostgres(db *gorm.DB) *tagPostgres {
	return &tagPostgres{db: db}
}

// ListByUser returns the user's tags ordered by name descending, tie-broken
// by id so equal names keep insertion order. With assignedOnly set, only
// tags referenced by at least one recipe are returned; the join is
// deduplicated so a tag used by several recipes appears once.
func (r *tagPostgres) ListByUser(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Tag, error) {
	q := r.db.WithContext(ctx).Model(&entity.Tag{}).Where("tags.user_id = ?", userID)
	if assignedOnly {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").Distinct("tags.*")
	}
	var tags []entity.Tag
	if err := q.Order("tags.name DESC, tags.id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByIDs returns the user's tags matching the given ids. Ids owned by
// other users are absent from the result rather than an error.
func (r *tagPostgres) FindByIDs(ctx context.Context, userID uint, ids []uint) ([]entity.Tag, error) {
	var tags []entity.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a tag. The owner association is written through UserID
// only, never by upserting the user row.
func (r *tagPostgres) Create(ctx context.Context, tag *entity.Tag) error {
	return r.db.WithContext(ctx).Omit("User").Create(tag).Error
}
