package usecase

import (
	"context"
	"strings"

	"recipe_backend/internal/feature/recipe/domain/entity"
)

// TagRepository abstracts the persistence layer for tags.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TagRepository interface {
	// ListByUser returns the caller's tags ordered by name descending.
	// With assignedOnly set, only tags referenced by at least one recipe
	// are returned, deduplicated.
	ListByUser(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Tag, error)

	// FindByIDs returns the caller's tags matching the given ids.
	// Ids belonging to other users are simply absent from the result.
	FindByIDs(ctx context.Context, userID uint, ids []uint) ([]entity.Tag, error)

	// Create persists a new tag.
	Create(ctx context.Context, tag *entity.Tag) error
}

// TagUsecase provides owner-scoped list and create operations for tags.
type TagUsecase struct {
	tags TagRepository
}

// NewTagUsecase creates a new TagUsecase.
func NewTagUsecase(tags TagRepository) *TagUsecase {
	return &TagUsecase{tags: tags}
}

// List returns the caller's tags, restricted to assigned ones when requested.
func (u *TagUsecase) List(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Tag, error) {
	return u.tags.ListByUser(ctx, userID, assignedOnly)
}

// Create stores a new tag for the caller. The owner is always the
// authenticated user; any owner value in the request payload is ignored
// upstream of this call.
func (u *TagUsecase) Create(ctx context.Context, userID uint, name string) (*entity.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	tag := &entity.Tag{Name: name, UserID: userID}
	if err := u.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}
