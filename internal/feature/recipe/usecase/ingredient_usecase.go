package usecase

import (
	"context"
	"strings"

	"recipe_backend/internal/feature/recipe/domain/entity"
)

// IngredientRepository abstracts the persistence layer for ingredients.
// Same contract as TagRepository over the independent ingredients table.
type IngredientRepository interface {
	ListByUser(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Ingredient, error)
	FindByIDs(ctx context.Context, userID uint, ids []uint) ([]entity.Ingredient, error)
	Create(ctx context.Context, ingredient *entity.Ingredient) error
}

// IngredientUsecase provides owner-scoped list and create operations for ingredients.
type IngredientUsecase struct {
	ingredients IngredientRepository
}

// NewIngredientUsecase creates a new IngredientUsecase.
func NewIngredientUsecase(ingredients IngredientRepository) *IngredientUsecase {
	return &IngredientUsecase{ingredients: ingredients}
}

// List returns the caller's ingredients, restricted to ones referenced by
// at least one recipe when assignedOnly is set.
func (u *IngredientUsecase) List(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Ingredient, error) {
	return u.ingredients.ListByUser(ctx, userID, assignedOnly)
}

// Create stores a new ingredient for the caller.
func (u *IngredientUsecase) Create(ctx context.Context, userID uint, name string) (*entity.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	ingredient := &entity.Ingredient{Name: name, UserID: userID}
	if err := u.ingredients.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}
