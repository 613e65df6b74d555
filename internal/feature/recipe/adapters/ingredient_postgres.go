package adapters

import (
	"context"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// ingredientPostgres is the PostgreSQL implementation of the IngredientRepository interface.
type ingredientPostgres struct {
	db *gorm.DB
}

// Compile-time check that ingredientPostgres implements IngredientRepository.
var _ usecase.IngredientRepository = (*ingredientPostgres)(nil)

// NewIngredientPostgres creates a new ingredientPostgres backed by the given gorm.DB.
func NewIngredientPostgres(db *gorm.DB) *ingredientPostgres {
	return &ingredientPostgres{db: db}
}

// ListByUser returns the user's ingredients ordered by name descending,
// tie-broken by id. With assignedOnly set, only ingredients referenced by at
// least one recipe are returned, deduplicated.
func (r *ingredientPostgres) ListByUser(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Ingredient, error) {
	q := r.db.WithContext(ctx).Model(&entity.Ingredient{}).Where("ingredients.user_id = ?", userID)
	if assignedOnly {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Distinct("ingredients.*")
	}
	var ingredients []entity.Ingredient
	if err := q.Order("ingredients.name DESC, ingredients.id").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// FindByIDs returns the user's ingredients matching the given ids.
func (r *ingredientPostgres) FindByIDs(ctx context.Context, userID uint, ids []uint) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Create inserts an ingredient.
func (r *ingredientPostgres) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Omit("User").Create(ingredient).Error
}
