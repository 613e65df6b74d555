package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// recipePostgres is the PostgreSQL implementation of the RecipeRepository interface.
type recipePostgres struct {
	db *gorm.DB
}

// Compile-time check that recipePostgres implements RecipeRepository.
var _ usecase.RecipeRepository = (*recipePostgres)(nil)

// NewRecipePostgres creates a new recipePostgres backed by the given gorm.DB.
func NewRecipePostgres(db *gorm.DB) *recipePostgres {
	return &recipePostgres{db: db}
}

// ListByUser returns the user's recipes newest first. Tag and ingredient
// filters narrow by id-set intersection over the join tables; a recipe
// matching through several rows appears once.
func (r *recipePostgres) ListByUser(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&entity.Recipe{}).Where("recipes.user_id = ?", userID)
	if len(filter.TagIDs) > 0 {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", filter.TagIDs)
	}
	if len(filter.IngredientIDs) > 0 {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", filter.IngredientIDs)
	}

	var recipes []entity.Recipe
	if err := q.Distinct("recipes.*").
		Preload("Tags").
		Preload("Ingredients").
		Order("recipes.id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByID returns the user's recipe with associations loaded.
// Absent and otherwise-owned recipes both yield usecase.ErrNotFound.
func (r *recipePostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ? AND id = ?", userID, id).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a recipe along with its join rows. The owner and the
// association targets are written by id only.
func (r *recipePostgres) Create(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).
		Omit("User", "Tags.User", "Ingredients.User").
		Create(recipe).Error
}

// Update saves the scalar fields and replaces both association sets in one
// transaction.
func (r *recipePostgres) Update(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).
			Select("Title", "TimeMinutes", "Price", "Link").
			Updates(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Replace(recipe.Tags); err != nil {
			return err
		}
		return tx.Model(recipe).Association("Ingredients").Replace(recipe.Ingredients)
	})
}

// UpdateImage sets the stored image path on the user's recipe.
func (r *recipePostgres) UpdateImage(ctx context.Context, userID, id uint, image string) error {
	res := r.db.WithContext(ctx).Model(&entity.Recipe{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("image", image)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete removes the user's recipe and clears its join rows.
func (r *recipePostgres) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entity.Recipe
		if err := tx.Where("user_id = ? AND id = ?", userID, id).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrNotFound
			}
			return err
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}
