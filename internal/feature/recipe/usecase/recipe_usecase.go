package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"recipe_backend/internal/feature/recipe/domain/entity"
)

// RecipeFilter narrows a recipe listing. A recipe matches when its tag set
// intersects TagIDs and its ingredient set intersects IngredientIDs
// (membership, not subset). Empty id lists impose no restriction.
type RecipeFilter struct {
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeRepository abstracts the persistence layer for recipes.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RecipeRepository interface {
	// ListByUser returns the caller's recipes matching the filter, newest first.
	ListByUser(ctx context.Context, userID uint, filter RecipeFilter) ([]entity.Recipe, error)

	// FindByID returns the caller's recipe with associations loaded, or
	// ErrNotFound when it is absent or owned by someone else.
	FindByID(ctx context.Context, userID, id uint) (*entity.Recipe, error)

	// Create persists a new recipe including its association sets.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update persists scalar changes and replaces both association sets.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// UpdateImage sets the stored image path on the caller's recipe.
	UpdateImage(ctx context.Context, userID, id uint, image string) error

	// Delete removes the caller's recipe, or returns ErrNotFound.
	Delete(ctx context.Context, userID, id uint) error
}

// MediaStore abstracts collision-free storage for uploaded media files.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/storage).
type MediaStore interface {
	// Save stores the file under a generated unique name preserving the
	// extension of origName and returns the stored path.
	Save(ctx context.Context, origName string, r io.Reader) (string, error)

	// Remove deletes a previously stored file.
	Remove(ctx context.Context, path string) error
}

// RecipeInput carries the writable recipe fields for a full write.
type RecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         entity.Price
	Link          string
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeUpdate carries a partial update; nil fields are left unchanged.
type RecipeUpdate struct {
	Title         *string
	TimeMinutes   *int
	Price         *entity.Price
	Link          *string
	TagIDs        *[]uint
	IngredientIDs *[]uint
}

// RecipeUsecase implements recipe CRUD, filtering and image attachment.
type RecipeUsecase struct {
	recipes     RecipeRepository
	tags        TagRepository
	ingredients IngredientRepository
	media       MediaStore
}

// NewRecipeUsecase creates a new RecipeUsecase.
func NewRecipeUsecase(recipes RecipeRepository, tags TagRepository, ingredients IngredientRepository, media MediaStore) *RecipeUsecase {
	return &RecipeUsecase{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		media:       media,
	}
}

// List returns the caller's recipes matching the filter.
func (u *RecipeUsecase) List(ctx context.Context, userID uint, filter RecipeFilter) ([]entity.Recipe, error) {
	return u.recipes.ListByUser(ctx, userID, filter)
}

// Get returns the caller's recipe with tags and ingredients expanded.
func (u *RecipeUsecase) Get(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	return u.recipes.FindByID(ctx, userID, id)
}

// Create validates the input and stores a new recipe owned by the caller.
// Referenced tag and ingredient ids must belong to the caller.
func (u *RecipeUsecase) Create(ctx context.Context, userID uint, in RecipeInput) (*entity.Recipe, error) {
	if err := validateRecipeFields(in.Title, in.TimeMinutes, in.Price); err != nil {
		return nil, err
	}
	tags, err := u.resolveTags(ctx, userID, in.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := u.resolveIngredients(ctx, userID, in.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		UserID:      userID,
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Link:        in.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := u.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a partial or full update to the caller's recipe.
// Association sets are replaced when the corresponding id list is present.
func (u *RecipeUsecase) Update(ctx context.Context, userID, id uint, in RecipeUpdate) (*entity.Recipe, error) {
	recipe, err := u.recipes.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.TimeMinutes != nil {
		recipe.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		recipe.Price = *in.Price
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}
	if err := validateRecipeFields(recipe.Title, recipe.TimeMinutes, recipe.Price); err != nil {
		return nil, err
	}

	if in.TagIDs != nil {
		tags, err := u.resolveTags(ctx, userID, *in.TagIDs)
		if err != nil {
			return nil, err
		}
		recipe.Tags = tags
	}
	if in.IngredientIDs != nil {
		ingredients, err := u.resolveIngredients(ctx, userID, *in.IngredientIDs)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = ingredients
	}

	if err := u.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes the caller's recipe.
func (u *RecipeUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.recipes.Delete(ctx, userID, id)
}

// AttachImage stores the uploaded file and binds it to the caller's recipe.
// Either the file is persisted and the record updated, or neither happens:
// the stored file is removed when the record update fails.
func (u *RecipeUsecase) AttachImage(ctx context.Context, userID, id uint, filename string, file io.Reader) (*entity.Recipe, error) {
	if file == nil {
		return nil, ErrImageRequired
	}
	recipe, err := u.recipes.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	path, err := u.media.Save(ctx, filename, file)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := u.recipes.UpdateImage(ctx, userID, id, path); err != nil {
		// Best effort: the orphaned file must not stay referenced or kept.
		_ = u.media.Remove(ctx, path)
		return nil, err
	}

	recipe.Image = path
	return recipe, nil
}

// validateRecipeFields checks the scalar constraints shared by create and update.
func validateRecipeFields(title string, timeMinutes int, price entity.Price) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if timeMinutes <= 0 {
		return ErrInvalidDuration
	}
	return price.Validate()
}

// resolveTags maps tag ids onto the caller's tags, rejecting ids that do not
// exist for this user. Duplicated request ids collapse to a single match.
func (u *RecipeUsecase) resolveTags(ctx context.Context, userID uint, ids []uint) ([]entity.Tag, error) {
	if len(ids) == 0 {
		return []entity.Tag{}, nil
	}
	tags, err := u.tags.FindByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

func (u *RecipeUsecase) resolveIngredients(ctx context.Context, userID uint, ids []uint) ([]entity.Ingredient, error) {
	if len(ids) == 0 {
		return []entity.Ingredient{}, nil
	}
	ingredients, err := u.ingredients.FindByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(uniqueIDs(ids)) {
		return nil, ErrIngredientNotFound
	}
	return ingredients, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
