package dto

import "recipe_backend/internal/feature/recipe/domain/entity"

// CreateRecipeReq represents the request body for creating a recipe and for
// a full PUT replace. Tag and ingredient ids must reference the caller's
// own records.
type CreateRecipeReq struct {
	Title         string        `json:"title" binding:"required"`
	TimeMinutes   int           `json:"time_minutes" binding:"required"`
	Price         *entity.Price `json:"price" binding:"required"`
	Link          string        `json:"link"`
	TagIDs        []uint        `json:"tags"`
	IngredientIDs []uint        `json:"ingredients"`
}

// UpdateRecipeReq represents the request body for PATCH; nil fields are left
// unchanged and a present id list replaces the whole association set.
type UpdateRecipeReq struct {
	Title         *string       `json:"title"`
	TimeMinutes   *int          `json:"time_minutes"`
	Price         *entity.Price `json:"price"`
	Link          *string       `json:"link"`
	TagIDs        *[]uint       `json:"tags"`
	IngredientIDs *[]uint       `json:"ingredients"`
}

// RecipeRes is the list representation of a recipe: associations as ids only.
type RecipeRes struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	TimeMinutes int          `json:"time_minutes"`
	Price       entity.Price `json:"price"`
	Link        string       `json:"link"`
	Image       string       `json:"image"`
	TagIDs      []uint       `json:"tags"`
	Ingredients []uint       `json:"ingredients"`
}

// RecipeDetailRes is the detail representation: associations fully expanded.
type RecipeDetailRes struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       entity.Price    `json:"price"`
	Link        string          `json:"link"`
	Image       string          `json:"image"`
	Tags        []TagRes        `json:"tags"`
	Ingredients []IngredientRes `json:"ingredients"`
}

// NewRecipeRes maps a recipe entity to the list shape.
func NewRecipeRes(r entity.Recipe) RecipeRes {
	return RecipeRes{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       r.Image,
		TagIDs:      r.TagIDs(),
		Ingredients: r.IngredientIDs(),
	}
}

// NewRecipeResList maps a slice of recipe entities, always yielding a non-nil slice.
func NewRecipeResList(recipes []entity.Recipe) []RecipeRes {
	out := make([]RecipeRes, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeRes(r))
	}
	return out
}

// NewRecipeDetailRes maps a recipe entity to the detail shape.
func NewRecipeDetailRes(r entity.Recipe) RecipeDetailRes {
	return RecipeDetailRes{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       r.Image,
		Tags:        NewTagResList(r.Tags),
		Ingredients: NewIngredientResList(r.Ingredients),
	}
}
