package dto

import "recipe_backend/internal/feature/recipe/domain/entity"

// IngredientReq represents the request body for creating an ingredient.
type IngredientReq struct {
	Name string `json:"name" binding:"required"`
}

// IngredientRes is the public representation of an ingredient.
type IngredientRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewIngredientRes maps an ingredient entity to its response shape.
func NewIngredientRes(i entity.Ingredient) IngredientRes {
	return IngredientRes{ID: i.ID, Name: i.Name}
}

// NewIngredientResList maps a slice of ingredient entities, always yielding a non-nil slice.
func NewIngredientResList(ingredients []entity.Ingredient) []IngredientRes {
	out := make([]IngredientRes, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, NewIngredientRes(i))
	}
	return out
}
