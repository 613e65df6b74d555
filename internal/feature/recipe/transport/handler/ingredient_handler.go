package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/transport/http/dto"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// IngredientUsecase defines the ingredient operations the handler depends on.
type IngredientUsecase interface {
	List(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Ingredient, error)
	Create(ctx context.Context, userID uint, name string) (*entity.Ingredient, error)
}

// IngredientHandler handles HTTP requests for the caller's ingredients.
type IngredientHandler struct {
	ingredients IngredientUsecase
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(ingredients IngredientUsecase) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// List handles GET /recipe/ingredients with the optional assigned_only flag.
func (h *IngredientHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	assignedOnly, err := parseBoolFlag(c.Query("assigned_only"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "assigned_only must be a boolean flag"})
		return
	}

	ingredients, err := h.ingredients.List(c.Request.Context(), userID, assignedOnly)
	if err != nil {
		slog.Error("ingredient list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewIngredientResList(ingredients))
}

// Create handles POST /recipe/ingredients.
func (h *IngredientHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.IngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("ingredient create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		writeUsecaseError(c, err, "ingredient create failed", userID)
		return
	}
	c.JSON(http.StatusCreated, dto.NewIngredientRes(*ingredient))
}
