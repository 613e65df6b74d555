package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/transport/http/dto"
	"recipe_backend/internal/feature/recipe/usecase"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// RecipeUsecase defines the recipe operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RecipeUsecase interface {
	List(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error)
	Get(ctx context.Context, userID, id uint) (*entity.Recipe, error)
	Create(ctx context.Context, userID uint, in usecase.RecipeInput) (*entity.Recipe, error)
	Update(ctx context.Context, userID, id uint, in usecase.RecipeUpdate) (*entity.Recipe, error)
	Delete(ctx context.Context, userID, id uint) error
	AttachImage(ctx context.Context, userID, id uint, filename string, file io.Reader) (*entity.Recipe, error)
}

// RecipeHandler handles HTTP requests for the caller's recipes.
type RecipeHandler struct {
	recipes RecipeUsecase
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// List handles GET /recipe/recipes.
// The tags and ingredients query parameters are comma-separated id lists;
// a recipe matches when its association set intersects the given ids.
func (h *RecipeHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	tagIDs, err := parseIDList(c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "tags " + err.Error()})
		return
	}
	ingredientIDs, err := parseIDList(c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ingredients " + err.Error()})
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), userID, usecase.RecipeFilter{
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	})
	if err != nil {
		slog.Error("recipe list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResList(recipes))
}

// Get handles GET /recipe/recipes/:id, returning the detail shape with tags
// and ingredients expanded.
func (h *RecipeHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeUsecaseError(c, err, "recipe get failed", userID)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeDetailRes(*recipe))
}

// Create handles POST /recipe/recipes. The owner is always the caller.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("recipe create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, usecase.RecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         *req.Price,
		Link:          req.Link,
		TagIDs:        req.TagIDs,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		writeUsecaseError(c, err, "recipe create failed", userID)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRecipeDetailRes(*recipe))
}

// Put handles PUT /recipe/recipes/:id as a full replace.
func (h *RecipeHandler) Put(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("recipe update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	// A full replace resets optional fields and both association sets.
	tagIDs := req.TagIDs
	if tagIDs == nil {
		tagIDs = []uint{}
	}
	ingredientIDs := req.IngredientIDs
	if ingredientIDs == nil {
		ingredientIDs = []uint{}
	}
	recipe, err := h.recipes.Update(c.Request.Context(), userID, id, usecase.RecipeUpdate{
		Title:         &req.Title,
		TimeMinutes:   &req.TimeMinutes,
		Price:         req.Price,
		Link:          &req.Link,
		TagIDs:        &tagIDs,
		IngredientIDs: &ingredientIDs,
	})
	if err != nil {
		writeUsecaseError(c, err, "recipe update failed", userID)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeDetailRes(*recipe))
}

// Patch handles PATCH /recipe/recipes/:id, merging only the provided fields.
func (h *RecipeHandler) Patch(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("recipe patch validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), userID, id, usecase.RecipeUpdate{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.TagIDs,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		writeUsecaseError(c, err, "recipe patch failed", userID)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeDetailRes(*recipe))
}

// Delete handles DELETE /recipe/recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), userID, id); err != nil {
		writeUsecaseError(c, err, "recipe delete failed", userID)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /recipe/recipes/:id/upload-image.
// The file arrives as the multipart form field "image".
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := h.recipeID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		slog.Warn("image upload without file", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrImageRequired.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrImageRequired.Error()})
		return
	}
	defer func() { _ = file.Close() }()

	recipe, err := h.recipes.AttachImage(c.Request.Context(), userID, id, fileHeader.Filename, file)
	if err != nil {
		writeUsecaseError(c, err, "image upload failed", userID)
		return
	}
	slog.Info("recipe image attached", "user_id", userID, "recipe_id", id, "image", recipe.Image)
	c.JSON(http.StatusOK, dto.NewRecipeDetailRes(*recipe))
}

// recipeID parses the :id path parameter, responding 400 when it is not a
// positive integer.
func (h *RecipeHandler) recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
