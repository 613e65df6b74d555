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

// TagUsecase defines the tag operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TagUsecase interface {
	List(ctx context.Context, userID uint, assignedOnly bool) ([]entity.Tag, error)
	Create(ctx context.Context, userID uint, name string) (*entity.Tag, error)
}

// TagHandler handles HTTP requests for the caller's tags.
type TagHandler struct {
	tags TagUsecase
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tags TagUsecase) *TagHandler {
	return &TagHandler{tags: tags}
}

// List handles GET /recipe/tags.
// The optional assigned_only flag restricts the result to tags referenced by
// at least one recipe.
func (h *TagHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	assignedOnly, err := parseBoolFlag(c.Query("assigned_only"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "assigned_only must be a boolean flag"})
		return
	}

	tags, err := h.tags.List(c.Request.Context(), userID, assignedOnly)
	if err != nil {
		slog.Error("tag list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewTagResList(tags))
}

// Create handles POST /recipe/tags. The owner is always the authenticated
// caller, regardless of the payload.
func (h *TagHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("tag create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		writeUsecaseError(c, err, "tag create failed", userID)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTagRes(*tag))
}
