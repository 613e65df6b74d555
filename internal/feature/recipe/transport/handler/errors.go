package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// writeUsecaseError maps recipe usecase errors onto HTTP responses.
// Validation failures are 400, missing or otherwise-owned records are 404,
// anything else is logged and returned as 500.
func writeUsecaseError(c *gin.Context, err error, logMsg string, userID uint) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrNotFound.Error()})
	case errors.Is(err, usecase.ErrNameRequired),
		errors.Is(err, usecase.ErrTitleRequired),
		errors.Is(err, usecase.ErrInvalidDuration),
		errors.Is(err, usecase.ErrTagNotFound),
		errors.Is(err, usecase.ErrIngredientNotFound),
		errors.Is(err, usecase.ErrImageRequired),
		errors.Is(err, entity.ErrPriceNegative),
		errors.Is(err, entity.ErrPricePrecision):
		slog.Warn(logMsg, "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(logMsg, "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
