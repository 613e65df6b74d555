// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/feature/user/domain/entity"
	"recipe_backend/internal/feature/user/transport/http/dto"
	"recipe_backend/internal/feature/user/usecase"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// UserUsecase defines the account operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// Create registers a new user with a hashed password.
	Create(ctx context.Context, email, name, password string) (*entity.User, error)
	// IssueToken authenticates a user and returns a bearer token on success.
	IssueToken(ctx context.Context, email, password string) (string, error)
	// Profile retrieves the account for the given user ID.
	Profile(ctx context.Context, userID uint) (*entity.User, error)
	// UpdateProfile applies a partial update to the caller's account.
	UpdateProfile(ctx context.Context, userID uint, name, password *string) (*entity.User, error)
}

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /user/create.
// - binds the request JSON to CreateUserReq
// - returns 400 on validation failure or duplicate email
// - returns 201 with the public user representation on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.users.Create(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) ||
			errors.Is(err, usecase.ErrEmailRequired) ||
			errors.Is(err, usecase.ErrPasswordTooShort) {
			slog.Warn("user create rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("user create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	slog.Info("user created", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserRes{Email: user.Email, Name: user.Name})
}

// Token handles POST /user/token.
// Authentication failures return 400 with a uniform message so the response
// does not reveal whether the email is registered.
func (h *UserHandler) Token(c *gin.Context) {
	var req dto.TokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("token request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	token, err := h.users.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("token issuance failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrInvalidCredentials.Error()})
		return
	}
	slog.Info("token issued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Me handles GET /user/me for the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{Email: user.Email, Name: user.Name})
}

// UpdateMe handles PATCH /user/me.
// Only the fields present in the body are changed.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	var req dto.UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrPasswordTooShort) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{Email: user.Email, Name: user.Name})
}
