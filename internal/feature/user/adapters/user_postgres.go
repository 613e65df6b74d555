// Package adapters provides the repository implementations for the user feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"recipe_backend/internal/feature/user/domain/entity"
	"recipe_backend/internal/feature/user/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// userPostgres is the PostgreSQL implementation of the UserRepository interface.
// It uses GORM for database access.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres backed by the given gorm.DB.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts a user into the database.
// If a user with the same email already exists, it returns usecase.ErrEmailAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return usecase.ErrEmailAlreadyExists
		}
		// The SQLite driver used in tests reports duplicates through gorm's
		// translated error instead of a pg error code.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound when no user matches.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound when no user matches.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update persists all fields of an existing user.
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
