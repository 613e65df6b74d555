package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/feature/user/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 5
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator abstracts bearer token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// UserUsecase implements account management and token issuance.
type UserUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(users UserRepository, tokens TokenGenerator) *UserUsecase {
	return &UserUsecase{users: users, tokens: tokens}
}

// NormalizeEmail lowercases and trims an email address.
// Email uniqueness is case-insensitive, so every write and lookup goes
// through this transform.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePassword checks the password against the minimum length requirement.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Create registers a new user with a hashed password and normalized email.
func (u *UserUsecase) Create(ctx context.Context, email, name, password string) (*entity.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
		IsActive: true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSuperuser registers a new user and elevates the staff and superuser flags.
func (u *UserUsecase) CreateSuperuser(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.Create(ctx, email, "", password)
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Profile retrieves the account for the given user ID.
func (u *UserUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's account.
// Only non-nil fields are changed; a new password is re-hashed before persisting.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uint, name, password *string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IssueToken authenticates a user and returns a signed bearer token on success.
// A bcrypt comparison runs even when the user does not exist so the timing of
// the response does not reveal whether the email is registered.
func (u *UserUsecase) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the failure path too.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	active := false
	if err == nil {
		passwordHash = user.Password
		active = user.IsActive
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil || !active {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}
