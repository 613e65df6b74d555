package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipe/domain/entity"
	userentity "recipe_backend/internal/feature/user/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&userentity.User{}, &entity.Tag{}, &entity.Ingredient{}, &entity.Recipe{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedUser inserts a user row and returns its id.
func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	user := &userentity.User{Email: email, Password: "hashed_password", IsActive: true}
	require.NoError(t, db.Create(user).Error, "failed to seed user")
	return user.ID
}

// seedTag inserts a tag owned by the given user.
func seedTag(t *testing.T, db *gorm.DB, userID uint, name string) entity.Tag {
	t.Helper()

	tag := entity.Tag{Name: name, UserID: userID}
	require.NoError(t, db.Omit("User").Create(&tag).Error, "failed to seed tag")
	return tag
}

// seedIngredient inserts an ingredient owned by the given user.
func seedIngredient(t *testing.T, db *gorm.DB, userID uint, name string) entity.Ingredient {
	t.Helper()

	ingredient := entity.Ingredient{Name: name, UserID: userID}
	require.NoError(t, db.Omit("User").Create(&ingredient).Error, "failed to seed ingredient")
	return ingredient
}

// seedRecipe inserts a recipe with the given associations already attached.
func seedRecipe(t *testing.T, db *gorm.DB, userID uint, title string, tags []entity.Tag, ingredients []entity.Ingredient) entity.Recipe {
	t.Helper()

	price, err := entity.NewPrice("5.00")
	require.NoError(t, err)

	recipe := entity.Recipe{
		UserID:      userID,
		Title:       title,
		TimeMinutes: 10,
		Price:       price,
		Tags:        tags,
		Ingredients: ingredients,
	}
	err = db.Omit("User", "Tags.User", "Ingredients.User").Create(&recipe).Error
	require.NoError(t, err, "failed to seed recipe")
	return recipe
}

// testCtx keeps call sites short.
func testCtx() context.Context {
	return context.Background()
}
