// Package router builds the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	apphandler "recipe_backend/internal/app/handler"
	recipehandler "recipe_backend/internal/feature/recipe/transport/handler"
	userhandler "recipe_backend/internal/feature/user/transport/handler"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// NewRouter wires every endpoint. Account creation and token issuance are
// public; everything else requires a bearer token.
func NewRouter(users *userhandler.UserHandler, tags *recipehandler.TagHandler,
	ingredients *recipehandler.IngredientHandler, recipes *recipehandler.RecipeHandler,
	mediaRoot string) *gin.Engine {
	r := gin.Default()
	// Requests with a known path but wrong method get 405 instead of 404.
	r.HandleMethodNotAllowed = true

	// Public routes
	r.GET("/healthz", apphandler.Health)
	r.POST("/user/create", users.Create)
	r.POST("/user/token", users.Token)

	// Uploaded images are served directly in development.
	r.Static("/media", mediaRoot)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/user/me", users.Me)
		auth.PATCH("/user/me", users.UpdateMe)

		auth.GET("/recipe/tags", tags.List)
		auth.POST("/recipe/tags", tags.Create)

		auth.GET("/recipe/ingredients", ingredients.List)
		auth.POST("/recipe/ingredients", ingredients.Create)

		auth.GET("/recipe/recipes", recipes.List)
		auth.POST("/recipe/recipes", recipes.Create)
		auth.GET("/recipe/recipes/:id", recipes.Get)
		auth.PUT("/recipe/recipes/:id", recipes.Put)
		auth.PATCH("/recipe/recipes/:id", recipes.Patch)
		auth.DELETE("/recipe/recipes/:id", recipes.Delete)
		auth.POST("/recipe/recipes/:id/upload-image", recipes.UploadImage)
	}

	return r
}
