package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/config"
	"recipe_backend/internal/app/router"
	recipeadapters "recipe_backend/internal/feature/recipe/adapters"
	recipehandler "recipe_backend/internal/feature/recipe/transport/handler"
	recipeusecase "recipe_backend/internal/feature/recipe/usecase"
	useradapters "recipe_backend/internal/feature/user/adapters"
	userhandler "recipe_backend/internal/feature/user/transport/handler"
	userusecase "recipe_backend/internal/feature/user/usecase"
	"recipe_backend/internal/platform/cache"
	infradb "recipe_backend/internal/platform/db"
	jwtmw "recipe_backend/internal/platform/jwt"
	infraredis "recipe_backend/internal/platform/redis"
	"recipe_backend/internal/platform/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := useradapters.NewUserPostgres(db)
	tagRepo := recipeadapters.NewTagPostgres(db)
	ingredientRepo := recipeadapters.NewIngredientPostgres(db)
	recipeRepo := recipeadapters.NewRecipePostgres(db)

	// Recipe detail reads go through the Redis cache decorator.
	cachedRecipeRepo := cache.NewCachingRecipeRepository(rdb, 0, recipeRepo, "recipes")

	// Media storage
	media := storage.NewLocal(cfg.MediaRoot, "recipe")

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	userUC := userusecase.NewUserUsecase(userRepo, tokenGen)
	tagUC := recipeusecase.NewTagUsecase(tagRepo)
	ingredientUC := recipeusecase.NewIngredientUsecase(ingredientRepo)
	recipeUC := recipeusecase.NewRecipeUsecase(cachedRecipeRepo, tagRepo, ingredientRepo, media)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	tagH := recipehandler.NewTagHandler(tagUC)
	ingredientH := recipehandler.NewIngredientHandler(ingredientUC)
	recipeH := recipehandler.NewRecipeHandler(recipeUC)

	r := router.NewRouter(userH, tagH, ingredientH, recipeH, cfg.MediaRoot)
	r.Use(cors.Default())

	slog.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
