// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// CachingRecipeRepository decorates a RecipeRepository with Redis caching of
// detail reads. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. List queries are
// filter-dependent and always hit the database.
type CachingRecipeRepository struct {
	inner     usecase.RecipeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingRecipeRepository decorates a RecipeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "recipes".
func NewCachingRecipeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecipeRepository, namespace string) *CachingRecipeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &CachingRecipeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingRecipeRepository) cacheKey(userID, id uint) string {
	return fmt.Sprintf("%s:%d:%d", c.namespace, userID, id)
}

// ListByUser always reads from the underlying repository.
func (c *CachingRecipeRepository) ListByUser(ctx context.Context, userID uint, filter usecase.RecipeFilter) ([]entity.Recipe, error) {
	return c.inner.ListByUser(ctx, userID, filter)
}

// FindByID checks the cache first and falls back to the database on a miss.
func (c *CachingRecipeRepository) FindByID(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, userID, id)
	}

	key := c.cacheKey(userID, id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Recipe
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// 3) Populate cache, best effort
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Create inserts through the underlying repository. New recipes cannot have
// a stale entry, so nothing is invalidated.
func (c *CachingRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	return c.inner.Create(ctx, recipe)
}

// Update writes through and drops the cached detail entry.
func (c *CachingRecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Update(ctx, recipe); err != nil {
		return err
	}
	c.invalidate(ctx, recipe.UserID, recipe.ID)
	return nil
}

// UpdateImage writes through and drops the cached detail entry.
func (c *CachingRecipeRepository) UpdateImage(ctx context.Context, userID, id uint, image string) error {
	if err := c.inner.UpdateImage(ctx, userID, id, image); err != nil {
		return err
	}
	c.invalidate(ctx, userID, id)
	return nil
}

// Delete removes through the underlying repository and drops the cache entry.
func (c *CachingRecipeRepository) Delete(ctx context.Context, userID, id uint) error {
	if err := c.inner.Delete(ctx, userID, id); err != nil {
		return err
	}
	c.invalidate(ctx, userID, id)
	return nil
}

// invalidate drops a cached detail entry, best effort.
func (c *CachingRecipeRepository) invalidate(ctx context.Context, userID, id uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID, id)).Err()
}
