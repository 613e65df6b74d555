// Package db opens the application database and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	recipeentity "recipe_backend/internal/feature/recipe/domain/entity"
	userentity "recipe_backend/internal/feature/user/domain/entity"
)

// retryInterval is how long to wait between connection attempts while the
// database is still starting up.
const retryInterval = 3 * time.Second

// Config holds database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// LoadConfigFromEnv reads database settings from environment variables.
func LoadConfigFromEnv() Config {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  sslmode,
	}
}

// BuildDSN renders the PostgreSQL DSN for the given config.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// Opener abstracts gorm.Open so connection retry logic is testable without a
// real database.
type Opener func(dsn string) (*gorm.DB, error)

// GormOpener is the production Opener backed by the postgres driver.
func GormOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry keeps attempting to connect until the timeout elapses.
// The database container often comes up after the app, so the first attempts
// are expected to fail during deployment.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// Migrate creates or updates the schema for all entities, including the
// many-to-many join tables and cascading foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userentity.User{},
		&recipeentity.Tag{},
		&recipeentity.Ingredient{},
		&recipeentity.Recipe{},
	)
}

// OpenDB connects to the database from environment configuration and runs
// migrations when RUN_MIGRATIONS is set.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(LoadConfigFromEnv())

	db, err := ConnectWithRetry(dsn, 60*time.Second, GormOpener)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
