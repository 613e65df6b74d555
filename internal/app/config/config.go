// Package config loads the application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the service reads from the environment.
// Database connection settings live in platform/db and are read there.
type Config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	MediaRoot     string
}

// Load reads the configuration, applying development defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		RedisAddr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getDuration("TOKEN_TTL_HOURS", 24) * time.Hour,
		MediaRoot:     getEnv("MEDIA_ROOT", "./media"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
