// Package config builds the immutable process configuration at startup.
// All components receive their settings through the Config struct instead
// of reading environment variables themselves.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTokenTTL is the validity window of issued credential tokens.
const DefaultTokenTTL = time.Hour

// Config holds every runtime setting the server needs. It is constructed
// once in main and passed by value; nothing mutates it afterwards.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Database connection settings.
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// RunMigrations enables gorm AutoMigrate on startup.
	RunMigrations bool

	// Redis cache settings. An empty RedisAddr disables the cache.
	RedisAddr     string
	RedisPassword string

	// JWTSecret signs credential tokens. TokenTTL is their validity window.
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present (local development), real
// environment variables always win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getenv("PORT", "8080"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBName:        os.Getenv("DB_NAME"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("VUTTR_AUTH_KEY"),
		TokenTTL:      getduration("TOKEN_TTL", DefaultTokenTTL),
	}
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
