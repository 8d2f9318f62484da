package main

import (
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"vuttr_backend/internal/app/router"
	authadapters "vuttr_backend/internal/feature/auth/adapters"
	authhandler "vuttr_backend/internal/feature/auth/transport/handler"
	authusecase "vuttr_backend/internal/feature/auth/usecase"
	tooladapters "vuttr_backend/internal/feature/tools/adapters"
	toolhandler "vuttr_backend/internal/feature/tools/transport/handler"
	toolusecase "vuttr_backend/internal/feature/tools/usecase"
	"vuttr_backend/internal/platform/cache"
	"vuttr_backend/internal/platform/config"
	platformdb "vuttr_backend/internal/platform/db"
	platformredis "vuttr_backend/internal/platform/redis"
	"vuttr_backend/internal/platform/token"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Warn("VUTTR_AUTH_KEY is not set. Token routes will refuse requests; set a strong secret in production.")
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis (optional; the store runs uncached without it)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	toolStore := tooladapters.NewToolGorm(db)

	// Redis cache decorator over the tool store
	cachedToolStore := cache.NewCachingToolStore(rdb, 0, toolStore, "tools")

	// Usecase
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	toolUC := toolusecase.NewToolUsecase(cachedToolStore)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	toolH := toolhandler.NewToolHandler(toolUC)

	r := router.NewRouter(authH, toolH, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
