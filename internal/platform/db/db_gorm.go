// Package db bootstraps the gorm database connection.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "vuttr_backend/internal/feature/auth/domain/entity"
	toolentity "vuttr_backend/internal/feature/tools/domain/entity"
	"vuttr_backend/internal/platform/config"
)

// connectTimeout bounds the startup retry loop.
const connectTimeout = 60 * time.Second

// Opener opens a gorm connection for the given DSN. Injected so that the
// retry logic is testable without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// OpenDB connects to postgres with retries and, when enabled, runs the
// schema migration for the User and Tool tables. It terminates the process
// if the database stays unreachable past the timeout.
func OpenDB(cfg config.Config) *gorm.DB {
	db, err := ConnectWithRetry(cfg.DSN(), connectTimeout, func(dsn string) (*gorm.DB, error) {
		// TranslateError surfaces unique-constraint conflicts as
		// gorm.ErrDuplicatedKey regardless of the underlying driver.
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		log.Fatalf("DB connect failed after %s: %v", connectTimeout, err)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&toolentity.Tool{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// ConnectWithRetry keeps calling opener until it succeeds or the timeout
// elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}
