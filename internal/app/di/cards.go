// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"productifai_backend/internal/feature/cards/adapters"
	"productifai_backend/internal/feature/cards/adapters/gemini"
	"productifai_backend/internal/feature/cards/usecase"
	"productifai_backend/internal/platform/cache"
)

// NewCardGenerator creates a Gemini-backed card generator using the
// GEMINI_API_KEY environment variable.
func NewCardGenerator(ctx context.Context) (*gemini.Generator, error) {
	return gemini.NewGenerator(ctx, os.Getenv("GEMINI_API_KEY"))
}

// NewCardRepository creates the card repository, wrapped in the Redis cache
// decorator. With a nil Redis client the decorator passes everything through.
func NewCardRepository(rdb *redis.Client, db *gorm.DB) usecase.CardRepository {
	inner := adapters.NewCardPostgres(db)
	return cache.NewCachingCardRepository(rdb, 0, inner, "cards")
}
