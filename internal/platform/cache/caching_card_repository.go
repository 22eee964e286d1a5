// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"productifai_backend/internal/feature/cards/domain/entity"
	"productifai_backend/internal/feature/cards/usecase"
)

// CachingCardRepository decorates a CardRepository with Redis caching of
// per-user card listings. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. All cache
// operations are best effort; a cache failure never fails the request.
type CachingCardRepository struct {
	inner     usecase.CardRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingCardRepository implements CardRepository.
var _ usecase.CardRepository = (*CachingCardRepository)(nil)

// NewCachingCardRepository decorates a CardRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "cards".
// A nil Redis client disables caching and every call passes straight through.
func NewCachingCardRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CardRepository, namespace string) *CachingCardRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "cards"
	}
	return &CachingCardRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// userKey generates the cache key for one user's card listing.
func (c *CachingCardRepository) userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}

// invalidate drops a user's cached listing. Best effort.
func (c *CachingCardRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.userKey(userID)).Err()
}

// FindByUser retrieves a user's cards, checking the cache first and falling
// back to the database on a miss.
func (c *CachingCardRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Card, error) {
	if c.rdb == nil {
		return c.inner.FindByUser(ctx, userID)
	}

	key := c.userKey(userID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Card
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Drop the corrupted entry and fall through to the database.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create persists a card and invalidates the owner's cached listing.
func (c *CachingCardRepository) Create(ctx context.Context, card *entity.Card) error {
	if err := c.inner.Create(ctx, card); err != nil {
		return err
	}
	c.invalidate(ctx, card.UserID)
	return nil
}

// CreateBatch persists cards and invalidates the owners' cached listings.
func (c *CachingCardRepository) CreateBatch(ctx context.Context, cards []*entity.Card) error {
	if err := c.inner.CreateBatch(ctx, cards); err != nil {
		return err
	}
	seen := map[uint]struct{}{}
	for _, card := range cards {
		if _, ok := seen[card.UserID]; ok {
			continue
		}
		seen[card.UserID] = struct{}{}
		c.invalidate(ctx, card.UserID)
	}
	return nil
}

// FindOwned reads through to the database; single-card reads are not cached.
func (c *CachingCardRepository) FindOwned(ctx context.Context, id, userID uint) (*entity.Card, error) {
	return c.inner.FindOwned(ctx, id, userID)
}

// Save writes back a card and invalidates the owner's cached listing.
func (c *CachingCardRepository) Save(ctx context.Context, card *entity.Card) error {
	if err := c.inner.Save(ctx, card); err != nil {
		return err
	}
	c.invalidate(ctx, card.UserID)
	return nil
}

// Delete removes a card and invalidates the owner's cached listing.
func (c *CachingCardRepository) Delete(ctx context.Context, id, userID uint) error {
	if err := c.inner.Delete(ctx, id, userID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// DeleteByUser removes a user's cards and invalidates their cached listing.
func (c *CachingCardRepository) DeleteByUser(ctx context.Context, userID uint, deckID *uint) (int64, error) {
	count, err := c.inner.DeleteByUser(ctx, userID, deckID)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, userID)
	return count, nil
}
