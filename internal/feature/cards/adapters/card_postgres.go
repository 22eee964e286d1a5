// Package adapters provides the repository implementations for the cards feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"productifai_backend/internal/feature/cards/domain/entity"
	"productifai_backend/internal/feature/cards/usecase"
)

// cardPostgres is the GORM-backed implementation of the CardRepository interface.
type cardPostgres struct {
	db *gorm.DB
}

// Compile-time check that cardPostgres implements CardRepository.
var _ usecase.CardRepository = (*cardPostgres)(nil)

// NewCardPostgres creates a new cardPostgres instance with the given gorm.DB connection.
func NewCardPostgres(db *gorm.DB) *cardPostgres {
	return &cardPostgres{db: db}
}

// Create persists one card and reloads its deck reference.
func (r *cardPostgres) Create(ctx context.Context, card *entity.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&card.Deck, card.DeckID).Error
}

// CreateBatch persists all cards inside a single transaction.
func (r *cardPostgres) CreateBatch(ctx context.Context, cards []*entity.Card) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, card := range cards {
			if err := tx.Create(card).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByUser lists a user's cards with their deck references, newest first.
func (r *cardPostgres) FindByUser(ctx context.Context, userID uint) ([]entity.Card, error) {
	var cards []entity.Card
	err := r.db.WithContext(ctx).
		Preload("Deck").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// FindOwned retrieves a card by id and owner in a single filtered query.
func (r *cardPostgres) FindOwned(ctx context.Context, id, userID uint) (*entity.Card, error) {
	var card entity.Card
	err := r.db.WithContext(ctx).
		Preload("Deck").
		Where("id = ? AND user_id = ?", id, userID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// Save writes back a modified card.
func (r *cardPostgres) Save(ctx context.Context, card *entity.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// Delete removes a card filtered by both id and owner.
func (r *cardPostgres) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Card{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCardNotFound
	}
	return nil
}

// DeleteByUser removes a user's cards, optionally scoped to one deck.
func (r *cardPostgres) DeleteByUser(ctx context.Context, userID uint, deckID *uint) (int64, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if deckID != nil {
		q = q.Where("deck_id = ?", *deckID)
	}
	res := q.Delete(&entity.Card{})
	return res.RowsAffected, res.Error
}
