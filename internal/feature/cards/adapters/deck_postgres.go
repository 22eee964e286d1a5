package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"productifai_backend/internal/feature/cards/domain/entity"
	"productifai_backend/internal/feature/cards/usecase"
)

// deckPostgres is the GORM-backed implementation of the DeckRepository interface.
type deckPostgres struct {
	db *gorm.DB
}

// Compile-time check that deckPostgres implements DeckRepository.
var _ usecase.DeckRepository = (*deckPostgres)(nil)

// NewDeckPostgres creates a new deckPostgres instance with the given gorm.DB connection.
func NewDeckPostgres(db *gorm.DB) *deckPostgres {
	return &deckPostgres{db: db}
}

// Create persists a new deck.
func (r *deckPostgres) Create(ctx context.Context, deck *entity.Deck) error {
	return r.db.WithContext(ctx).Create(deck).Error
}

// FindOwned retrieves a deck by id and owner in a single filtered query.
func (r *deckPostgres) FindOwned(ctx context.Context, id, userID uint) (*entity.Deck, error) {
	var deck entity.Deck
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&deck).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDeckNotFound
		}
		return nil, err
	}
	return &deck, nil
}

// ListByUser lists a user's decks with card counts, newest first.
func (r *deckPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.DeckWithCount, error) {
	var decks []entity.DeckWithCount
	err := r.db.WithContext(ctx).
		Model(&entity.Deck{}).
		Select("decks.*, COUNT(cards.id) AS card_count").
		Joins("LEFT JOIN cards ON cards.deck_id = decks.id").
		Where("decks.user_id = ?", userID).
		Group("decks.id").
		Order("decks.created_at DESC").
		Scan(&decks).Error
	if err != nil {
		return nil, err
	}
	return decks, nil
}
