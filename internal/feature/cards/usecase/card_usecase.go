package usecase

import (
	"context"

	"productifai_backend/internal/feature/cards/domain/entity"
)

// CardRepository abstracts the persistence layer for cards.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type CardRepository interface {
	// Create persists one card and loads its deck reference.
	Create(ctx context.Context, card *entity.Card) error

	// CreateBatch persists all cards in a single transaction.
	// Either every card is committed or none are.
	CreateBatch(ctx context.Context, cards []*entity.Card) error

	// FindByUser lists a user's cards with deck references, newest first.
	FindByUser(ctx context.Context, userID uint) ([]entity.Card, error)

	// FindOwned retrieves a card filtered by both id and owner in one query.
	// It returns ErrCardNotFound when no matching row exists.
	FindOwned(ctx context.Context, id, userID uint) (*entity.Card, error)

	// Save writes back a modified card.
	Save(ctx context.Context, card *entity.Card) error

	// Delete removes a card filtered by both id and owner. It returns
	// ErrCardNotFound when no matching row exists.
	Delete(ctx context.Context, id, userID uint) error

	// DeleteByUser removes all of a user's cards, optionally scoped to one
	// deck, and reports how many rows were removed.
	DeleteByUser(ctx context.Context, userID uint, deckID *uint) (int64, error)
}

// DeckRepository abstracts the persistence layer for decks.
type DeckRepository interface {
	// Create persists a new deck.
	Create(ctx context.Context, deck *entity.Deck) error

	// FindOwned retrieves a deck filtered by both id and owner in one query.
	// It returns ErrDeckNotFound when no matching row exists.
	FindOwned(ctx context.Context, id, userID uint) (*entity.Deck, error)

	// ListByUser lists a user's decks with card counts, newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.DeckWithCount, error)
}

// CardUpdate carries the optional fields of a partial card update.
// Nil fields leave the stored value untouched.
type CardUpdate struct {
	Question     *string
	Answer       *string
	Hint         *string
	Difficulty   *string
	ReviewCount  *int
	LastReviewed *string
}

// NewCard is one card of a bulk-insert request.
type NewCard struct {
	Question   string
	Answer     string
	Hint       *string
	Difficulty string
}

// cardUsecase implements the deck and card business logic.
type cardUsecase struct {
	cards     CardRepository
	decks     DeckRepository
	generator CardGenerator
}

// NewCardUsecase creates a new instance of cardUsecase.
func NewCardUsecase(cards CardRepository, decks DeckRepository, generator CardGenerator) *cardUsecase {
	return &cardUsecase{cards: cards, decks: decks, generator: generator}
}

// ListCards returns the requesting user's cards, newest first.
func (u *cardUsecase) ListCards(ctx context.Context, userID uint) ([]entity.Card, error) {
	return u.cards.FindByUser(ctx, userID)
}

// CreateCard creates one card after confirming the target deck belongs to the caller.
func (u *cardUsecase) CreateCard(ctx context.Context, userID uint, card *entity.Card) (*entity.Card, error) {
	deck, err := u.decks.FindOwned(ctx, card.DeckID, userID)
	if err != nil {
		return nil, err
	}

	card.UserID = userID
	if card.Difficulty == "" {
		card.Difficulty = entity.DefaultDifficulty
	}
	if err := u.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	card.Deck = *deck
	return card, nil
}

// UpdateCard applies a partial update to a card the caller owns.
// The lookup is filtered by both card id and owner in a single query.
func (u *cardUsecase) UpdateCard(ctx context.Context, userID, cardID uint, update CardUpdate) (*entity.Card, error) {
	card, err := u.cards.FindOwned(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	if update.Question != nil {
		card.Question = *update.Question
	}
	if update.Answer != nil {
		card.Answer = *update.Answer
	}
	if update.Hint != nil {
		card.Hint = update.Hint
	}
	if update.Difficulty != nil {
		card.Difficulty = *update.Difficulty
	}
	if update.ReviewCount != nil {
		card.ReviewCount = *update.ReviewCount
	}
	if update.LastReviewed != nil {
		t, err := parseTimestamp(*update.LastReviewed)
		if err != nil {
			return nil, err
		}
		card.LastReviewed = &t
	}

	if err := u.cards.Save(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// CreateCards bulk-inserts cards into a deck the caller owns.
// The insert is transactional: either all cards are committed or none.
func (u *cardUsecase) CreateCards(ctx context.Context, userID, deckID uint, inputs []NewCard) (int64, error) {
	if _, err := u.decks.FindOwned(ctx, deckID, userID); err != nil {
		return 0, err
	}

	cards := make([]*entity.Card, 0, len(inputs))
	for _, in := range inputs {
		difficulty := in.Difficulty
		if difficulty == "" {
			difficulty = entity.DefaultDifficulty
		}
		cards = append(cards, &entity.Card{
			Question:   in.Question,
			Answer:     in.Answer,
			Hint:       in.Hint,
			Difficulty: difficulty,
			UserID:     userID,
			DeckID:     deckID,
		})
	}

	if err := u.cards.CreateBatch(ctx, cards); err != nil {
		return 0, err
	}
	return int64(len(cards)), nil
}

// DeleteCard removes one card the caller owns.
func (u *cardUsecase) DeleteCard(ctx context.Context, userID, cardID uint) error {
	return u.cards.Delete(ctx, cardID, userID)
}

// DeleteAllCards removes the caller's cards, optionally scoped to one deck.
// When a deck is given it must belong to the caller.
func (u *cardUsecase) DeleteAllCards(ctx context.Context, userID uint, deckID *uint) (int64, error) {
	if deckID != nil {
		if _, err := u.decks.FindOwned(ctx, *deckID, userID); err != nil {
			return 0, err
		}
	}
	return u.cards.DeleteByUser(ctx, userID, deckID)
}

// ListDecks returns the caller's decks with card counts, newest first.
func (u *cardUsecase) ListDecks(ctx context.Context, userID uint) ([]entity.DeckWithCount, error) {
	return u.decks.ListByUser(ctx, userID)
}

// CreateDeck creates a new deck for the caller.
func (u *cardUsecase) CreateDeck(ctx context.Context, userID uint, deck *entity.Deck) (*entity.Deck, error) {
	deck.UserID = userID
	if err := u.decks.Create(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}
