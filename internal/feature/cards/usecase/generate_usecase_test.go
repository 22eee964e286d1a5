package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productifai_backend/internal/feature/cards/domain/entity"
)

func TestCardUsecase_GenerateCards(t *testing.T) {
	ctx := context.Background()

	t.Run("fenced array response persists every card", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "```json\n[" +
					`{"question":"What is a goroutine?","answer":"A lightweight thread","difficulty":"EASY"},` +
					`{"question":"What is a channel?","answer":"A typed conduit","hint":"make(chan T)"}` +
					"]\n```", nil
			},
		}

		var batch []*entity.Card
		cards := &mockCardRepository{
			CreateBatchFunc: func(ctx context.Context, cs []*entity.Card) error {
				batch = cs
				return nil
			},
		}

		uc := NewCardUsecase(cards, ownedDeck(2, 1), generator)
		out, err := uc.GenerateCards(ctx, 1, "goroutines", 2, 2)

		require.NoError(t, err)
		require.Len(t, batch, 2, "both generated cards should be persisted")
		require.Len(t, out, 2)

		assert.Equal(t, "What is a goroutine?", out[0].Question)
		assert.Equal(t, "EASY", out[0].Difficulty)
		assert.Equal(t, entity.DefaultDifficulty, out[1].Difficulty, "missing difficulty should default")
		require.NotNil(t, out[1].Hint)
		assert.Equal(t, "make(chan T)", *out[1].Hint)

		for _, card := range out {
			assert.Equal(t, uint(1), card.UserID)
			assert.Equal(t, uint(2), card.DeckID)
			assert.Equal(t, "Go Basics", card.Deck.Title, "deck reference should be attached")
		}
	})

	t.Run("bare array without a fence is accepted", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return `[{"question":"Q","answer":"A"}]`, nil
			},
		}

		uc := NewCardUsecase(&mockCardRepository{}, ownedDeck(2, 1), generator)
		out, err := uc.GenerateCards(ctx, 1, "topic", 1, 2)

		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("invalid JSON persists nothing", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Here are your cards: question one ...", nil
			},
		}

		persisted := false
		cards := &mockCardRepository{
			CreateBatchFunc: func(ctx context.Context, cs []*entity.Card) error {
				persisted = true
				return nil
			},
		}

		uc := NewCardUsecase(cards, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 3, 2)

		assert.ErrorIs(t, err, ErrInvalidAIResponse)
		assert.False(t, persisted, "no cards should be persisted for an unparseable response")
	})

	t.Run("valid JSON object is rejected as not an array", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"question":"Q","answer":"A"}`, nil
			},
		}

		persisted := false
		cards := &mockCardRepository{
			CreateBatchFunc: func(ctx context.Context, cs []*entity.Card) error {
				persisted = true
				return nil
			},
		}

		uc := NewCardUsecase(cards, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 3, 2)

		assert.ErrorIs(t, err, ErrNotCardArray)
		assert.False(t, persisted)
	})

	t.Run("null response is rejected as not an array", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "null", nil
			},
		}

		persisted := false
		cards := &mockCardRepository{
			CreateBatchFunc: func(ctx context.Context, cs []*entity.Card) error {
				persisted = true
				return nil
			},
		}

		uc := NewCardUsecase(cards, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 3, 2)

		assert.ErrorIs(t, err, ErrNotCardArray, "null parses as JSON but is not an array")
		assert.False(t, persisted)
	})

	t.Run("empty generation response is propagated", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", ErrNoTextProduced
			},
		}

		uc := NewCardUsecase(&mockCardRepository{}, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 3, 2)

		assert.ErrorIs(t, err, ErrNoTextProduced)
	})

	t.Run("deck owned by someone else never calls the generator", func(t *testing.T) {
		called := false
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				called = true
				return "[]", nil
			},
		}

		uc := NewCardUsecase(&mockCardRepository{}, ownedDeck(2, 99), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 3, 2)

		assert.ErrorIs(t, err, ErrDeckNotFound)
		assert.False(t, called, "generation should not run for an unowned deck")
	})

	t.Run("non-positive count falls back to the default", func(t *testing.T) {
		var prompt string
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, p string) (string, error) {
				prompt = p
				return "[]", nil
			},
		}

		uc := NewCardUsecase(&mockCardRepository{}, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 0, 2)

		require.NoError(t, err)
		assert.Contains(t, prompt, "Generate 3 flashcards")
	})

	t.Run("prompt carries the requested topic and count", func(t *testing.T) {
		var prompt string
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, p string) (string, error) {
				prompt = p
				return "[]", nil
			},
		}

		uc := NewCardUsecase(&mockCardRepository{}, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "go interfaces", 5, 2)

		require.NoError(t, err)
		assert.Contains(t, prompt, "Generate 5 flashcards")
		assert.Contains(t, prompt, `"go interfaces"`)
	})

	t.Run("batch insert failure is propagated", func(t *testing.T) {
		generator := &mockCardGenerator{
			GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
				return `[{"question":"Q","answer":"A"}]`, nil
			},
		}
		expectedErr := errors.New("transaction aborted")
		cards := &mockCardRepository{
			CreateBatchFunc: func(ctx context.Context, cs []*entity.Card) error {
				return expectedErr
			},
		}

		uc := NewCardUsecase(cards, ownedDeck(2, 1), generator)
		_, err := uc.GenerateCards(ctx, 1, "topic", 1, 2)

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fenced payload",
			input:    "```json\n[{\"a\":1}]\n```",
			expected: `[{"a":1}]`,
		},
		{
			name:     "no fence",
			input:    `[{"a":1}]`,
			expected: `[{"a":1}]`,
		},
		{
			name:     "fence with trailing whitespace",
			input:    "```json  \n[]  \n```",
			expected: "[]",
		},
		{
			name:     "fence marker inside the payload is preserved",
			input:    "[{\"answer\":\"use ```json blocks\"}]",
			expected: "[{\"answer\":\"use ```json blocks\"}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := stripCodeFence(tt.input)
			assert.Equal(t, tt.expected, strings.TrimSpace(got))
		})
	}
}
