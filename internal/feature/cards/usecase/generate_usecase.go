package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"productifai_backend/internal/feature/cards/domain/entity"
)

const (
	// DefaultGenerateCount is the number of cards generated when the request
	// does not specify one.
	DefaultGenerateCount = 3

	// generateTimeout bounds the upstream generation call. The API is called
	// once with no retry; a hung upstream fails the request at this deadline.
	generateTimeout = 60 * time.Second

	// generatePromptTemplate instructs the model to answer with a JSON array
	// of card objects.
	generatePromptTemplate = `Generate %d flashcards about the topic %q. Each card should have:
- a 'question'
- an 'answer'
- optionally a 'hint'
- optionally a 'difficulty'

Return the result as a JSON array of objects like:
[
  {
    "question": "...",
    "answer": "...",
    "hint": "...",
    "difficulty": "..."
  }
]`
)

// Models commonly wrap JSON answers in a Markdown code fence.
var (
	fenceOpen  = regexp.MustCompile("^```json\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// CardGenerator produces raw text from a prompt via the external generation API.
// Implementations return ErrNoTextProduced when the response structure carries
// no text.
type CardGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// generatedCard is the shape of one element in the model's JSON answer.
type generatedCard struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Hint       *string `json:"hint"`
	Difficulty string  `json:"difficulty"`
}

// GenerateCards asks the generation API for count flashcards about topic and
// persists them into the caller's deck. The persisted batch is transactional:
// either every generated card is committed or none are.
func (u *cardUsecase) GenerateCards(ctx context.Context, userID uint, topic string, count int, deckID uint) ([]entity.Card, error) {
	deck, err := u.decks.FindOwned(ctx, deckID, userID)
	if err != nil {
		return nil, err
	}

	if count <= 0 {
		count = DefaultGenerateCount
	}
	prompt := fmt.Sprintf(generatePromptTemplate, count, topic)

	callCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text, err := u.generator.GenerateText(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace([]byte(stripCodeFence(text)))
	if !json.Valid(raw) {
		return nil, ErrInvalidAIResponse
	}
	// json.Unmarshal accepts "null" into a slice without error, so the array
	// check has to be explicit.
	if raw[0] != '[' {
		return nil, ErrNotCardArray
	}
	var items []generatedCard
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrNotCardArray
	}

	cards := make([]*entity.Card, 0, len(items))
	for _, item := range items {
		difficulty := item.Difficulty
		if difficulty == "" {
			difficulty = entity.DefaultDifficulty
		}
		cards = append(cards, &entity.Card{
			Question:   item.Question,
			Answer:     item.Answer,
			Hint:       item.Hint,
			Difficulty: difficulty,
			UserID:     userID,
			DeckID:     deckID,
		})
	}

	if err := u.cards.CreateBatch(ctx, cards); err != nil {
		return nil, err
	}

	out := make([]entity.Card, 0, len(cards))
	for _, c := range cards {
		c.Deck = *deck
		out = append(out, *c)
	}
	return out, nil
}

// stripCodeFence removes a leading ```json fence and a trailing fence from the
// model's answer so the payload parses as plain JSON.
func stripCodeFence(s string) string {
	s = fenceOpen.ReplaceAllString(s, "")
	return fenceClose.ReplaceAllString(s, "")
}

// parseTimestamp accepts the timestamp formats clients send for lastReviewed.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
