// Package handler provides the HTTP handlers for the cards feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"productifai_backend/internal/api"
	"productifai_backend/internal/feature/cards/domain/entity"
	"productifai_backend/internal/feature/cards/usecase"
	jwtmw "productifai_backend/internal/platform/jwt"
)

// CardUsecase defines the deck and card operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type CardUsecase interface {
	ListCards(ctx context.Context, userID uint) ([]entity.Card, error)
	CreateCard(ctx context.Context, userID uint, card *entity.Card) (*entity.Card, error)
	UpdateCard(ctx context.Context, userID, cardID uint, update usecase.CardUpdate) (*entity.Card, error)
	CreateCards(ctx context.Context, userID, deckID uint, inputs []usecase.NewCard) (int64, error)
	GenerateCards(ctx context.Context, userID uint, topic string, count int, deckID uint) ([]entity.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uint) error
	DeleteAllCards(ctx context.Context, userID uint, deckID *uint) (int64, error)
	ListDecks(ctx context.Context, userID uint) ([]entity.DeckWithCount, error)
	CreateDeck(ctx context.Context, userID uint, deck *entity.Deck) (*entity.Deck, error)
}

// CardHandler handles the HTTP requests for deck and card operations.
type CardHandler struct {
	cards CardUsecase
}

// NewCardHandler creates a new instance of CardHandler.
func NewCardHandler(cards CardUsecase) *CardHandler {
	return &CardHandler{cards: cards}
}

// cardResponse converts a card entity to its public view.
func cardResponse(c *entity.Card) api.CardResponse {
	return api.CardResponse{
		ID:           c.ID,
		Question:     c.Question,
		Answer:       c.Answer,
		Hint:         c.Hint,
		Difficulty:   c.Difficulty,
		ReviewCount:  c.ReviewCount,
		LastReviewed: c.LastReviewed,
		UserID:       c.UserID,
		DeckID:       c.DeckID,
		Deck:         api.DeckRef{ID: c.Deck.ID, Title: c.Deck.Title},
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// cardResponses converts a slice of card entities.
func cardResponses(cards []entity.Card) []api.CardResponse {
	out := make([]api.CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, cardResponse(&cards[i]))
	}
	return out
}

// deckResponse converts a deck-with-count row to its public view.
func deckResponse(d *entity.DeckWithCount) api.DeckResponse {
	return api.DeckResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		IsPublic:    d.IsPublic,
		UserID:      d.UserID,
		CardCount:   d.CardCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// pathMatchesIdentity parses the user_id path parameter and verifies it names
// the authenticated caller. A mismatch is an impersonation attempt and is
// reported as 403, distinct from the 404 used for unowned resources.
func pathMatchesIdentity(c *gin.Context, identity jwtmw.Identity) bool {
	pathUserID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || uint(pathUserID) != identity.UserID {
		c.JSON(http.StatusForbidden, api.Fail("Forbidden!"))
		return false
	}
	return true
}

// fail maps a usecase error to its HTTP status and envelope message.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDeckNotFound):
		c.JSON(http.StatusNotFound, api.Fail("Deck not found!"))
	case errors.Is(err, usecase.ErrCardNotFound):
		c.JSON(http.StatusNotFound, api.Fail("Card not found"))
	case errors.Is(err, usecase.ErrNoTextProduced):
		slog.Error("generation returned no text", "error", err)
		c.JSON(http.StatusInternalServerError, api.Fail("No response received from AI"))
	case errors.Is(err, usecase.ErrInvalidAIResponse):
		slog.Error("generation response is not valid JSON", "error", err)
		c.JSON(http.StatusInternalServerError, api.Fail("Failed to validate AI response into JSON!"))
	case errors.Is(err, usecase.ErrNotCardArray):
		slog.Error("generation response is not a card array", "error", err)
		c.JSON(http.StatusInternalServerError, api.Fail("AI response is not a valid array of cards!"))
	default:
		slog.Error("card operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Fail("Internal server error!"))
	}
}

// ListCards handles GET /api/revise/.
// The listing is scoped to the authenticated caller.
func (h *CardHandler) ListCards(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	cards, err := h.cards.ListCards(c.Request.Context(), identity.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Cards retrieved successfully!", cardResponses(cards)))
}

// ListUserCards handles GET /api/revise/cards/:user_id.
// The path user must match the token user; a mismatch is 403.
func (h *CardHandler) ListUserCards(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}
	if !pathMatchesIdentity(c, identity) {
		return
	}

	cards, err := h.cards.ListCards(c.Request.Context(), identity.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Cards retrieved successfully!", cardResponses(cards)))
}

// CreateCard handles POST /api/revise/cards/create.
func (h *CardHandler) CreateCard(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	var req api.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create card validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Question, answer, and deck are required"))
		return
	}

	card := &entity.Card{
		Question:   req.Question,
		Answer:     req.Answer,
		Hint:       req.Hint,
		Difficulty: req.Difficulty,
		DeckID:     req.DeckID,
	}
	created, err := h.cards.CreateCard(c.Request.Context(), identity.UserID, card)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.OK("Card created successfully!", cardResponse(created)))
}

// GenerateCards handles POST /api/revise/cards/generate.
func (h *CardHandler) GenerateCards(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	var req api.GenerateCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate cards validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Topic and deck are required"))
		return
	}

	cards, err := h.cards.GenerateCards(c.Request.Context(), identity.UserID, req.Topic, req.Count, req.DeckID)
	if err != nil {
		fail(c, err)
		return
	}

	slog.Info("cards generated", "count", len(cards), "deck_id", req.DeckID, "user_id", identity.UserID)
	c.JSON(http.StatusCreated, api.OK("Cards generated successfully!", cardResponses(cards)))
}

// UpdateCard handles PUT /api/revise/cards/:card_id/:user_id.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}
	if !pathMatchesIdentity(c, identity) {
		return
	}

	cardID, err := strconv.ParseUint(c.Param("card_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Card ID is required"))
		return
	}

	var req api.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update card validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		return
	}

	updated, err := h.cards.UpdateCard(c.Request.Context(), identity.UserID, uint(cardID), usecase.CardUpdate{
		Question:     req.Question,
		Answer:       req.Answer,
		Hint:         req.Hint,
		Difficulty:   req.Difficulty,
		ReviewCount:  req.ReviewCount,
		LastReviewed: req.LastReviewed,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Card updated successfully", cardResponse(updated)))
}

// CreateCards handles POST /api/revise/cards/createCards.
func (h *CardHandler) CreateCards(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	var req api.CreateCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create cards validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Cards array and deck ID are required!"))
		return
	}

	inputs := make([]usecase.NewCard, 0, len(req.Cards))
	for _, in := range req.Cards {
		inputs = append(inputs, usecase.NewCard{
			Question:   in.Question,
			Answer:     in.Answer,
			Hint:       in.Hint,
			Difficulty: in.Difficulty,
		})
	}

	count, err := h.cards.CreateCards(c.Request.Context(), identity.UserID, req.DeckID, inputs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.Response{
		Success: true,
		Message: strconv.FormatInt(count, 10) + " cards created successfully",
		Data:    api.CountData{Count: count},
	})
}

// ListDecks handles GET /api/revise/decks/:user_id.
func (h *CardHandler) ListDecks(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}
	if !pathMatchesIdentity(c, identity) {
		return
	}

	decks, err := h.cards.ListDecks(c.Request.Context(), identity.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]api.DeckResponse, 0, len(decks))
	for i := range decks {
		out = append(out, deckResponse(&decks[i]))
	}
	c.JSON(http.StatusOK, api.OK("Decks retrieved successfully", out))
}

// CreateDeck handles POST /api/revise/decks/create.
func (h *CardHandler) CreateDeck(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	var req api.CreateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create deck validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Title is required!"))
		return
	}

	deck := &entity.Deck{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	created, err := h.cards.CreateDeck(c.Request.Context(), identity.UserID, deck)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.OK("Deck created successfully",
		deckResponse(&entity.DeckWithCount{Deck: *created})))
}

// DeleteCard handles DELETE /api/revise/deleteCard. The card id travels in the body.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	var req api.DeleteCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Card ID is required"))
		return
	}

	if err := h.cards.DeleteCard(c.Request.Context(), identity.UserID, req.CardID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Card deleted successfully", nil))
}

// DeleteAllCards handles DELETE /api/revise/deleteAllCards.
// With a deckId in the body only that deck's cards are removed.
func (h *CardHandler) DeleteAllCards(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized!"))
		return
	}

	// The body is optional here; an absent or empty body means all cards.
	var req api.DeleteAllCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		return
	}

	count, err := h.cards.DeleteAllCards(c.Request.Context(), identity.UserID, req.DeckID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.Response{
		Success: true,
		Message: strconv.FormatInt(count, 10) + " cards deleted successfully",
		Data:    api.CountData{Count: count},
	})
}
