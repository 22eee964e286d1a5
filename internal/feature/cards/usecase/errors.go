// Package usecase implements the business logic for the cards feature.
package usecase

import "errors"

var (
	// ErrDeckNotFound is returned when a deck does not exist for the
	// requesting user. A deck owned by someone else reports the same error.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrCardNotFound is returned when a card does not exist for the
	// requesting user.
	ErrCardNotFound = errors.New("card not found")

	// ErrNoTextProduced is returned when the generation API response carries
	// no text in its candidate/content/parts chain.
	ErrNoTextProduced = errors.New("no text produced by generation API")

	// ErrInvalidAIResponse is returned when the generated text is not valid JSON.
	ErrInvalidAIResponse = errors.New("could not validate AI response as JSON")

	// ErrNotCardArray is returned when the generated text parses as JSON but
	// is not an array of cards.
	ErrNotCardArray = errors.New("AI response is not an array of cards")
)
