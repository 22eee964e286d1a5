package entity

import "time"

// DefaultDifficulty is applied when a card is created without one.
const DefaultDifficulty = "MEDIUM"

// Card is a single flashcard. Every card belongs to exactly one user and
// one deck, and both foreign keys are enforced on every access.
type Card struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Question   string  `gorm:"type:text;not null" json:"question"`
	Answer     string  `gorm:"type:text;not null" json:"answer"`
	Hint       *string `gorm:"type:text" json:"hint"`
	Difficulty string  `gorm:"size:32;not null;default:MEDIUM" json:"difficulty"`

	// ReviewCount and LastReviewed track the client's study progress.
	ReviewCount  int        `gorm:"not null;default:0" json:"reviewCount"`
	LastReviewed *time.Time `json:"lastReviewed"`

	// UserID is the owning user. Every read and mutation is scoped to it.
	UserID uint `gorm:"index;not null" json:"userId"`

	// DeckID is the deck the card lives in. The deck must belong to the
	// same user.
	DeckID uint `gorm:"index;not null" json:"deckId"`
	Deck   Deck `gorm:"foreignKey:DeckID" json:"deck"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
