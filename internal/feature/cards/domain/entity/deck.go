// Package entity defines the domain entities for the cards feature.
package entity

import "time"

// Deck is a named collection owning zero or more cards.
// Every deck belongs to exactly one user.
type Deck struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	IsPublic    bool    `gorm:"not null;default:false" json:"isPublic"`

	// UserID is the owning user. Every read and mutation is scoped to it.
	UserID uint `gorm:"index;not null" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeckWithCount is a deck joined with the number of cards it contains.
// Produced by the list query; CardCount is not a stored column.
type DeckWithCount struct {
	Deck
	CardCount int64 `json:"cardCount"`
}
