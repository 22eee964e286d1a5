package api

import "time"

// UserResponse is the public view of a user. The password hash is never serialized.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthData pairs a user with a freshly issued bearer token.
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// DeckRef is the deck subset embedded in card responses.
type DeckRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// CardResponse is the public view of a card including its deck reference.
type CardResponse struct {
	ID           uint       `json:"id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Hint         *string    `json:"hint"`
	Difficulty   string     `json:"difficulty"`
	ReviewCount  int        `json:"reviewCount"`
	LastReviewed *time.Time `json:"lastReviewed"`
	UserID       uint       `json:"userId"`
	DeckID       uint       `json:"deckId"`
	Deck         DeckRef    `json:"deck"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// DeckResponse is the public view of a deck with its card count.
type DeckResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	UserID      uint      `json:"userId"`
	CardCount   int64     `json:"cardCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CountData reports how many rows a bulk operation touched.
type CountData struct {
	Count int64 `json:"count"`
}

// CategoryResponse is the public view of a category with its todo count.
type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	UserID    uint      `json:"userId"`
	TodoCount int64     `json:"todoCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRef is the category subset embedded in todo responses.
type CategoryRef struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// TodoResponse is the public view of a todo including its category reference.
type TodoResponse struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	DueDate     *time.Time  `json:"dueDate"`
	UserID      uint        `json:"userId"`
	CategoryID  uint        `json:"categoryId"`
	Category    CategoryRef `json:"category"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
