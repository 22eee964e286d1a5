package api

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Avatar   *string `json:"avatar"`
}

// SigninRequest is the payload for POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateCardRequest is the payload for POST /api/revise/cards/create.
type CreateCardRequest struct {
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Hint       *string `json:"hint"`
	Difficulty string  `json:"difficulty"`
	DeckID     uint    `json:"deckId" binding:"required"`
}

// GenerateCardsRequest is the payload for POST /api/revise/cards/generate.
type GenerateCardsRequest struct {
	Topic  string `json:"topic" binding:"required"`
	Count  int    `json:"count"`
	DeckID uint   `json:"deckId" binding:"required"`
}

// UpdateCardRequest carries the partial update for PUT /api/revise/cards/:card_id/:user_id.
// Absent fields leave the stored value untouched.
type UpdateCardRequest struct {
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	Hint         *string `json:"hint"`
	Difficulty   *string `json:"difficulty"`
	ReviewCount  *int    `json:"reviewCount"`
	LastReviewed *string `json:"lastReviewed"`
}

// CardInput is one element of the bulk-insert payload.
type CardInput struct {
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Hint       *string `json:"hint"`
	Difficulty string  `json:"difficulty"`
}

// CreateCardsRequest is the payload for POST /api/revise/cards/createCards.
type CreateCardsRequest struct {
	Cards  []CardInput `json:"cards" binding:"required"`
	DeckID uint        `json:"deckId" binding:"required"`
}

// CreateDeckRequest is the payload for POST /api/revise/decks/create.
type CreateDeckRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"isPublic"`
}

// DeleteCardRequest is the payload for DELETE /api/revise/deleteCard.
type DeleteCardRequest struct {
	CardID uint `json:"cardId" binding:"required"`
}

// DeleteAllCardsRequest is the payload for DELETE /api/revise/deleteAllCards.
// DeckID narrows the deletion to a single deck when present.
type DeleteAllCardsRequest struct {
	DeckID *uint `json:"deckId"`
}

// CreateCategoryRequest is the payload for POST /api/categories.
type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"`
}

// UpdateCategoryRequest carries the partial update for PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// CreateTodoRequest is the payload for POST /api/todos.
type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTodoRequest carries the partial update for PUT /api/todos.
// The todo to update is addressed by ID in the body.
type UpdateTodoRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	CategoryID  *uint   `json:"categoryId"`
	DueDate     *string `json:"dueDate"`
}
