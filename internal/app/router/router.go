// Package router assembles the application's HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "productifai_backend/internal/feature/auth/transport/handler"
	cardhandler "productifai_backend/internal/feature/cards/transport/handler"
	todohandler "productifai_backend/internal/feature/todos/transport/handler"
	"productifai_backend/internal/platform/http/handler"
)

// NewRouter wires every endpoint. Routes under /api require the bearer-token
// middleware; /health and /auth do not.
func NewRouter(
	auth *authhandler.AuthHandler,
	cards *cardhandler.CardHandler,
	categories *todohandler.CategoryHandler,
	todos *todohandler.TodoHandler,
	authRequired gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/health", handler.Health)

	// Authentication endpoints (no token required)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/signin", auth.Signin)
		authGroup.POST("/sign-out", auth.Signout)
	}

	// Flashcard endpoints
	revise := r.Group("/api/revise")
	revise.Use(authRequired)
	{
		revise.GET("/", cards.ListCards)
		revise.GET("/cards/:user_id", cards.ListUserCards)
		revise.POST("/cards/create", cards.CreateCard)
		revise.POST("/cards/generate", cards.GenerateCards)
		revise.POST("/cards/createCards", cards.CreateCards)
		revise.PUT("/cards/:card_id/:user_id", cards.UpdateCard)
		revise.GET("/decks/:user_id", cards.ListDecks)
		revise.POST("/decks/create", cards.CreateDeck)
		revise.DELETE("/deleteCard", cards.DeleteCard)
		revise.DELETE("/deleteAllCards", cards.DeleteAllCards)
	}

	// Todo and category endpoints
	apiGroup := r.Group("/api")
	apiGroup.Use(authRequired)
	{
		apiGroup.GET("/categories", categories.List)
		apiGroup.POST("/categories", categories.Create)
		apiGroup.PUT("/categories/:id", categories.Update)
		apiGroup.DELETE("/categories/:id", categories.Delete)

		apiGroup.GET("/todos", todos.List)
		apiGroup.POST("/todos", todos.Create)
		apiGroup.PUT("/todos", todos.Update)
		apiGroup.DELETE("/todos/:id", todos.Delete)
	}

	return r
}
