package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"productifai_backend/internal/app/di"
	"productifai_backend/internal/app/router"
	authadapters "productifai_backend/internal/feature/auth/adapters"
	authhandler "productifai_backend/internal/feature/auth/transport/handler"
	authusecase "productifai_backend/internal/feature/auth/usecase"
	cardadapters "productifai_backend/internal/feature/cards/adapters"
	cardhandler "productifai_backend/internal/feature/cards/transport/handler"
	cardusecase "productifai_backend/internal/feature/cards/usecase"
	todoadapters "productifai_backend/internal/feature/todos/adapters"
	todohandler "productifai_backend/internal/feature/todos/transport/handler"
	todousecase "productifai_backend/internal/feature/todos/usecase"
	"productifai_backend/internal/platform/db"
	jwtmw "productifai_backend/internal/platform/jwt"
	infraredis "productifai_backend/internal/platform/redis"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, relying on process environment")
	}

	// Token issuance is a startup precondition: without a secret the server
	// must not come up at all.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	tokens := jwtmw.NewGenerator(secret, jwtmw.TokenExpiration)

	// DB
	conn := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Gemini
	generator, err := di.NewCardGenerator(context.Background())
	if err != nil {
		log.Fatalf("failed to create card generator: %v", err)
	}
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("[WARN] GEMINI_API_KEY is not set. Card generation will fail.")
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(conn)
	cardRepo := di.NewCardRepository(rdb, conn)
	deckRepo := cardadapters.NewDeckPostgres(conn)
	categoryRepo := todoadapters.NewCategoryPostgres(conn)
	todoRepo := todoadapters.NewTodoPostgres(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	cardUC := cardusecase.NewCardUsecase(cardRepo, deckRepo, generator)
	categoryUC := todousecase.NewCategoryUsecase(categoryRepo)
	todoUC := todousecase.NewTodoUsecase(todoRepo, categoryRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	cardH := cardhandler.NewCardHandler(cardUC)
	categoryH := todohandler.NewCategoryHandler(categoryUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	r := router.NewRouter(authH, cardH, categoryH, todoH, jwtmw.AuthRequired(tokens, userRepo))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
