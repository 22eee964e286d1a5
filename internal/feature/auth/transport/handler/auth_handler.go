// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"productifai_backend/internal/api"
	"productifai_backend/internal/feature/auth/domain/entity"
	"productifai_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the user with a signed token.
	Signup(ctx context.Context, name, email, password string, avatar *string) (*entity.User, string, error)
	// Signin authenticates a user and returns the user with a signed token.
	Signin(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler handles the HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// userResponse converts a user entity to its public view.
func userResponse(u *entity.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// Signup handles POST /auth/signup.
// - 400 when name, email, or password is missing
// - 409 when the email is already registered
// - 201 with the created user and a bearer token on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Name, email, and password are required"))
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.Avatar)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.Fail("User already exists!"))
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Fail("Internal Server Error!"))
		return
	}

	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.OK("User created successfully!", api.AuthData{
		User:  userResponse(user),
		Token: token,
	}))
}

// Signin handles POST /auth/signin.
// - 400 when email or password is missing
// - 401 for unknown email or wrong password, without distinguishing the two
// - 200 with the user and a bearer token on success
func (h *AuthHandler) Signin(c *gin.Context) {
	var req api.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Email and password are required"))
		return
	}

	user, token, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("signin rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.Fail("Invalid credentials"))
			return
		}
		slog.Error("signin failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Fail("Internal server error"))
		return
	}

	slog.Info("user signin successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.OK("Login successful", api.AuthData{
		User:  userResponse(user),
		Token: token,
	}))
}

// Signout handles POST /auth/sign-out.
// Tokens are stateless, so there is nothing to revoke server-side; the client
// discards its copy.
func (h *AuthHandler) Signout(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK("Signout successful", nil))
}
