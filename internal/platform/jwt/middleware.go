package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"productifai_backend/internal/api"
)

// ContextIdentity is the gin context key the middleware stores the caller's Identity under.
const ContextIdentity = "identity"

// TokenVerifier verifies a bearer token and resolves it to an identity.
// Following Go convention, the interface is defined by the consumer (middleware),
// not the provider (Generator).
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// UserResolver confirms that a user still exists in storage.
// The middleware re-checks existence on every request so that deleting an
// account takes effect immediately despite the stateless token model.
type UserResolver interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token,
// confirms the user still exists, and attaches the caller's Identity to the
// request context. Requests failing any step are rejected with the
// standard response envelope.
func AuthRequired(verifier TokenVerifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Fail("Access token required!"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		identity, err := verifier.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.Fail("Token expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Fail("Invalid token"))
			return
		}

		exists, err := users.ExistsByID(c.Request.Context(), identity.UserID)
		if err != nil {
			// Storage outage. Reject without leaking internals.
			slog.Error("auth middleware user lookup failed", "error", err, "user_id", identity.UserID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.Fail("Internal server error"))
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, api.Fail("User not found!"))
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// IdentityFrom extracts the authenticated Identity attached by AuthRequired.
// The second return value is false when the request did not pass the middleware.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
