// Package jwtmw provides JWT issuance, verification, and the Gin
// authentication middleware built on top of them.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiration is the fixed lifetime of an issued bearer token.
const TokenExpiration = 7 * 24 * time.Hour

// Verification failures. Verify returns exactly one of these so callers can
// report the condition without inspecting error types from the jwt library.
var (
	// ErrTokenMissing indicates the request carried no bearer token at all.
	ErrTokenMissing = errors.New("missing bearer token")

	// ErrTokenExpired indicates the token was well-formed but past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Identity is the authenticated caller resolved from a verified token.
// It is attached to the request context by AuthRequired and never mutated.
type Identity struct {
	UserID uint
	Email  string
}

// Generator issues and verifies signed bearer tokens.
// The signing secret is a process-wide value loaded once at startup.
type Generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *Generator) GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   time.Now().Add(g.expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token and returns the identity
// encoded in its claims. Verification is purely cryptographic; it never
// consults storage. Failures map to ErrTokenExpired or ErrTokenInvalid.
func (g *Generator) Verify(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forged header.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}
	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrTokenInvalid
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return Identity{}, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)

	return Identity{UserID: uint(sub), Email: email}, nil
}
