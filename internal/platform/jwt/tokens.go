// Package jwtmw issues and verifies the bearer tokens used by the API.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, carries a bad
// signature, or has expired. Callers must not distinguish these cases in
// responses.
var ErrInvalidToken = errors.New("invalid token")

// Generator defines the interface for token generation.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID, email string) (string, error)
}

// Claims holds the identity embedded in a verified token.
type Claims struct {
	UserID string
	Email  string
}

// Verifier defines the interface for token verification.
type Verifier interface {
	// VerifyToken checks signature and expiry and returns the embedded
	// claims. Verification is stateless and idempotent.
	VerifyToken(token string) (*Claims, error)
}

// Tokens implements Generator and Verifier with an HMAC-SHA256 secret.
type Tokens struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// New creates a Tokens instance with the provided secret and expiration
// duration.
func New(secret string, expiration time.Duration) *Tokens {
	return &Tokens{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed token with standard claims.
func (t *Tokens) GenerateToken(userID, email string) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(t.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a token. Only HMAC signatures are
// accepted, and expiry is checked with zero leeway: a token at exactly
// its expiration instant is already invalid.
func (t *Tokens) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: sub, Email: email}, nil
}
