// Package token issues and verifies the signed credential assertion that
// proves caller identity, and provides the Gin middleware enforcing it.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad
// signature, malformed token, expired token. Callers get no detail about
// which check failed.
var ErrInvalidToken = errors.New("invalid credential")

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID string
	Email  string
}

// Issuer defines the interface for credential token generation.
type Issuer interface {
	// Issue creates a signed token asserting the given user identity.
	Issue(userID, email string) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer with the provided secret and validity window.
func NewIssuer(secret string, ttl time.Duration) Issuer {
	return &issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed HS256 token with standard claims.
func (i *issuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns the asserted
// identity. Verification is all-or-nothing: any failure yields
// ErrInvalidToken and an empty Claims.
func Verify(tokenStr, secret string) (Claims, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC signatures are accepted
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, ok := mc["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mc["email"].(string)

	return Claims{UserID: sub, Email: email}, nil
}
