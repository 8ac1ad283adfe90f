package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation failures. A token is in exactly one of these states once
// it stops verifying; all are terminal and recoverable by the caller.
var (
	// ErrTokenMalformed means the string could not be parsed as a token at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignatureInvalid means the payload or signature was tampered
	// with, or the token was signed with a different secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired means the token parsed and verified but its expiration
	// has passed. Tokens are valid strictly before their expiration.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access
// tokens. Implementations are stateless; the signing secret and lifetime are
// immutable configuration fixed at construction.
type TokenService interface {
	// IssueToken creates a signed, time-limited token asserting the given
	// user as its subject.
	IssueToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token string and returns its claims, or one of
	// ErrTokenMalformed, ErrTokenSignatureInvalid, ErrTokenExpired.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
