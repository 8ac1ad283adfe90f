// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"boardroom/config"
	"boardroom/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The secret and lifetime are fixed at
// construction; the clock is injectable so expiry can be tested exactly.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 30 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL != 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// newJWTServiceWithClock builds a service with a fixed clock for tests.
func newJWTServiceWithClock(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// IssueToken creates a signed token with {sub, iat, exp} claims. The token
// is valid from now until, but not including, now + ttl.
func (s *jwtService) IssueToken(userID uuid.UUID) (string, error) {
	now := s.now()

	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string and
// returns its claims. Failures collapse into the three-state taxonomy:
// malformed, signature invalid, expired.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&service.Claims{},
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, errors.Wrap(service.ErrTokenMalformed, "failed to parse token structure")
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.WithStack(service.ErrTokenExpired)
		default:
			return nil, errors.WithStack(service.ErrTokenSignatureInvalid)
		}
	}

	claims, ok := parsed.Claims.(*service.Claims)
	if !ok || !parsed.Valid {
		return nil, errors.WithStack(service.ErrTokenSignatureInvalid)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "invalid subject claim")
	}
	claims.UserID = userID

	return claims, nil
}

// AccessTokenDuration returns the configured token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.ttl
}
