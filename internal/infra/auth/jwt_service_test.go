package auth

import (
	"errors"
	"testing"
	"time"

	"boardroom/config"
	"boardroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTService_IssueAndValidate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 30 * time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.IssueToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_ExpiryBoundaries(t *testing.T) {
	// issue at t=1000s with a 1800s lifetime: valid at 1000s and 2799s,
	// expired at 2800s and 2801s.
	base := time.Unix(1000, 0)
	clock := base
	svc := newJWTServiceWithClock(testSecret, 1800*time.Second, func() time.Time { return clock })

	userID := uuid.New()
	token, err := svc.IssueToken(userID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{name: "at issuance", at: time.Unix(1000, 0), expired: false},
		{name: "just before expiry", at: time.Unix(2799, 0), expired: false},
		{name: "exactly at expiry", at: time.Unix(2800, 0), expired: true},
		{name: "after expiry", at: time.Unix(2801, 0), expired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock = tt.at

			claims, err := svc.ValidateToken(token)
			if tt.expired {
				require.Error(t, err)
				assert.True(t, errors.Is(err, service.ErrTokenExpired))
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
			}
		})
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newJWTServiceWithClock(testSecret, time.Hour, time.Now)

	token, err := svc.IssueToken(uuid.New())
	require.NoError(t, err)

	// Flipping any single character must invalidate the token, either as a
	// bad signature or as undecodable structure.
	for i := 0; i < len(token); i += 7 {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == token {
			continue
		}

		claims, err := svc.ValidateToken(string(mutated))
		require.Error(t, err, "mutation at offset %d", i)
		assert.Nil(t, claims)
		assert.True(t,
			errors.Is(err, service.ErrTokenSignatureInvalid) || errors.Is(err, service.ErrTokenMalformed),
			"mutation at offset %d: got %v", i, err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newJWTServiceWithClock(testSecret, time.Hour, time.Now)
	verifier := newJWTServiceWithClock("a_completely_different_secret_value", time.Hour, time.Now)

	token, err := issuer.IssueToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newJWTServiceWithClock(testSecret, time.Hour, time.Now)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		claims, err := svc.ValidateToken(token)
		require.Error(t, err, "token %q", token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), "token %q: got %v", token, err)
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 45 * time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, jwtService.AccessTokenDuration())
}
