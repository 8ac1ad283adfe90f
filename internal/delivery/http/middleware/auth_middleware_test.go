package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "boardroom/internal/delivery/context"
	"boardroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenService struct {
	validateFn func(tokenString string) (*service.Claims, error)
}

func (f *fakeTokenService) IssueToken(uuid.UUID) (string, error) {
	return "", nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	return f.validateFn(tokenString)
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration {
	return 30 * time.Minute
}

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	var gotUserID uuid.UUID
	next := func(c echo.Context) error {
		reached = true
		gotUserID, _ = deliverycontext.GetUserID(c)

		return c.NoContent(http.StatusOK)
	}

	mw := NewAuthMiddleware(tokenSvc)
	require.NoError(t, mw.Authenticate(next)(c))

	return rec, reached, gotUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := &fakeTokenService{
		validateFn: func(tokenString string) (*service.Claims, error) {
			assert.Equal(t, "good-token", tokenString)

			return &service.Claims{UserID: userID}, nil
		},
	}

	rec, reached, gotUserID := runAuthenticate(t, tokenSvc, "Bearer good-token")

	assert.True(t, reached)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := &fakeTokenService{
		validateFn: func(string) (*service.Claims, error) {
			t.Fatal("token service should not be called without a header")

			return nil, nil
		},
	}

	rec, reached, _ := runAuthenticate(t, tokenSvc, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := &fakeTokenService{
		validateFn: func(string) (*service.Claims, error) {
			t.Fatal("token service should not be called for a non-bearer header")

			return nil, nil
		},
	}

	rec, reached, _ := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN_FORMAT")
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	// Expired, tampered, and malformed tokens all surface the same way.
	for _, cause := range []error{
		service.ErrTokenExpired,
		service.ErrTokenSignatureInvalid,
		service.ErrTokenMalformed,
	} {
		tokenSvc := &fakeTokenService{
			validateFn: func(string) (*service.Claims, error) {
				return nil, cause
			},
		}

		rec, reached, _ := runAuthenticate(t, tokenSvc, "Bearer bad-token")

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	}
}
