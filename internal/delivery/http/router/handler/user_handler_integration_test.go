package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "boardroom/internal/delivery/context"
	"boardroom/internal/delivery/http/validator"
	"boardroom/internal/domain/entity"
	"boardroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserUsecase struct {
	registerFn    func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
	loginFn       func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	getUserByIDFn func(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

func (f *fakeUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeUserUsecase) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return f.getUserByIDFn(ctx, userID)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Integration(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	handler := &UserHandler{
		logger: slog.Default(),
		userUC: &fakeUserUsecase{
			registerFn: func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
				assert.Equal(t, "alice@example.com", input.Email)
				assert.Equal(t, "correct horse battery", input.Password)

				return &usecase.RegisterOutput{User: &entity.User{
					ID:        userID,
					Email:     input.Email,
					CreatedAt: created,
				}}, nil
			},
		},
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"correct horse battery"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, userID.String(), body.Data.ID)
	assert.Equal(t, "alice@example.com", body.Data.Email)

	// The password hash must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_ShortPasswordRejected(t *testing.T) {
	handler := &UserHandler{
		logger: slog.Default(),
		userUC: &fakeUserUsecase{
			registerFn: func(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
				t.Fatal("usecase should not be reached on validation failure")

				return nil, nil
			},
		},
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"short"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Login_Integration(t *testing.T) {
	userID := uuid.New()

	handler := &UserHandler{
		logger: slog.Default(),
		userUC: &fakeUserUsecase{
			loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
				return &usecase.LoginOutput{
					AccessToken: "signed.access.token",
					TokenType:   "bearer",
					User:        &entity.User{ID: userID, Email: input.Email},
				}, nil
			},
		},
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"correct horse battery"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.access.token", body.Data.AccessToken)
	assert.Equal(t, "bearer", body.Data.TokenType)
}

func TestUserHandler_Me_Integration(t *testing.T) {
	userID := uuid.New()

	handler := &UserHandler{
		logger: slog.Default(),
		userUC: &fakeUserUsecase{
			getUserByIDFn: func(_ context.Context, id uuid.UUID) (*entity.User, error) {
				assert.Equal(t, userID, id)

				return &entity.User{ID: id, Email: "alice@example.com"}, nil
			},
		},
	}

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestUserHandler_Me_Unauthenticated(t *testing.T) {
	handler := &UserHandler{
		logger: slog.Default(),
		userUC: &fakeUserUsecase{},
	}

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
