package impl

import (
	"context"
	"testing"

	"boardroom/internal/domain/entity"
	domainerrors "boardroom/internal/domain/errors"
	"boardroom/internal/domain/repository"
	"boardroom/internal/domain/service"
	"boardroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(userRepo repository.UserRepository, hasher service.PasswordHasher, tokens service.TokenService) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokens,
		logger:       newDiscardLogger(),
	}
}

func TestUserService_Register_Success(t *testing.T) {
	ctx := context.Background()
	var created *entity.User

	userRepo := &fakeUserRepo{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
		createFn: func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			created = user

			return nil
		},
	}
	hasher := &fakeHasher{
		hashFn: func(string) (string, error) { return "hashed_password", nil },
	}

	svc := newUserService(userRepo, hasher, nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", created.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()

	userRepo := &fakeUserRepo{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return &entity.User{ID: uuid.New(), Email: "test@example.com"}, nil
		},
	}

	svc := newUserService(userRepo, nil, nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	ctx := context.Background()

	userRepo := &fakeUserRepo{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	hasher := &fakeHasher{
		hashFn: func(string) (string, error) { return "", errors.New("cost out of range") },
	}

	svc := newUserService(userRepo, hasher, nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := &fakeUserRepo{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return &entity.User{ID: userID, Email: "test@example.com", PasswordHash: "hashed"}, nil
		},
	}
	hasher := &fakeHasher{
		checkFn: func(password, hash string) bool {
			return password == "Password123!" && hash == "hashed"
		},
	}
	tokens := &fakeTokenService{
		issueFn: func(id uuid.UUID) (string, error) {
			require.Equal(t, userID, id)

			return "signed.access.token", nil
		},
	}

	svc := newUserService(userRepo, hasher, tokens)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.access.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	userRepo := &fakeUserRepo{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return &entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil
		},
	}
	hasher := &fakeHasher{
		checkFn: func(string, string) bool { return false },
	}

	svc := newUserService(userRepo, hasher, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userRepo := &fakeUserRepo{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	svc := newUserService(userRepo, nil, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	// Unknown email and wrong password produce the same error.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.User, error) {
				require.Equal(t, userID, id)

				return &entity.User{ID: userID, Email: "test@example.com"}, nil
			},
		}

		svc := newUserService(userRepo, nil, nil)

		user, err := svc.GetUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("deleted account", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			findByIDFn: func(context.Context, uuid.UUID) (*entity.User, error) {
				return nil, repository.ErrUserNotFound
			},
		}

		svc := newUserService(userRepo, nil, nil)

		user, err := svc.GetUserByID(ctx, userID)
		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
