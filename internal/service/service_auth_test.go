package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/config"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/mock"
	"github.com/minhng-dev/taskblog/internal/store"
	"github.com/minhng-dev/taskblog/internal/utils"
	"github.com/minhng-dev/taskblog/models"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "taskblog",
		TokenDuration: time.Hour,
	}
	return NewAuthService(users, cfg, logger.Nop()), users
}

func validRegisterPayload() map[string]any {
	return map[string]any{
		"email":    "jane@example.com",
		"username": "jane42",
		"password": "Str0ngPass",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		FindUserByEmailOrUsername(gomock.Any(), "jane@example.com", "jane42").
		Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "jane@example.com", user.Email)
			assert.Equal(t, models.RoleUser, user.Role)
			assert.NotEqual(t, "Str0ngPass", user.PasswordHash)
			assert.True(t, utils.CheckPassword("Str0ngPass", user.PasswordHash))
			user.UserID = 1
			return user, nil
		})

	user, err := svc.Register(context.Background(), validRegisterPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Register_ValidationFailureUsesFirstMessage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	payload := validRegisterPayload()
	payload["email"] = "broken"
	payload["username"] = "ab"

	_, err := svc.Register(context.Background(), payload)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.BadRequest))
	assert.EqualError(t, err, "Invalid email.")
}

func TestAuthService_Register_DuplicateEmailOrUsername(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		FindUserByEmailOrUsername(gomock.Any(), "jane@example.com", "jane42").
		Return(models.User{UserID: 9}, nil)

	_, err := svc.Register(context.Background(), validRegisterPayload())

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.EqualError(t, err, "Email or username already exists.")
}

func TestAuthService_Register_RaceOnInsertIsStillConflict(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		FindUserByEmailOrUsername(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailOrUsernameExists)

	_, err := svc.Register(context.Background(), validRegisterPayload())

	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestAuthService_Register_LowercasesEmail(t *testing.T) {
	svc, users := newTestAuthService(t)

	payload := validRegisterPayload()
	payload["email"] = "Jane@Example.COM"

	users.EXPECT().
		FindUserByEmailOrUsername(gomock.Any(), "jane@example.com", "jane42").
		Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "jane@example.com", user.Email)
			return user, nil
		})

	_, err := svc.Register(context.Background(), payload)
	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	svc, users := newTestAuthService(t)

	hash, err := utils.HashPassword("Str0ngPass")
	require.NoError(t, err)
	users.EXPECT().
		FindUserByEmail(gomock.Any(), "jane@example.com").
		Return(models.User{UserID: 5, Email: "jane@example.com", PasswordHash: hash, Role: models.RoleUser}, nil)

	user, token, err := svc.Login(context.Background(), map[string]any{
		"email":    "jane@example.com",
		"password": "Str0ngPass",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)
	assert.Equal(t, models.RoleUser, parsed.Role)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(context.Background(), map[string]any{
		"email":    "ghost@example.com",
		"password": "Str0ngPass",
	})

	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.EqualError(t, err, "User not exists.")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	hash, err := utils.HashPassword("Str0ngPass")
	require.NoError(t, err)
	users.EXPECT().
		FindUserByEmail(gomock.Any(), "jane@example.com").
		Return(models.User{UserID: 5, PasswordHash: hash}, nil)

	_, _, err = svc.Login(context.Background(), map[string]any{
		"email":    "jane@example.com",
		"password": "WrongPass1",
	})

	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
	assert.EqualError(t, err, "Invalid credentials.")
}

func TestAuthService_Login_RepositoryFailureIsMasked(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		FindUserByEmail(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("connection refused"))

	_, _, err := svc.Login(context.Background(), map[string]any{
		"email":    "jane@example.com",
		"password": "Str0ngPass",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Internal))
	assert.Equal(t, "Failed to login.", apperr.From(err).Message)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}
