package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/mock"
	"github.com/minhng-dev/taskblog/internal/store"
	"github.com/minhng-dev/taskblog/models"
)

func newTestProfileService(t *testing.T) (ProfileService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return NewProfileService(users, logger.Nop()), users
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, users := newTestProfileService(t)

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(5)).
		Return(models.User{UserID: 5, Username: "jane42"}, nil)

	user, err := svc.GetProfile(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "jane42", user.Username)
}

func TestProfileService_GetProfile_MissingID(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.GetProfile(context.Background(), 0)

	assert.True(t, apperr.IsKind(err, apperr.BadRequest))
	assert.EqualError(t, err, "User ID is required.")
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	svc, users := newTestProfileService(t)

	users.EXPECT().
		FindUserByID(gomock.Any(), int64(99)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(context.Background(), 99)

	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.EqualError(t, err, "User not found.")
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, users := newTestProfileService(t)

	users.EXPECT().
		UpdateUsername(gomock.Any(), int64(5), "newname42").
		Return(models.User{UserID: 5, Username: "newname42"}, nil)

	user, err := svc.UpdateProfile(context.Background(), 5, map[string]any{
		"username": "newname42",
	})

	require.NoError(t, err)
	assert.Equal(t, "newname42", user.Username)
}

func TestProfileService_UpdateProfile_InvalidUsername(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.UpdateProfile(context.Background(), 5, map[string]any{
		"username": "a!",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.BadRequest))
	assert.EqualError(t, err, "Username must have at least 3 characters.")
}

func TestProfileService_UpdateProfile_UsernameTaken(t *testing.T) {
	svc, users := newTestProfileService(t)

	users.EXPECT().
		UpdateUsername(gomock.Any(), int64(5), "taken42").
		Return(models.User{}, store.ErrEmailOrUsernameExists)

	_, err := svc.UpdateProfile(context.Background(), 5, map[string]any{
		"username": "taken42",
	})

	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.EqualError(t, err, "Email or username already exists.")
}
