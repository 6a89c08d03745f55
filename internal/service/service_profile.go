package service

import (
	"context"
	"errors"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/store"
	"github.com/minhng-dev/taskblog/internal/validation"
	"github.com/minhng-dev/taskblog/models"
)

// profileService is the concrete implementation of ProfileService. The user
// ID always comes from the verified token, never from the payload.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given repository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the authenticated user's own account.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.User{}, apperr.New(apperr.BadRequest, "User ID is required.")
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, apperr.New(apperr.NotFound, "User not found.")
		}

		log.Err(err).Int64("user_id", userID).Msg("profile lookup ended with error")
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to get profile.", err)
	}

	return user, nil
}

// UpdateProfile validates the payload (username only) and renames the
// account. A colliding username is Conflict.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, payload map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.User{}, apperr.New(apperr.BadRequest, "User ID is required.")
	}

	result := validation.Validate(payload, validation.ProfileRules(), validation.CollectAll)
	if !result.Valid() {
		return models.User{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	username, _ := result.Value["username"].(string)

	user, err := p.userRepository.UpdateUsername(ctx, userID, username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, apperr.New(apperr.NotFound, "User not found.")
		case errors.Is(err, store.ErrEmailOrUsernameExists):
			return models.User{}, apperr.New(apperr.Conflict, "Email or username already exists.")
		}

		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to update profile.", err)
	}

	return user, nil
}
