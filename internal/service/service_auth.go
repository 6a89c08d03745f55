package service

import (
	"context"
	"errors"
	"time"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/config"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/store"
	"github.com/minhng-dev/taskblog/internal/utils"
	"github.com/minhng-dev/taskblog/internal/validation"
	"github.com/minhng-dev/taskblog/models"
)

// authService is the concrete implementation of AuthService.
// It validates registration and login payloads, hashes passwords with
// bcrypt, and issues HMAC-SHA256 JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account from an untrusted payload.
//
// The payload is validated in collect-all mode; a failure is reported as
// BadRequest with the first field message. The email and username must be
// free, otherwise Conflict. The password is stored as a bcrypt hash, never
// in plain text.
func (a *authService) Register(ctx context.Context, payload map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	result := validation.Validate(payload, validation.RegisterRules(), validation.CollectAll)
	if !result.Valid() {
		return models.User{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	email, _ := result.Value["email"].(string)
	username, _ := result.Value["username"].(string)
	password, _ := result.Value["password"].(string)

	_, err := a.userRepository.FindUserByEmailOrUsername(ctx, email, username)
	switch {
	case err == nil:
		return models.User{}, apperr.New(apperr.Conflict, "Email or username already exists.")
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", email).Msg("duplicate check ended with error")
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	if role, ok := result.Value["role"].(string); ok {
		user.Role = role
	}
	if isVerified, ok := result.Value["isVerified"].(bool); ok {
		user.IsVerified = isVerified
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailOrUsernameExists) {
			return models.User{}, apperr.New(apperr.Conflict, "Email or username already exists.")
		}

		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to create user.", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a JWT token.
//
// A validation failure is BadRequest; an unknown e-mail is NotFound; a wrong
// password is Unauthorized with a message that does not reveal which part of
// the credentials was wrong.
func (a *authService) Login(ctx context.Context, payload map[string]any) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	result := validation.Validate(payload, validation.LoginRules(), validation.CollectAll)
	if !result.Valid() {
		return models.User{}, models.Token{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	email, _ := result.Value["email"].(string)
	password, _ := result.Value["password"].(string)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, apperr.New(apperr.NotFound, "User not exists.")
		}

		log.Err(err).Str("email", email).Msg("user lookup ended with error")
		return models.User{}, models.Token{}, apperr.Wrap(apperr.Internal, "Failed to login.", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return models.User{}, models.Token{}, apperr.New(apperr.Unauthorized, "Invalid credentials.")
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token generation ended with error")
		return models.User{}, models.Token{}, apperr.Wrap(apperr.Internal, "Failed to login.", err)
	}

	return user, token, nil
}

// ParseToken verifies a compact JWT string and extracts the authenticated
// user's identity. Any verification failure is Unauthorized.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, apperr.Wrap(apperr.Unauthorized, "Invalid or expired token.", err)
	}

	return token, nil
}
