package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailOrUsernameExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash, user.Role, user.IsVerified)

	var saved models.User
	if err := row.Scan(&saved.UserID, &saved.Email, &saved.Username, &saved.PasswordHash, &saved.Role, &saved.IsVerified, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailOrUsernameExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindUserByEmail retrieves the account registered under the given e-mail
// address. An empty result is reported as [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByEmailOrUsername retrieves the first account whose e-mail or
// username matches. Used by registration to detect duplicates before insert.
func (r *userRepository) FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmailOrUsername", findUserByEmailOrUsername, email, username)
}

// FindUserByID retrieves the account with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// findOne runs a single-row user lookup and maps sql.ErrNoRows to
// [ErrNoUserWasFound].
func (r *userRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.UserID, &found.Email, &found.Username, &found.PasswordHash, &found.Role, &found.IsVerified, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindUserIDsByUsername resolves a human-readable name to the set of matching
// user IDs via a case-insensitive substring match. An empty set is a valid
// result, not an error.
func (r *userRepository) FindUserIDsByUsername(ctx context.Context, username string) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findUserIDsByUsername, "%"+username+"%")
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserIDsByUsername").Msg("error executing user id lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 4)
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.FindUserIDsByUsername").Msg("error scanning user id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// UpdateUsername changes the account's public name and returns the updated
// record. A colliding name is reported as [ErrEmailOrUsernameExists]; a
// missing account as [ErrNoUserWasFound].
func (r *userRepository) UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	row := r.db.QueryRowContext(ctx, updateUsername, userID, username)
	if err := row.Scan(&updated.UserID, &updated.Email, &updated.Username, &updated.PasswordHash, &updated.Role, &updated.IsVerified, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUsername").Int64("user_id", userID).Msg("error updating username")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailOrUsernameExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}
