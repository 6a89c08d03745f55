// Package adapter provides a typed HTTP client for the taskblog server API.
//
// [APIClient] decouples callers from the wire format: requests are plain
// maps and models, responses are unwrapped from the server's envelope, and
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/minhng-dev/taskblog/models"
)

// APIClient defines programmatic access to the taskblog server.
// Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level failures to sentinel errors.
type APIClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account from the given payload fields
	// (email, username, password, and the optional role/isVerified).
	Register(ctx context.Context, payload map[string]any) error

	// Login authenticates with the given credentials. On success the access
	// token is stored via SetToken for subsequent requests.
	Login(ctx context.Context, email, password string) error

	// CreateTodo creates a todo from the given payload fields and returns
	// the stored record.
	CreateTodo(ctx context.Context, payload map[string]any) (models.Todo, error)

	// GetAllTodos lists todos; query carries the optional page/limit/sort
	// and filter parameters understood by the server.
	GetAllTodos(ctx context.Context, query map[string]string) ([]models.Todo, error)

	// GetPostByID fetches one post with the author's name populated.
	GetPostByID(ctx context.Context, postID int64) (models.Post, error)

	// GetProfile returns the authenticated user's own account.
	GetProfile(ctx context.Context) (models.User, error)
}
