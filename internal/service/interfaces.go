package service

import (
	"context"

	"github.com/minhng-dev/taskblog/models"
)

// AuthService handles registration, credential verification, and the JWT
// token lifecycle. Payloads arrive as untrusted JSON-decoded maps and are
// validated before any persistence call.
type AuthService interface {
	Register(ctx context.Context, payload map[string]any) (models.User, error)
	Login(ctx context.Context, payload map[string]any) (models.User, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TodoService implements todo CRUD with payload validation and filtered
// listing.
type TodoService interface {
	CreateTodo(ctx context.Context, payload map[string]any) (models.Todo, error)
	GetAllTodos(ctx context.Context, query map[string]string) ([]models.Todo, error)
	GetTodoByID(ctx context.Context, todoID int64) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID int64, payload map[string]any) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID int64) error
}

// PostService implements blog post CRUD, filtered listing, and per-author
// statistics.
type PostService interface {
	CreatePost(ctx context.Context, payload map[string]any) (models.Post, error)
	GetAllPosts(ctx context.Context, query map[string]string) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, payload map[string]any) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	CountPostsByUser(ctx context.Context, userID int64) (int64, error)
}

// ProfileService exposes the authenticated user's own account.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, payload map[string]any) (models.User, error)
}
