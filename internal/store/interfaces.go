package store

import (
	"context"

	"github.com/minhng-dev/taskblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserIDsByUsername resolves a human-readable name to the set of
	// matching user IDs (case-insensitive substring match). An empty set is
	// a valid result, not an error.
	FindUserIDsByUsername(ctx context.Context, username string) ([]int64, error)

	UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error)
}

// TodoRepository is the data-access contract for todo items.
//
// Update applies a partial change: only the columns named in fields are
// touched. The fields map carries sanitized payload keys (title, description,
// status, dueDate, createdBy).
type TodoRepository interface {
	CreateTodo(ctx context.Context, fields map[string]any) (models.Todo, error)
	FindAllTodos(ctx context.Context, filter models.Filter) ([]models.Todo, error)
	FindTodoByID(ctx context.Context, todoID int64) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID int64, fields map[string]any) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID int64) error
}

// PostRepository is the data-access contract for blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, fields map[string]any) (models.Post, error)
	FindAllPosts(ctx context.Context, filter models.Filter) ([]models.Post, error)

	// FindPostByID returns the post with the author's username populated.
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)

	UpdatePost(ctx context.Context, postID int64, fields map[string]any) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	CountPostsByAuthor(ctx context.Context, authorID int64) (int64, error)
}
