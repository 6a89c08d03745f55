package store

import (
	"context"

	"github.com/minhng-dev/taskblog/internal/config"
	"github.com/minhng-dev/taskblog/internal/logger"
)

// Storages aggregates every repository behind one construction point.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository
	PostRepository PostRepository
}

// NewStorages connects to PostgreSQL, runs migrations, and wires the
// repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}, nil
}
