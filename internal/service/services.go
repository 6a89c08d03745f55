package service

import (
	"github.com/minhng-dev/taskblog/internal/config"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/store"
)

type Services struct {
	AuthService    AuthService
	TodoService    TodoService
	PostService    PostService
	ProfileService ProfileService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		TodoService:    NewTodoService(storages.TodoRepository, logger),
		PostService:    NewPostService(storages.PostRepository, storages.UserRepository, logger),
		ProfileService: NewProfileService(storages.UserRepository, logger),
	}
}
