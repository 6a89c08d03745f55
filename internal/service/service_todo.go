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

// todoService is the concrete implementation of TodoService. Create and
// update payloads pass through the todo validation shape; only the sanitized
// values reach the repository.
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService wired to the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

// CreateTodo validates the payload (abort-early) and persists a new todo
// from the sanitized values.
func (t *todoService) CreateTodo(ctx context.Context, payload map[string]any) (models.Todo, error) {
	log := logger.FromContext(ctx)

	result := validation.Validate(payload, validation.TodoRules(), validation.AbortEarly)
	if !result.Valid() {
		return models.Todo{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	todo, err := t.todoRepository.CreateTodo(ctx, result.Value)
	if err != nil {
		log.Err(err).Msg("todo creation ended with error")
		return models.Todo{}, apperr.Wrap(apperr.Internal, "Failed to create todo", err)
	}

	return todo, nil
}

// GetAllTodos lists todos selected by the query parameters. An empty page is
// reported as NotFound, matching the API contract for list endpoints.
func (t *todoService) GetAllTodos(ctx context.Context, query map[string]string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := t.todoRepository.FindAllTodos(ctx, buildTodoFilter(query))
	if err != nil {
		log.Err(err).Msg("todo listing ended with error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to get todos", err)
	}

	if len(todos) == 0 {
		return nil, apperr.New(apperr.NotFound, "No todos found")
	}

	return todos, nil
}

// GetTodoByID retrieves a single todo.
func (t *todoService) GetTodoByID(ctx context.Context, todoID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := t.todoRepository.FindTodoByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return models.Todo{}, apperr.New(apperr.NotFound, "Todo not found")
		}

		log.Err(err).Int64("todo_id", todoID).Msg("todo lookup ended with error")
		return models.Todo{}, apperr.Wrap(apperr.Internal, "Failed to get todo", err)
	}

	return todo, nil
}

// UpdateTodo validates the payload and applies a partial update: only the
// fields that passed validation are written.
func (t *todoService) UpdateTodo(ctx context.Context, todoID int64, payload map[string]any) (models.Todo, error) {
	log := logger.FromContext(ctx)

	result := validation.Validate(payload, validation.TodoRules(), validation.AbortEarly)
	if !result.Valid() {
		return models.Todo{}, apperr.New(apperr.BadRequest, result.FirstMessage())
	}

	todo, err := t.todoRepository.UpdateTodo(ctx, todoID, result.Value)
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return models.Todo{}, apperr.New(apperr.NotFound, "Todo not found")
		}

		log.Err(err).Int64("todo_id", todoID).Msg("todo update ended with error")
		return models.Todo{}, apperr.Wrap(apperr.Internal, "Failed to update todo", err)
	}

	return todo, nil
}

// DeleteTodo removes a todo.
func (t *todoService) DeleteTodo(ctx context.Context, todoID int64) error {
	log := logger.FromContext(ctx)

	if err := t.todoRepository.DeleteTodo(ctx, todoID); err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return apperr.New(apperr.NotFound, "Todo not found")
		}

		log.Err(err).Int64("todo_id", todoID).Msg("todo deletion ended with error")
		return apperr.Wrap(apperr.Internal, "Failed to delete todo", err)
	}

	return nil
}
