package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/models"
)

// todoSelectColumns is the canonical column list scanned into [models.Todo].
var todoSelectColumns = []string{"todo_id", "title", "description", "status", "due_date", "created_by", "created_at", "updated_at"}

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
//
// Fixed-shape statements (single-row reads, deletes) are parameterised
// directly; creates, partial updates, and filtered lists are built with
// squirrel because their shape depends on the request.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo inserts a todo from a sanitized payload field map and returns
// the stored record. Columns absent from fields fall back to their database
// defaults (status "pending", empty description).
func (r *todoRepository) CreateTodo(ctx context.Context, fields map[string]any) (models.Todo, error) {
	log := logger.FromContext(ctx)

	columns, err := toColumns(fields, todoColumns)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error translating fields")
		return models.Todo{}, err
	}

	query, args, err := psql.
		Insert(models.Todo{}.TableName()).
		SetMap(columns).
		Suffix("RETURNING " + joinColumns(todoSelectColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error building insert query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanTodo(ctx, "*todoRepository.CreateTodo", r.db.QueryRowContext(ctx, query, args...))
}

// FindAllTodos returns the page of todos selected by the filter, ordered by
// recency. An empty page is a valid result.
func (r *todoRepository) FindAllTodos(ctx context.Context, filter models.Filter) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	qb, err := applyFilter(
		psql.Select(todoSelectColumns...).From(models.Todo{}.TableName()),
		filter,
		todoColumns,
		[]string{"title", "description"},
	)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindAllTodos").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindAllTodos").Msg("error rendering list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindAllTodos").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, filter.Limit)
	for rows.Next() {
		var todo models.Todo
		if scanErr := rows.Scan(&todo.TodoID, &todo.Title, &todo.Description, &todo.Status, &todo.DueDate, &todo.CreatedBy, &todo.CreatedAt, &todo.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*todoRepository.FindAllTodos").Msg("error scanning todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// FindTodoByID retrieves a single todo. A missing record is reported as
// [ErrTodoNotFound].
func (r *todoRepository) FindTodoByID(ctx context.Context, todoID int64) (models.Todo, error) {
	query := `SELECT ` + joinColumns(todoSelectColumns) + ` FROM todos WHERE todo_id = $1;`
	return r.scanTodo(ctx, "*todoRepository.FindTodoByID", r.db.QueryRowContext(ctx, query, todoID))
}

// UpdateTodo applies a partial update: only the columns named in fields are
// touched. The updated record is returned; a missing record is reported as
// [ErrTodoNotFound].
func (r *todoRepository) UpdateTodo(ctx context.Context, todoID int64, fields map[string]any) (models.Todo, error) {
	log := logger.FromContext(ctx)

	columns, err := toColumns(fields, todoColumns)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error translating fields")
		return models.Todo{}, err
	}

	query, args, err := psql.
		Update(models.Todo{}.TableName()).
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"todo_id": todoID}).
		Suffix("RETURNING " + joinColumns(todoSelectColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error building update query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanTodo(ctx, "*todoRepository.UpdateTodo", r.db.QueryRowContext(ctx, query, args...))
}

// DeleteTodo removes a todo. Deleting a missing record is reported as
// [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, todoID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE todo_id = $1;`, todoID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Int64("todo_id", todoID).Msg("error deleting todo")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// scanTodo scans one result row into a [models.Todo], mapping sql.ErrNoRows
// to [ErrTodoNotFound].
func (r *todoRepository) scanTodo(ctx context.Context, funcName string, row *sql.Row) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	if err := row.Scan(&todo.TodoID, &todo.Title, &todo.Description, &todo.Status, &todo.DueDate, &todo.CreatedBy, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", funcName).Msg("error scanning todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}
