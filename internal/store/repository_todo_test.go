package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/models"
)

func newTestTodoRepo(t *testing.T) (*todoRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &todoRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func todoRows(now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows(todoSelectColumns).
		AddRow(1, "Write the report", "", "pending", nil, "jane", now, now)
}

func TestCreateTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO todos").
		WithArgs("Write the report").
		WillReturnRows(todoRows(time.Now()))

	created, err := repo.CreateTodo(context.Background(), map[string]any{"title": "Write the report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TodoID != 1 {
		t.Errorf("expected TodoID=1, got %d", created.TodoID)
	}
	if created.DueDate != nil {
		t.Errorf("expected nil due date, got %v", created.DueDate)
	}
}

func TestCreateTodo_UnknownFieldRejected(t *testing.T) {
	repo, _, db := newTestTodoRepo(t)
	defer db.Close()

	_, err := repo.CreateTodo(context.Background(), map[string]any{"owner": "jane"})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestFindAllTodos_AppliesFilterAndPagination(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(todoSelectColumns).
		AddRow(1, "Write the report", "", "pending", nil, "jane", now, now).
		AddRow(2, "Report taxes", "yearly", "pending", nil, "jane", now, now)

	// predicate keys are applied in sorted order: search, then status
	mock.ExpectQuery(`SELECT (.+) FROM todos WHERE \(title ILIKE \$1 OR description ILIKE \$2\) AND status = \$3 ORDER BY updated_at DESC LIMIT 10 OFFSET 10`).
		WithArgs("%report%", "%report%", "pending").
		WillReturnRows(rows)

	filter := models.Filter{
		Predicates: map[string]models.Matcher{
			"search": models.Contains("report"),
			"status": models.Exact("pending"),
		},
		Page:  2,
		Limit: 10,
		Sort:  models.SortUpdatedDesc,
	}

	todos, err := repo.FindAllTodos(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Errorf("expected 2 todos, got %d", len(todos))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindAllTodos_EmptyPageIsValid(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WillReturnRows(sqlmock.NewRows(todoSelectColumns))

	todos, err := repo.FindAllTodos(context.Background(), models.Filter{Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected empty page, got %d todos", len(todos))
	}
}

func TestFindTodoByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindTodoByID(context.Background(), 99)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestUpdateTodo_PartialUpdateTouchesOnlyGivenColumns(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(todoSelectColumns).
		AddRow(7, "Write the report", "", "completed", nil, "jane", now, now)

	mock.ExpectQuery(`UPDATE todos SET status = \$1, updated_at = NOW\(\) WHERE todo_id = \$2`).
		WithArgs("completed", int64(7)).
		WillReturnRows(rows)

	updated, err := repo.UpdateTodo(context.Background(), 7, map[string]any{"status": "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("expected status completed, got %s", updated.Status)
	}
}

func TestDeleteTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTodo(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTodo_MissingRowIsNotFound(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTodo(context.Background(), 99)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}
