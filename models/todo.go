package models

import "time"

// Todo status values accepted by the todo validator and the list filter.
const (
	TodoStatusPending    = "pending"
	TodoStatusInProgress = "in_progress"
	TodoStatusCompleted  = "completed"
)

// Todo represents a single todo item.
type Todo struct {
	// TodoID is the internal unique identifier of the todo.
	TodoID int64 `json:"id"`

	// Title is the short description of the task (3–255 characters, trimmed).
	Title string `json:"title"`

	// Description is an optional free-text body.
	Description string `json:"description,omitempty"`

	// Status is one of pending, in_progress, completed. New todos default
	// to pending.
	Status string `json:"status"`

	// DueDate is an optional deadline. Nil means no deadline.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// CreatedBy is an optional free-text creator label, trimmed on input.
	CreatedBy string `json:"createdBy,omitempty"`

	// CreatedAt is the creation timestamp, assigned by the database.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last-modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}
