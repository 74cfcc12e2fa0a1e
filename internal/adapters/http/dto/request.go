package dto

import (
	"strings"

	"github.com/yjkwon/todo-service/internal/domain"
)

const msgRequired = "is required"

// AddTodoRequest represents the JSON body for creating a new todo.
// Completed defaults to false when omitted.
type AddTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToggleTodoRequest represents the JSON body for setting a todo's
// completion state. The caller names the target state explicitly rather
// than asking the server to flip whatever it currently holds.
type ToggleTodoRequest struct {
	Completed *bool `json:"completed"`
}

// Validate checks that the target completion state is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ToggleTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Completed == nil {
		fields["completed"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
