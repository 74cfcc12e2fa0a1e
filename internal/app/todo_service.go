// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and storage through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yjkwon/todo-service/internal/domain"
	"github.com/yjkwon/todo-service/internal/domain/todo"
	"github.com/yjkwon/todo-service/internal/ports"
)

// List limit bounds enforced at the service boundary.
const (
	MinListLimit = 1
	MaxListLimit = 100
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService over a TodoStore. It owns input
// validation, the list limit contract, and the idempotent-delete policy;
// ordering and cursor resolution live in the store.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. The logger is used for structured
// request/error logging.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// List returns one page of todos, newest first.
func (s *TodoService) List(ctx context.Context, limit int, cursor *int64) (*todo.Page, error) {
	if limit < MinListLimit || limit > MaxListLimit {
		return nil, &domain.ValidationError{
			Fields: map[string]string{
				"limit": fmt.Sprintf("must be %d-%d, got %d", MinListLimit, MaxListLimit, limit),
			},
		}
	}

	page, err := s.store.Page(ctx, limit, cursor)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.Int("limit", limit),
			slog.Any("error", err),
		)
		return nil, err
	}

	return page, nil
}

// Add validates the title and creates a new todo.
func (s *TodoService) Add(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	title = strings.TrimSpace(title)

	t := todo.Todo{Title: title, Completed: completed}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, title, completed)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add todo",
			slog.String("operation", "Add"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo added", slog.Int64("id", created.ID))
	return created, nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to fetch todo",
				slog.String("operation", "Get"),
				slog.Int64("id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return t, nil
}

// Toggle sets the completion flag to the explicit caller-supplied value.
// The target value comes from the client's own view of the todo, so
// retries and replays converge on the same state.
func (s *TodoService) Toggle(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	updated, err := s.store.SetCompleted(ctx, id, completed)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to toggle todo",
			slog.String("operation", "Toggle"),
			slog.Int64("id", id),
			slog.Bool("completed", completed),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes a todo. Deleting an ID that is already gone succeeds,
// so concurrent consumers racing on the same delete all observe success.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "delete of absent todo treated as success",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
		)
		return nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
