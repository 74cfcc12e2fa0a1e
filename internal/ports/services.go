package ports

import (
	"context"

	"github.com/yjkwon/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo operations. Implemented by
// the application layer; called by inbound adapters (handlers). This is the
// only entry point the HTTP surface may call; store internals never leak
// through it.
type TodoService interface {
	// List returns up to limit todos ordered newest-first, starting
	// strictly after the todo identified by cursor (nil cursor starts
	// from the newest). The returned page carries a NextCursor when more
	// items remain.
	// Returns domain.ErrValidation if limit is outside 1..100 or the
	// cursor does not identify a live todo.
	List(ctx context.Context, limit int, cursor *int64) (*todo.Page, error)

	// Add creates a new todo with the given title and initial completion
	// state, returning the created entity with server-assigned ID and
	// CreatedAt.
	// Returns domain.ErrValidation if the trimmed title is empty.
	Add(ctx context.Context, title string, completed bool) (*todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Toggle sets the completion flag to the explicit value supplied by
	// the caller and returns the updated todo. The caller computes the
	// target value from its own view; replays are therefore idempotent.
	// Returns domain.ErrNotFound if the todo does not exist.
	Toggle(ctx context.Context, id int64, completed bool) (*todo.Todo, error)

	// Delete removes a todo. Idempotent at this boundary: deleting an
	// already-absent ID succeeds, since the caller already achieved
	// their intent.
	Delete(ctx context.Context, id int64) error
}
