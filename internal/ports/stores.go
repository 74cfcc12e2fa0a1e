package ports

import (
	"context"

	"github.com/yjkwon/todo-service/internal/domain/todo"
)

// TodoStore defines the storage port for todo records. Implemented by
// storage adapters (in-memory, SQLite); called by the application layer.
// Each operation is atomic with respect to other calls on the same record.
type TodoStore interface {
	// Insert creates and returns a new todo with a fresh unique ID and
	// the current timestamp.
	Insert(ctx context.Context, title string, completed bool) (*todo.Todo, error)

	// Delete removes the todo with the given ID permanently.
	// Returns domain.ErrNotFound if no such todo exists. The service
	// decides whether that is surfaced; the store always reports it.
	Delete(ctx context.Context, id int64) error

	// SetCompleted updates the completion flag and returns the updated
	// todo. Returns domain.ErrNotFound if the ID is absent.
	SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error)

	// Get returns the todo with the given ID.
	// Returns domain.ErrNotFound if the ID is absent.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Page returns up to limit todos ordered by CreatedAt descending,
	// ties by ID descending, starting strictly after the todo identified
	// by cursor (nil cursor starts from the newest). NextCursor is set
	// to the last returned ID when more items remain.
	// Returns domain.ErrValidation if the cursor does not identify a
	// live todo.
	Page(ctx context.Context, limit int, cursor *int64) (*todo.Page, error)
}
