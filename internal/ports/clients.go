package ports

import (
	"context"

	"github.com/yjkwon/todo-service/internal/domain/todo"
)

// TodoAPI defines the client port for the todo service's HTTP API.
// Implemented by the outbound HTTP adapter; called by the client-side
// mutation coordinator. Methods map 1:1 to service operations and return
// the same domain error sentinels the service produces, translated back
// from the wire by the adapter.
type TodoAPI interface {
	// List fetches one page of todos from the server.
	List(ctx context.Context, limit int, cursor *int64) (*todo.Page, error)

	// Add creates a todo and returns the created entity.
	Add(ctx context.Context, title string, completed bool) (*todo.Todo, error)

	// Get fetches a single todo by ID.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Toggle sets the completion flag to the given explicit value.
	Toggle(ctx context.Context, id int64, completed bool) (*todo.Todo, error)

	// Delete removes a todo. Succeeds even when the ID is already absent.
	Delete(ctx context.Context, id int64) error
}
