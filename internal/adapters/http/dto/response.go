// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses. The same wire types are used
// by the inbound HTTP adapter and the outbound API client, which keeps the
// two ends of the protocol in one place.
package dto

import (
	"time"

	"github.com/yjkwon/todo-service/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// TodoPageResponse represents one page of todos. NextCursor is omitted on
// the final page.
type TodoPageResponse struct {
	Items      []TodoResponse `json:"items"`
	NextCursor *int64         `json:"next_cursor,omitempty"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
	}
}

// ToTodoPageResponse converts a domain page to an HTTP response DTO.
func ToTodoPageResponse(p *todo.Page) TodoPageResponse {
	items := make([]TodoResponse, len(p.Items))
	for i := range p.Items {
		items[i] = ToTodoResponse(&p.Items[i])
	}
	return TodoPageResponse{
		Items:      items,
		NextCursor: p.NextCursor,
	}
}

// ToTodo converts a wire todo back into the domain entity. The outbound
// client uses this when decoding API responses; an unparseable timestamp
// yields the zero time rather than an error.
func (t TodoResponse) ToTodo() todo.Todo {
	createdAt, err := time.Parse(time.RFC3339Nano, t.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return todo.Todo{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: createdAt,
	}
}

// ToPage converts a wire page back into the domain page.
func (p TodoPageResponse) ToPage() *todo.Page {
	items := make([]todo.Todo, len(p.Items))
	for i := range p.Items {
		items[i] = p.Items[i].ToTodo()
	}
	return &todo.Page{
		Items:      items,
		NextCursor: p.NextCursor,
	}
}
