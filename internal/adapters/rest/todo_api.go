package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yjkwon/todo-service/internal/adapters/http/dto"
	"github.com/yjkwon/todo-service/internal/domain/todo"
	"github.com/yjkwon/todo-service/internal/platform/httpclient"
	"github.com/yjkwon/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoAPI = (*TodoAPI)(nil)

// TodoAPI is the outbound adapter for the todo service's HTTP API. It
// implements [ports.TodoAPI], translating between domain types and the
// wire DTOs and mapping HTTP errors back to the domain sentinels
// (ErrNotFound, ErrValidation, ErrUnavailable) via [TranslateHTTPError].
//
// The underlying [httpclient.Client] supplies circuit breaking, retry
// with backoff, rate limiting, and OpenTelemetry tracing for every call.
type TodoAPI struct {
	req    *Requester
	logger *slog.Logger
}

// NewTodoAPI creates a TodoAPI that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point at the service
// root (e.g. "http://localhost:8080").
func NewTodoAPI(client *httpclient.Client, logger *slog.Logger) *TodoAPI {
	return &TodoAPI{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// List fetches one page of todos from GET /api/v1/todos. A nil cursor
// requests the first page.
func (c *TodoAPI) List(ctx context.Context, limit int, cursor *int64) (*todo.Page, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	if cursor != nil {
		v.Set("cursor", strconv.FormatInt(*cursor, 10))
	}
	path := "/api/v1/todos?" + v.Encode()

	var resp dto.TodoPageResponse
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToPage(), nil
}

// Add creates a todo via POST /api/v1/todos. Returns
// [domain.ErrValidation] when the server rejects the payload.
func (c *TodoAPI) Add(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	reqBody := dto.AddTodoRequest{Title: title, Completed: completed}

	var resp dto.TodoResponse
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/todos", http.StatusCreated, reqBody, &resp); err != nil {
		return nil, err
	}
	t := resp.ToTodo()
	return &t, nil
}

// Get fetches a single todo from GET /api/v1/todos/{id}. Returns
// [domain.ErrNotFound] when the server answers 404.
func (c *TodoAPI) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	path := fmt.Sprintf("/api/v1/todos/%d", id)

	var resp dto.TodoResponse
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return nil, err
	}
	t := resp.ToTodo()
	return &t, nil
}

// Toggle sets a todo's completion flag via POST /api/v1/todos/{id}/toggle.
// The target state is sent explicitly so retried requests stay idempotent.
func (c *TodoAPI) Toggle(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	path := fmt.Sprintf("/api/v1/todos/%d/toggle", id)
	reqBody := dto.ToggleTodoRequest{Completed: &completed}

	var resp dto.TodoResponse
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusOK, reqBody, &resp); err != nil {
		return nil, err
	}
	t := resp.ToTodo()
	return &t, nil
}

// Delete removes a todo via DELETE /api/v1/todos/{id}. The server treats
// deletion of an absent ID as success, so Delete is safe to retry.
func (c *TodoAPI) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/todos/%d", id)
	return c.req.Do(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}
