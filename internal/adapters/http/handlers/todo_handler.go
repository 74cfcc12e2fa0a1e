package handlers

import (
	"net/http"

	"github.com/yjkwon/todo-service/internal/adapters/http/dto"
	"github.com/yjkwon/todo-service/internal/ports"
)

// defaultListLimit is the page size used when the request omits ?limit.
const defaultListLimit = 20

// TodoHandler handles HTTP requests for todo operations.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler backed by the given service.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/v1/todos?limit=&cursor=.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	limit, cursor, err := parseListQuery(r, defaultListLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.service.List(r.Context(), limit, cursor)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoPageResponse(page))
}

// AddTodo handles POST /api/v1/todos.
func (h *TodoHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Add(r.Context(), req.Title, req.Completed)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// ToggleTodo handles POST /api/v1/todos/{id}/toggle.
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ToggleTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	toggled, err := h.service.Toggle(r.Context(), id, *req.Completed)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(toggled))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}. Deleting an absent todo
// still answers 204.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
