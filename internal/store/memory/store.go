// Package memory provides an in-process implementation of the TodoStore
// port. All state lives behind a single RWMutex; reads snapshot under the
// read lock and sort outside it, writes hold the write lock for the whole
// mutation so each operation is atomic per record.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yjkwon/todo-service/internal/domain"
	"github.com/yjkwon/todo-service/internal/domain/todo"
	"github.com/yjkwon/todo-service/internal/ports"
)

// Compile-time check that Store implements ports.TodoStore.
var _ ports.TodoStore = (*Store)(nil)

// Store is a mutex-guarded in-memory todo collection. IDs are assigned
// from a monotonic counter and never reused, which keeps the ordering
// tiebreak (ID descending) aligned with insertion order.
type Store struct {
	mu     sync.RWMutex
	todos  map[int64]todo.Todo
	nextID int64
	now    func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		todos: make(map[int64]todo.Todo),
		now:   time.Now,
	}
}

// Insert creates a new todo with a fresh ID and the current UTC timestamp.
func (s *Store) Insert(_ context.Context, title string, completed bool) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := todo.Todo{
		ID:        s.nextID,
		Title:     title,
		Completed: completed,
		CreatedAt: s.now().UTC(),
	}
	s.todos[t.ID] = t
	return &t, nil
}

// Delete removes the todo permanently. Returns domain.ErrNotFound if the
// ID is absent; the idempotent-delete policy lives in the service, not here.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

// SetCompleted sets the completion flag to the given value and returns the
// updated todo.
func (s *Store) SetCompleted(_ context.Context, id int64, completed bool) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Completed = completed
	s.todos[id] = t
	return &t, nil
}

// Get returns the todo with the given ID.
func (s *Store) Get(_ context.Context, id int64) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// Page returns up to limit todos ordered CreatedAt descending, ties by ID
// descending, starting strictly after the cursor todo.
func (s *Store) Page(_ context.Context, limit int, cursor *int64) (*todo.Page, error) {
	ordered := s.sorted()

	start := 0
	if cursor != nil {
		idx := -1
		for i := range ordered {
			if ordered[i].ID == *cursor {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, &domain.ValidationError{
				Fields: map[string]string{"cursor": "unknown"},
			}
		}
		start = idx + 1
	}

	end := start + limit
	if end > len(ordered) {
		end = len(ordered)
	}

	page := &todo.Page{Items: ordered[start:end]}
	if end < len(ordered) && len(page.Items) > 0 {
		last := page.Items[len(page.Items)-1].ID
		page.NextCursor = &last
	}
	return page, nil
}

// Len reports the number of live todos. Used by tests and the readiness
// log line at startup.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}

// sorted snapshots the collection under the read lock and orders it
// newest-first outside the lock.
func (s *Store) sorted() []todo.Todo {
	s.mu.RLock()
	out := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
