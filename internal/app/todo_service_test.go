package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/yjkwon/todo-service/internal/app"
	"github.com/yjkwon/todo-service/internal/domain"
	"github.com/yjkwon/todo-service/internal/store/memory"
)

func newService(t *testing.T) (*app.TodoService, *memory.Store) {
	t.Helper()
	store := memory.New()
	logger := slog.New(slog.DiscardHandler)
	return app.NewTodoService(store, logger), store
}

func TestAdd_TrimsTitle(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	created, err := svc.Add(context.Background(), "  buy milk  ", false)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if created.Title != "buy milk" {
		t.Errorf("Title = %q, want %q", created.Title, "buy milk")
	}
}

func TestAdd_EmptyTitle(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.Add(context.Background(), title, false)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Add(%q) err = %v, want ErrValidation", title, err)
		}
	}
}

func TestAdd_CompletedFlagPreserved(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	created, err := svc.Add(context.Background(), "done already", true)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if !created.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestList_LimitBounds(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	for _, limit := range []int{0, -1, app.MaxListLimit + 1} {
		_, err := svc.List(context.Background(), limit, nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("List(limit=%d) err = %v, want ErrValidation", limit, err)
		}
	}

	if _, err := svc.List(context.Background(), app.MinListLimit, nil); err != nil {
		t.Errorf("List(limit=%d) err = %v, want nil", app.MinListLimit, err)
	}
	if _, err := svc.List(context.Background(), app.MaxListLimit, nil); err != nil {
		t.Errorf("List(limit=%d) err = %v, want nil", app.MaxListLimit, err)
	}
}

func TestList_PropagatesUnknownCursor(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	unknown := int64(123)
	_, err := svc.List(context.Background(), 10, &unknown)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestToggle_SetsExplicitValue(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	created, err := svc.Add(context.Background(), "task", false)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	toggled, err := svc.Toggle(context.Background(), created.ID, true)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !toggled.Completed {
		t.Error("Completed = false, want true")
	}

	// Replaying the same toggle converges instead of flipping back.
	toggled, err = svc.Toggle(context.Background(), created.ID, true)
	if err != nil {
		t.Fatalf("Toggle replay error: %v", err)
	}
	if !toggled.Completed {
		t.Error("replayed Toggle(true) flipped the flag")
	}
}

func TestToggle_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Toggle(context.Background(), 99, true)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)

	created, err := svc.Add(context.Background(), "task", false)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", store.Len())
	}

	// Second delete of the same ID still succeeds.
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Errorf("second Delete error: %v, want nil", err)
	}

	// So does deleting an ID that never existed.
	if err := svc.Delete(context.Background(), 12345); err != nil {
		t.Errorf("Delete of never-existing ID error: %v, want nil", err)
	}
}
