package todo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/yjkwon/todo-service/internal/domain"
	"github.com/yjkwon/todo-service/internal/domain/todo"
)

func TestTodoValidate(t *testing.T) {
	t.Parallel()

	valid := todo.Todo{ID: 1, Title: "write docs"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	for _, title := range []string{"", "   ", "\t\n"} {
		invalid := todo.Todo{ID: 1, Title: title}
		err := invalid.Validate()
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Validate() with title %q = %v, want ErrValidation", title, err)
		}
	}
}

func TestPageClone_Independent(t *testing.T) {
	t.Parallel()

	cursor := int64(1)
	original := todo.Page{
		Items: []todo.Todo{
			{ID: 2, Title: "b", CreatedAt: time.Date(2026, 3, 9, 10, 30, 2, 0, time.UTC)},
			{ID: 1, Title: "a", CreatedAt: time.Date(2026, 3, 9, 10, 30, 1, 0, time.UTC)},
		},
		NextCursor: &cursor,
	}

	clone := original.Clone()
	clone.Items[0].Completed = true
	*clone.NextCursor = 99

	if original.Items[0].Completed {
		t.Error("mutating a clone's item leaked into the original")
	}
	if *original.NextCursor != 1 {
		t.Errorf("NextCursor = %d after mutating the clone's, want 1", *original.NextCursor)
	}
}

func TestClonePages(t *testing.T) {
	t.Parallel()

	if got := todo.ClonePages(nil); got != nil {
		t.Errorf("ClonePages(nil) = %v, want nil", got)
	}

	pages := []todo.Page{
		{Items: []todo.Todo{{ID: 1, Title: "a"}}},
	}
	clone := todo.ClonePages(pages)
	clone[0].Items[0].Title = "mutated"

	if pages[0].Items[0].Title != "a" {
		t.Error("mutating cloned pages leaked into the originals")
	}
}
