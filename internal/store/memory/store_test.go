package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yjkwon/todo-service/internal/domain"
	"github.com/yjkwon/todo-service/internal/store/memory"
)

func seed(t *testing.T, s *memory.Store, titles ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		created, err := s.Insert(context.Background(), title, false)
		if err != nil {
			t.Fatalf("Insert(%q) error: %v", title, err)
		}
		ids = append(ids, created.ID)
	}
	return ids
}

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	s := memory.New()

	ids := seed(t, s, "first", "second", "third")

	for i, id := range ids {
		if want := int64(i + 1); id != want {
			t.Errorf("ids[%d] = %d, want %d", i, id, want)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestGet_ReturnsInserted(t *testing.T) {
	t.Parallel()
	s := memory.New()
	ids := seed(t, s, "buy milk")

	got, err := s.Get(context.Background(), ids[0])
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != "buy milk" {
		t.Errorf("Title = %q, want %q", got.Title, "buy milk")
	}
	if got.Completed {
		t.Error("Completed = true, want false")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	s := memory.New()

	_, err := s.Get(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSetCompleted(t *testing.T) {
	t.Parallel()
	s := memory.New()
	ids := seed(t, s, "task")

	updated, err := s.SetCompleted(context.Background(), ids[0], true)
	if err != nil {
		t.Fatalf("SetCompleted error: %v", err)
	}
	if !updated.Completed {
		t.Error("Completed = false, want true")
	}

	// Explicit target value, not a flip: setting true again stays true.
	updated, err = s.SetCompleted(context.Background(), ids[0], true)
	if err != nil {
		t.Fatalf("SetCompleted error: %v", err)
	}
	if !updated.Completed {
		t.Error("repeated SetCompleted(true) flipped the flag")
	}
}

func TestSetCompleted_NotFound(t *testing.T) {
	t.Parallel()
	s := memory.New()

	_, err := s.SetCompleted(context.Background(), 7, true)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := memory.New()
	ids := seed(t, s, "doomed")

	if err := s.Delete(context.Background(), ids[0]); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", s.Len())
	}

	if err := s.Delete(context.Background(), ids[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestPage_NewestFirst(t *testing.T) {
	t.Parallel()
	s := memory.New()
	seed(t, s, "a", "b", "c")

	page, err := s.Page(context.Background(), 10, nil)
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(page.Items))
	}
	// Newest first: highest ID leads, ties broken by ID descending.
	for i, want := range []int64{3, 2, 1} {
		if page.Items[i].ID != want {
			t.Errorf("Items[%d].ID = %d, want %d", i, page.Items[i].ID, want)
		}
	}
	if page.NextCursor != nil {
		t.Errorf("NextCursor = %d, want nil on final page", *page.NextCursor)
	}
}

func TestPage_CursorWalksWholeList(t *testing.T) {
	t.Parallel()
	s := memory.New()
	seed(t, s, "t1", "t2", "t3", "t4", "t5", "t6", "t7")

	// Seven items at page size five: a full page then a partial one.
	first, err := s.Page(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("first Page error: %v", err)
	}
	if len(first.Items) != 5 {
		t.Fatalf("len(first.Items) = %d, want 5", len(first.Items))
	}
	if first.NextCursor == nil {
		t.Fatal("first.NextCursor = nil, want cursor")
	}
	if *first.NextCursor != first.Items[4].ID {
		t.Errorf("NextCursor = %d, want last item ID %d", *first.NextCursor, first.Items[4].ID)
	}

	second, err := s.Page(context.Background(), 5, first.NextCursor)
	if err != nil {
		t.Fatalf("second Page error: %v", err)
	}
	if len(second.Items) != 2 {
		t.Fatalf("len(second.Items) = %d, want 2", len(second.Items))
	}
	if second.NextCursor != nil {
		t.Errorf("second.NextCursor = %d, want nil", *second.NextCursor)
	}

	// No overlap and no gap across the page boundary.
	seen := make(map[int64]bool)
	for _, item := range append(first.Items, second.Items...) {
		if seen[item.ID] {
			t.Errorf("ID %d appears in both pages", item.ID)
		}
		seen[item.ID] = true
	}
	if len(seen) != 7 {
		t.Errorf("pages cover %d distinct IDs, want 7", len(seen))
	}
}

func TestPage_ExactMultipleOmitsCursor(t *testing.T) {
	t.Parallel()
	s := memory.New()
	seed(t, s, "a", "b", "c", "d")

	first, err := s.Page(context.Background(), 2, nil)
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	second, err := s.Page(context.Background(), 2, first.NextCursor)
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if second.NextCursor != nil {
		t.Errorf("NextCursor = %d after exact final page, want nil", *second.NextCursor)
	}
}

func TestPage_UnknownCursor(t *testing.T) {
	t.Parallel()
	s := memory.New()
	seed(t, s, "only")

	unknown := int64(999)
	_, err := s.Page(context.Background(), 5, &unknown)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err is not *domain.ValidationError: %v", err)
	}
	if verr.Fields["cursor"] == "" {
		t.Error("validation error does not name the cursor field")
	}
}

func TestPage_DeletedCursorIsUnknown(t *testing.T) {
	t.Parallel()
	s := memory.New()
	ids := seed(t, s, "a", "b", "c")

	if err := s.Delete(context.Background(), ids[1]); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	_, err := s.Page(context.Background(), 2, &ids[1])
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation for deleted cursor", err)
	}
}

func TestPage_Empty(t *testing.T) {
	t.Parallel()
	s := memory.New()

	page, err := s.Page(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(page.Items))
	}
	if page.NextCursor != nil {
		t.Error("NextCursor non-nil for empty store")
	}
}
