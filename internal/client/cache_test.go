package client_test

import (
	"testing"

	"github.com/yjkwon/todo-service/internal/client"
	"github.com/yjkwon/todo-service/internal/domain/todo"
)

func TestListCache_SnapshotRestore(t *testing.T) {
	t.Parallel()
	cache := client.NewListCache(5)
	cache.Replace([]todo.Page{*pageOf(nil, makeTodo(1, "a", false))})

	snapshot := cache.Snapshot()

	cache.ApplyToggle(1, true)
	if !cache.Pages()[0].Items[0].Completed {
		t.Fatal("toggle not applied")
	}

	cache.Restore(snapshot)
	if cache.Pages()[0].Items[0].Completed {
		t.Error("Completed = true after restore, want false")
	}
}

func TestListCache_ApplyToggleUncached(t *testing.T) {
	t.Parallel()
	cache := client.NewListCache(5)
	cache.Replace([]todo.Page{*pageOf(nil, makeTodo(1, "a", false))})

	if cache.ApplyToggle(99, true) {
		t.Error("ApplyToggle = true for uncached ID, want false")
	}
	if cache.Pages()[0].Items[0].Completed {
		t.Error("uncached toggle mutated the cache")
	}
}

func TestListCache_NextCursorCopies(t *testing.T) {
	t.Parallel()
	cache := client.NewListCache(2)
	cache.Replace([]todo.Page{*pageOf(cursorTo(3), makeTodo(5, "e", false), makeTodo(4, "d", false))})

	first := cache.NextCursor()
	if first == nil || *first != 3 {
		t.Fatalf("NextCursor = %v, want 3", first)
	}

	*first = 99
	second := cache.NextCursor()
	if *second != 3 {
		t.Errorf("NextCursor = %d after mutating a returned cursor, want 3", *second)
	}
}

func TestListCache_AppendAndLen(t *testing.T) {
	t.Parallel()
	cache := client.NewListCache(2)

	if cache.Len() != 0 {
		t.Fatalf("Len = %d for empty cache, want 0", cache.Len())
	}
	if cache.NextCursor() != nil {
		t.Error("NextCursor != nil for empty cache")
	}

	cache.Append(*pageOf(cursorTo(3), makeTodo(5, "e", false), makeTodo(4, "d", false)))
	cache.Append(*pageOf(nil, makeTodo(3, "c", false)))

	if cache.Len() != 2 {
		t.Errorf("Len = %d, want 2", cache.Len())
	}
	if cache.NextCursor() != nil {
		t.Error("NextCursor != nil after final page")
	}
}
