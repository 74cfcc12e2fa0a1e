package client

import (
	"context"
	"log/slog"

	"github.com/yjkwon/todo-service/internal/domain/todo"
	"github.com/yjkwon/todo-service/internal/ports"
)

// Coordinator drives mutations against the todo API while keeping a
// ListCache consistent with what the server holds.
//
// Toggle is applied optimistically: the cache is mutated before the
// request is dispatched so the change is visible immediately. When the
// server rejects the mutation the cache is restored from a snapshot taken
// beforehand. Either way the cached pages are refetched afterwards so the
// cache settles on the server's ordering.
//
// Add and Delete are not applied locally; they dispatch first and refetch
// on settlement, success or failure. Inserting or removing items locally
// would shift every page boundary, which the refetch does correctly anyway.
type Coordinator struct {
	api    ports.TodoAPI
	cache  *ListCache
	logger *slog.Logger
}

// NewCoordinator creates a Coordinator over the given API client and cache.
func NewCoordinator(api ports.TodoAPI, cache *ListCache, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{api: api, cache: cache, logger: logger}
}

// Pages returns a deep copy of the currently cached pages.
func (c *Coordinator) Pages() []todo.Page {
	return c.cache.Pages()
}

// FetchFirstPage loads the first page, replacing whatever is cached.
func (c *Coordinator) FetchFirstPage(ctx context.Context) error {
	page, err := c.api.List(ctx, c.cache.Limit(), nil)
	if err != nil {
		return err
	}
	c.cache.Replace([]todo.Page{*page})
	return nil
}

// FetchNextPage loads the page after the last cached one. Returns false
// when there is no further page to fetch.
func (c *Coordinator) FetchNextPage(ctx context.Context) (bool, error) {
	if c.cache.Len() == 0 {
		if err := c.FetchFirstPage(ctx); err != nil {
			return false, err
		}
		return true, nil
	}

	cursor := c.cache.NextCursor()
	if cursor == nil {
		return false, nil
	}

	page, err := c.api.List(ctx, c.cache.Limit(), cursor)
	if err != nil {
		return false, err
	}
	c.cache.Append(*page)
	return true, nil
}

// Toggle optimistically sets the completion flag of a cached todo, then
// dispatches the mutation. On failure the cache is rolled back to the
// pre-mutation snapshot. The cached pages are refetched afterwards
// regardless of outcome; a refetch failure after a successful mutation is
// logged but leaves the optimistic state in place.
//
// A toggle of an ID that is not cached skips the local mutation and still
// dispatches, so the server stays authoritative.
func (c *Coordinator) Toggle(ctx context.Context, id int64, completed bool) error {
	snapshot := c.cache.Snapshot()

	if !c.cache.ApplyToggle(id, completed) {
		c.logger.DebugContext(ctx, "toggle target not cached, skipping local apply",
			slog.Int64("id", id),
		)
	}

	_, err := c.api.Toggle(ctx, id, completed)
	if err != nil {
		c.cache.Restore(snapshot)
	}

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		c.logger.WarnContext(ctx, "refresh after toggle failed",
			slog.Int64("id", id),
			slog.Any("error", refreshErr),
		)
	}

	return err
}

// Add creates a todo on the server and refetches the cached pages so the
// new item appears in its server-assigned position. The refetch runs on
// failure too: a rejected mutation can mean the server state moved, and
// the cache has to catch up either way.
func (c *Coordinator) Add(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	created, err := c.api.Add(ctx, title, completed)

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		c.logger.WarnContext(ctx, "refresh after add failed",
			slog.Any("error", refreshErr),
		)
	}

	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete removes a todo on the server and refetches the cached pages,
// whether or not the server accepted the mutation. The server treats
// deletion of an absent ID as success, so Delete never fails just because
// another consumer got there first.
func (c *Coordinator) Delete(ctx context.Context, id int64) error {
	err := c.api.Delete(ctx, id)

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		c.logger.WarnContext(ctx, "refresh after delete failed",
			slog.Int64("id", id),
			slog.Any("error", refreshErr),
		)
	}

	return err
}

// Get fetches a single todo from the server, bypassing the cache.
func (c *Coordinator) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	return c.api.Get(ctx, id)
}

// Refresh refetches up to as many pages as are currently cached,
// following server cursors from the start of the list, and swaps the
// result in. When the list shrank the refreshed cache simply holds fewer
// pages. On any fetch error the cache is left as it was.
func (c *Coordinator) Refresh(ctx context.Context) error {
	want := c.cache.Len()
	if want == 0 {
		want = 1
	}

	pages := make([]todo.Page, 0, want)
	var cursor *int64

	for len(pages) < want {
		page, err := c.api.List(ctx, c.cache.Limit(), cursor)
		if err != nil {
			return err
		}
		pages = append(pages, *page)

		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	c.cache.Replace(pages)
	return nil
}
