// Package client provides the consumer-side view of the todo API: a
// cache of fetched pages and a coordinator that applies mutations
// optimistically, rolling the cache back when the server rejects them.
package client

import (
	"sync"

	"github.com/yjkwon/todo-service/internal/domain/todo"
)

// ListCache holds the pages of the todo list a consumer has fetched so
// far. All access goes through the mutex; snapshots and reads hand out
// deep copies so callers can never alias the cached slices.
type ListCache struct {
	mu    sync.RWMutex
	pages []todo.Page
	limit int
}

// NewListCache creates an empty cache whose pages are fetched with the
// given page size.
func NewListCache(limit int) *ListCache {
	return &ListCache{limit: limit}
}

// Limit returns the page size used for fetches.
func (c *ListCache) Limit() int {
	return c.limit
}

// Pages returns a deep copy of the cached pages in fetch order.
func (c *ListCache) Pages() []todo.Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return todo.ClonePages(c.pages)
}

// Len returns the number of cached pages.
func (c *ListCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Snapshot returns a deep copy of the current pages for later Restore.
func (c *ListCache) Snapshot() []todo.Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return todo.ClonePages(c.pages)
}

// Restore replaces the cache contents with a previously taken snapshot.
func (c *ListCache) Restore(snapshot []todo.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = snapshot
}

// Replace swaps in a freshly fetched set of pages.
func (c *ListCache) Replace(pages []todo.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = todo.ClonePages(pages)
}

// Append adds one more fetched page to the end of the cache.
func (c *ListCache) Append(page todo.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = append(c.pages, page.Clone())
}

// NextCursor returns the cursor of the last cached page, or nil when the
// cache is empty or the final page has been reached.
func (c *ListCache) NextCursor() *int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.pages) == 0 {
		return nil
	}
	last := c.pages[len(c.pages)-1]
	if last.NextCursor == nil {
		return nil
	}
	cursor := *last.NextCursor
	return &cursor
}

// ApplyToggle sets the completion flag of the given todo in every cached
// page that holds it. Returns false when the ID is not cached, in which
// case the cache is left untouched.
func (c *ListCache) ApplyToggle(id int64, completed bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for pi := range c.pages {
		for ti := range c.pages[pi].Items {
			if c.pages[pi].Items[ti].ID == id {
				c.pages[pi].Items[ti].Completed = completed
				found = true
			}
		}
	}
	return found
}
