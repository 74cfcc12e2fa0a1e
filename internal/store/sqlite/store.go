// Package sqlite provides a persistent implementation of the TodoStore
// port backed by an embedded SQLite database (ncruces/go-sqlite3, WASM
// build, no cgo). The database runs in WAL mode so readers are not
// blocked during writes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/yjkwon/todo-service/internal/domain"
	"github.com/yjkwon/todo-service/internal/domain/todo"
	"github.com/yjkwon/todo-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT    NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_todos_order ON todos (created_at DESC, id DESC);
`

// timeLayout is a fixed-width RFC 3339 variant. Unlike time.RFC3339Nano it
// never trims trailing zeros, so stored values compare correctly as text in
// the cursor WHERE clause.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// The service is single-writer in practice, but WAL mode benefits from a
// small pool for concurrent page reads.
const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxLifetime = 5 * time.Minute
)

// Store is a TodoStore backed by an embedded SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates (or opens) the database at path and ensures the schema
// exists. The parent directory is created if missing. The caller must
// Close the store when done.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

// Insert creates a new todo row and returns it with the assigned ID.
func (s *Store) Insert(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (title, completed, created_at) VALUES (?, ?, ?)`,
		title, boolToInt(completed), now.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	return &todo.Todo{
		ID:        id,
		Title:     title,
		Completed: completed,
		CreatedAt: now,
	}, nil
}

// Delete removes the row. Returns domain.ErrNotFound when no row matched.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetCompleted updates the completion flag and returns the updated row.
func (s *Store) SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE todos SET completed = ? WHERE id = ?`,
		boolToInt(completed), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}

	return s.Get(ctx, id)
}

// Get returns the row with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, completed, created_at FROM todos WHERE id = ?`, id)

	t, err := scanTodo(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching todo %d: %w", id, err)
	}
	return t, nil
}

// Page returns up to limit rows ordered created_at DESC, id DESC, starting
// strictly after the cursor row. One extra row is fetched to decide whether
// a NextCursor is needed.
func (s *Store) Page(ctx context.Context, limit int, cursor *int64) (*todo.Page, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if cursor == nil {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, completed, created_at FROM todos
			 ORDER BY created_at DESC, id DESC LIMIT ?`, limit+1)
	} else {
		var createdAt string
		row := s.db.QueryRowContext(ctx,
			`SELECT created_at FROM todos WHERE id = ?`, *cursor)
		if scanErr := row.Scan(&createdAt); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, &domain.ValidationError{
					Fields: map[string]string{"cursor": "unknown"},
				}
			}
			return nil, fmt.Errorf("resolving cursor %d: %w", *cursor, scanErr)
		}

		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, completed, created_at FROM todos
			 WHERE created_at < ? OR (created_at = ? AND id < ?)
			 ORDER BY created_at DESC, id DESC LIMIT ?`,
			createdAt, createdAt, *cursor, limit+1)
	}
	if err != nil {
		return nil, fmt.Errorf("querying todo page: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]todo.Todo, 0, limit)
	more := false
	for rows.Next() {
		if len(items) == limit {
			more = true
			break
		}
		t, scanErr := scanTodo(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scanning todo row: %w", scanErr)
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo rows: %w", err)
	}

	page := &todo.Page{Items: items}
	if more {
		last := items[len(items)-1].ID
		page.NextCursor = &last
	}
	return page, nil
}

// scanTodo reads one row through the given scan function.
func scanTodo(scan func(...any) error) (*todo.Todo, error) {
	var (
		t         todo.Todo
		completed int
		createdAt string
	)
	if err := scan(&t.ID, &t.Title, &completed, &createdAt); err != nil {
		return nil, err
	}

	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}

	t.Completed = completed != 0
	t.CreatedAt = ts
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
