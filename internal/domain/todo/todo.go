package todo

import (
	"strings"
	"time"

	"github.com/yjkwon/todo-service/internal/domain"
)

// Todo represents a single task item.
//
// ID and CreatedAt are assigned by the store at insert time and never
// change afterwards. Title is set at creation and is immutable through
// the operations this service exposes. Completed is the only mutable
// field; it is changed exclusively by the toggle operation, which sets
// an explicit target value rather than flipping server-side.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
