package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yjkwon/todo-service/internal/domain"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As failed")
	}
	if verr.Fields["title"] != domain.MsgRequired {
		t.Errorf(`Fields["title"] = %q, want %q`, verr.Fields["title"], domain.MsgRequired)
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{"cursor": "unknown"}}

	msg := err.Error()
	if !strings.Contains(msg, "cursor: unknown") {
		t.Errorf("Error() = %q, want field detail included", msg)
	}
	if !strings.Contains(msg, domain.ErrValidation.Error()) {
		t.Errorf("Error() = %q, want sentinel text included", msg)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrConflict,
		domain.ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}
