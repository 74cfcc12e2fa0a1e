package dto

import (
	"errors"
	"testing"

	"github.com/yjkwon/todo-service/internal/domain"
)

func TestAddTodoRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       AddTodoRequest
		wantField string
	}{
		{"valid", AddTodoRequest{Title: "write docs"}, ""},
		{"valid completed", AddTodoRequest{Title: "write docs", Completed: true}, ""},
		{"empty title", AddTodoRequest{}, "title"},
		{"whitespace title", AddTodoRequest{Title: "   \t"}, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Fields[tt.wantField] != msgRequired {
				t.Errorf("Fields[%q] = %q, want %q", tt.wantField, verr.Fields[tt.wantField], msgRequired)
			}
		})
	}
}

func TestToggleTodoRequestValidate(t *testing.T) {
	t.Parallel()

	done := true
	if err := (&ToggleTodoRequest{Completed: &done}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := (&ToggleTodoRequest{}).Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if verr.Fields["completed"] != msgRequired {
		t.Errorf(`Fields["completed"] = %q, want %q`, verr.Fields["completed"], msgRequired)
	}
}
