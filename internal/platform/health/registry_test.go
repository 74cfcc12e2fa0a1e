package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yjkwon/todo-service/internal/platform/health"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string { return c.name }

func (c stubChecker) HealthCheck(context.Context) error { return c.err }

func TestCheckAll(t *testing.T) {
	t.Parallel()

	registry := health.New()
	registry.Register(stubChecker{name: "store"})
	registry.Register(stubChecker{name: "todo-api", err: errors.New("circuit open")})

	results := registry.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results["store"] != nil {
		t.Errorf(`results["store"] = %v, want nil`, results["store"])
	}
	if results["todo-api"] == nil {
		t.Error(`results["todo-api"] = nil, want error`)
	}
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())
	if len(results) != 0 {
		t.Errorf("len(results) = %d for empty registry, want 0", len(results))
	}
}

func TestRegister_Concurrent(t *testing.T) {
	t.Parallel()

	registry := health.New()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Register(stubChecker{name: string(rune('a' + i))})
			registry.CheckAll(context.Background())
		}()
	}
	wg.Wait()

	if got := len(registry.CheckAll(context.Background())); got != 10 {
		t.Errorf("len(results) = %d, want 10", got)
	}
}
