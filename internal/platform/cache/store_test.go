package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestStore_SetGetExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	ctx := context.Background()
	store.Set(ctx, "selection:sq-1:3", "finalized")

	if value, ok := store.Get(ctx, "selection:sq-1:3"); !ok || value != "finalized" {
		t.Fatalf("expected cached value, got %v ok=%v", value, ok)
	}

	current = current.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "selection:sq-1:3"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "selection:sq-1:3", 1)
	store.Set(ctx, "selection:sq-1:4", 2)
	store.Set(ctx, "selection:sq-2:3", 3)

	store.DeletePrefix(ctx, "selection:sq-1:")

	if _, ok := store.Get(ctx, "selection:sq-1:3"); ok {
		t.Fatalf("expected prefix entries to be dropped")
	}
	if _, ok := store.Get(ctx, "selection:sq-2:3"); !ok {
		t.Fatalf("expected unrelated entry to survive")
	}
}

func TestStore_GetOrLoadLoadsOnce(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return fmt.Sprintf("load-%d", calls), nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "key", loader)
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if value != "load-1" {
			t.Fatalf("expected first loaded value, got %v", value)
		}
	}
	if calls != 1 {
		t.Fatalf("expected one loader call, got %d", calls)
	}
}
