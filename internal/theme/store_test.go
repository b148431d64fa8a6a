package theme

import (
	"context"
	"testing"

	"github.com/angelmondragon/storefront-gate/pkg/kv"
)

func TestDefaultAppliedWhenNothingStored(t *testing.T) {
	store, err := NewStore(context.Background(), kv.NewMemory(), nil, true)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if !store.Dark() {
		t.Fatal("expected configured default to apply")
	}
}

func TestStoredValueOverridesDefault(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	if err := storage.Set(ctx, storageKey, "0"); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	store, err := NewStore(ctx, storage, nil, true)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if store.Dark() {
		t.Fatal("stored \"0\" must win over the default")
	}
}

func TestUnreadableValueFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	storage.Set(ctx, storageKey, "maybe")

	store, err := NewStore(ctx, storage, nil, false)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if store.Dark() {
		t.Fatal("unreadable value must fall back to the default")
	}
}

func TestTogglePersists(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()

	store, err := NewStore(ctx, storage, nil, false)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	dark, err := store.Toggle(ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !dark {
		t.Fatal("expected dark after toggle")
	}
	if raw, _ := storage.Get(ctx, storageKey); raw != "1" {
		t.Fatalf("expected persisted \"1\", got %q", raw)
	}

	reloaded, err := NewStore(ctx, storage, nil, false)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if !reloaded.Dark() {
		t.Fatal("toggled preference must survive a reload")
	}
}
