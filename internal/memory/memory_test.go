package memory

import (
	"context"
	"testing"
)

func TestRoundTripAndIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()

	if data, err := store.Load(ctx, "missing"); err != nil || data != nil {
		t.Fatalf("absent slot: data=%q err=%v", data, err)
	}

	payload := []byte(`{"a":1}`)
	if err := store.Save(ctx, "slot", payload); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's buffer must not reach the stored copy.
	payload[0] = 'X'
	got, err := store.Load(ctx, "slot")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("stored value aliased caller buffer: %q", got)
	}

	// Nor the other way around.
	got[0] = 'Y'
	again, _ := store.Load(ctx, "slot")
	if string(again) != `{"a":1}` {
		t.Fatalf("loaded value aliased store buffer: %q", again)
	}
}

func TestDelete(t *testing.T) {
	store := New()
	ctx := context.Background()

	if err := store.Save(ctx, "slot", []byte("v")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "slot"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "slot"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if data, _ := store.Load(ctx, "slot"); data != nil {
		t.Fatalf("expected nil after delete, got %q", data)
	}
}
