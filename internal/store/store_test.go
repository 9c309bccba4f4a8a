package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

// newTestStore opens an in-memory store. Each test gets its own database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s, err := Open(":memory:", logger)
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	type settings struct {
		Theme    string `json:"theme"`
		PageSize int    `json:"pageSize"`
	}

	want := settings{Theme: "dark", PageSize: 25}
	if err := Put(ctx, s, "admin_settings", want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got := Get(ctx, s, "admin_settings", settings{})
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	// Reads are idempotent.
	if again := Get(ctx, s, "admin_settings", settings{}); again != want {
		t.Errorf("second Get() = %+v, want %+v", again, want)
	}
}

func TestGet_AbsentReturnsDefault(t *testing.T) {
	s := newTestStore(t)

	got := Get(context.Background(), s, "missing", "fallback")
	if got != "fallback" {
		t.Errorf("Get() = %q, want default", got)
	}
}

func TestGet_MalformedTreatedAsAbsent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Corrupt the slot behind the typed API's back.
	if err := s.putRaw(ctx, "users", []byte("{not json")); err != nil {
		t.Fatalf("putRaw() error = %v", err)
	}

	got := Get(ctx, s, "users", []string{"default"})
	if len(got) != 1 || got[0] != "default" {
		t.Errorf("Get() over malformed slot = %v, want default", got)
	}
}

func TestPut_Overwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Put(ctx, s, "slot", "first"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := Put(ctx, s, "slot", "second"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if got := Get(ctx, s, "slot", ""); got != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}
}

func TestPut_UnserializableLeavesPriorValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Put(ctx, s, "slot", 42); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Channels cannot be JSON-encoded; the write must fail without
	// touching the stored value.
	if err := Put(ctx, s, "slot", make(chan int)); err == nil {
		t.Fatal("Put() should reject an unserializable value")
	}

	if got := Get(ctx, s, "slot", 0); got != 42 {
		t.Errorf("Get() after failed Put = %d, want prior value 42", got)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := Put(ctx, s, "slot", "value"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Delete(ctx, "slot"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := Get(ctx, s, "slot", "gone"); got != "gone" {
		t.Errorf("Get() after Delete = %q, want default", got)
	}

	// Deleting again is a no-op.
	if err := s.Delete(ctx, "slot"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}
