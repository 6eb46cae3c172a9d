package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil for missing key, got %q", data)
	}

	if err := s.Set(ctx, "courses", []byte(`[{"id":"c1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	data, err = s.Get(ctx, "courses")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(data) != `[{"id":"c1"}]` {
		t.Fatalf("unexpected data: %q", data)
	}

	// Overwrite replaces wholesale.
	if err := s.Set(ctx, "courses", []byte(`[]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	data, _ = s.Get(ctx, "courses")
	if string(data) != `[]` {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	value := []byte("abc")
	if err := s.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value[0] = 'x'
	got, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value was aliased, got %q", got)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if data, err := s.Get(ctx, "missing"); err != nil || data != nil {
		t.Fatalf("expected (nil, nil) for missing key, got (%q, %v)", data, err)
	}
	if err := s.Set(ctx, "lessons", []byte(`[{"id":"l1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	data, err := reopened.Get(ctx, "lessons")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(data) != `[{"id":"l1"}]` {
		t.Fatalf("unexpected data after reopen: %q", data)
	}
}
