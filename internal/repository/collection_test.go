package repository

import (
	"context"
	"testing"

	"lmsadmin/internal/model"
	"lmsadmin/internal/storage"

	"github.com/rs/zerolog"
)

func TestCollectionKeyNamespacing(t *testing.T) {
	if got := collectionKey("lms_admin", "courses"); got != "lms_admin_courses" {
		t.Fatalf("unexpected key: %q", got)
	}
	if got := collectionKey("", "courses"); got != "courses" {
		t.Fatalf("unexpected key without prefix: %q", got)
	}
}

func TestCourseRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepo(storage.NewMemoryStore(), "test", zerolog.Nop())

	courses, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(courses))
	}

	if err := repo.ReplaceAll(ctx, []model.Course{{ID: "c1", Title: "Algebra"}}); err != nil {
		t.Fatalf("ReplaceAll returned error: %v", err)
	}
	courses, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "c1" || courses[0].Title != "Algebra" {
		t.Fatalf("unexpected collection: %+v", courses)
	}
}

func TestCorruptedCollectionYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Set(ctx, "test_courses", []byte("{not json")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	repo := NewCourseRepo(store, "test", zerolog.Nop())
	courses, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("corruption must not propagate, got error: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected empty collection for corrupted bytes, got %+v", courses)
	}
}
