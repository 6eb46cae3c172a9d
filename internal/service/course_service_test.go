package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"lmsadmin/internal/model"
	"lmsadmin/internal/repository"
	"lmsadmin/internal/storage"

	"github.com/rs/zerolog"
)

func newTestServices(t *testing.T) (CourseService, CurriculumService) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := zerolog.Nop()
	courseRepo := repository.NewCourseRepo(store, "test", log)
	sectionRepo := repository.NewSectionRepo(store, "test", log)
	lessonRepo := repository.NewLessonRepo(store, "test", log)
	courseSvc := NewCourseService(courseRepo, sectionRepo, lessonRepo, nil, "", 0, log)
	curriculumSvc := NewCurriculumService(sectionRepo, lessonRepo, nil, "", 0, log)
	return courseSvc, curriculumSvc
}

func TestCreateCourseDefaults(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)

	created, err := courses.CreateCourse(ctx, &model.Course{Title: "Algebra"})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if !strings.HasPrefix(created.ID, "course_") {
		t.Fatalf("unexpected id %q", created.ID)
	}
	if created.Status != model.CourseStatusDraft {
		t.Fatalf("expected draft status, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at == updated_at, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestCreateCourseKeepsCallerStatusAndMetadata(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)

	created, err := courses.CreateCourse(ctx, &model.Course{
		Title:    "History",
		Status:   model.CourseStatusPublished,
		Metadata: model.Metadata{"price": 29.0, "thumbnail": "t.png"},
	})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if created.Status != model.CourseStatusPublished {
		t.Fatalf("caller status overridden: %q", created.Status)
	}
	got, err := courses.GetCourseByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCourseByID returned error: %v", err)
	}
	if got.Metadata["thumbnail"] != "t.png" {
		t.Fatalf("metadata not stored verbatim: %+v", got.Metadata)
	}
}

func TestListCoursesPagination(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)
	for i := 0; i < 25; i++ {
		if _, err := courses.CreateCourse(ctx, &model.Course{Title: fmt.Sprintf("Course %d", i)}); err != nil {
			t.Fatalf("CreateCourse returned error: %v", err)
		}
	}

	list, err := courses.ListCourses(ctx, 3, 10, "")
	if err != nil {
		t.Fatalf("ListCourses returned error: %v", err)
	}
	if len(list.Items) != 5 {
		t.Fatalf("expected 5 items on page 3, got %d", len(list.Items))
	}
	if list.Total != 25 {
		t.Fatalf("expected total 25, got %d", list.Total)
	}

	// Pages past the end are empty but keep the correct total.
	list, err = courses.ListCourses(ctx, 9, 10, "")
	if err != nil {
		t.Fatalf("ListCourses returned error: %v", err)
	}
	if len(list.Items) != 0 || list.Total != 25 {
		t.Fatalf("expected empty page with total 25, got %d items, total %d", len(list.Items), list.Total)
	}
}

func TestListCoursesStatusFilter(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)
	for i := 0; i < 3; i++ {
		if _, err := courses.CreateCourse(ctx, &model.Course{Title: "d"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := courses.CreateCourse(ctx, &model.Course{Title: "p", Status: "Published"}); err != nil {
		t.Fatal(err)
	}

	list, err := courses.ListCourses(ctx, 1, 10, "published")
	if err != nil {
		t.Fatalf("ListCourses returned error: %v", err)
	}
	if list.Total != 1 || len(list.Items) != 1 {
		t.Fatalf("case-insensitive filter failed: total %d, items %d", list.Total, len(list.Items))
	}

	// "All" disables the filter.
	list, err = courses.ListCourses(ctx, 1, 10, "All")
	if err != nil {
		t.Fatalf("ListCourses returned error: %v", err)
	}
	if list.Total != 4 {
		t.Fatalf(`expected "All" to disable the filter, got total %d`, list.Total)
	}
}

func TestGetCourseByIDMissingIsNil(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)
	got, err := courses.GetCourseByID(ctx, "nope")
	if err != nil {
		t.Fatalf("missing id must not error, got: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil course, got %+v", got)
	}
}

func TestUpdateCourseShallowMerge(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)
	created, err := courses.CreateCourse(ctx, &model.Course{
		Title:    "X",
		Metadata: model.Metadata{"price": 10.0, "thumbnail": "a.png"},
	})
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(5 * time.Millisecond)
	status := model.CourseStatusPublished
	updated, err := courses.UpdateCourse(ctx, created.ID, model.CourseUpdate{
		Status:   &status,
		Metadata: model.Metadata{"price": 20.0},
	})
	if err != nil {
		t.Fatalf("UpdateCourse returned error: %v", err)
	}
	if updated.Status != model.CourseStatusPublished {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if updated.Title != "X" {
		t.Fatalf("untouched title lost: %q", updated.Title)
	}
	if updated.Metadata["thumbnail"] != "a.png" {
		t.Fatalf("untouched metadata key lost: %+v", updated.Metadata)
	}
	if updated.Metadata["price"] != 20.0 {
		t.Fatalf("metadata key not overwritten: %+v", updated.Metadata)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at not advanced: %v <= %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)
	title := "Y"
	_, err := courses.UpdateCourse(ctx, "nonexistent-id", model.CourseUpdate{Title: &title})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourseCascade(t *testing.T) {
	ctx := context.Background()
	courses, curriculum := newTestServices(t)

	c, err := courses.CreateCourse(ctx, &model.Course{Title: "C"})
	if err != nil {
		t.Fatal(err)
	}
	other, err := courses.CreateCourse(ctx, &model.Course{Title: "Other"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		sec, err := curriculum.CreateSection(ctx, c.ID, fmt.Sprintf("S%d", i))
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j < 2; j++ {
			if _, err := curriculum.CreateLesson(ctx, c.ID, sec.ID, LessonInput{Title: "L"}); err != nil {
				t.Fatal(err)
			}
		}
	}
	otherSec, err := curriculum.CreateSection(ctx, other.ID, "Keep")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := curriculum.CreateLesson(ctx, other.ID, otherSec.ID, LessonInput{Title: "Keep"}); err != nil {
		t.Fatal(err)
	}

	if err := courses.DeleteCourse(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCourse returned error: %v", err)
	}

	if got, _ := courses.GetCourseByID(ctx, c.ID); got != nil {
		t.Fatalf("course still present after delete")
	}
	tree, err := curriculum.FetchCurriculum(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Sections) != 0 {
		t.Fatalf("sections survived cascade: %+v", tree.Sections)
	}
	// The unrelated course keeps its curriculum.
	otherTree, err := curriculum.FetchCurriculum(ctx, other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(otherTree.Sections) != 1 || len(otherTree.Sections[0].Lessons) != 1 {
		t.Fatalf("cascade removed unrelated records: %+v", otherTree)
	}
}

func TestDeleteCourseIdempotent(t *testing.T) {
	ctx := context.Background()
	courses, _ := newTestServices(t)
	c, err := courses.CreateCourse(ctx, &model.Course{Title: "C"})
	if err != nil {
		t.Fatal(err)
	}
	if err := courses.DeleteCourse(ctx, c.ID); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	if err := courses.DeleteCourse(ctx, c.ID); err != nil {
		t.Fatalf("second delete must be a no-op success, got: %v", err)
	}
	if err := courses.DeleteCourse(ctx, "never-existed"); err != nil {
		t.Fatalf("deleting a missing id must succeed, got: %v", err)
	}
}
