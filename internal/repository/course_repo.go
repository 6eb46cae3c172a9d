package repository

import (
	"context"

	"lmsadmin/internal/model"
	"lmsadmin/internal/storage"

	"github.com/rs/zerolog"
)

// CourseRepository defines the interface for interacting with the courses
// collection.
type CourseRepository interface {
	// All loads the full courses collection.
	All(ctx context.Context) ([]model.Course, error)
	// ReplaceAll overwrites the full courses collection.
	ReplaceAll(ctx context.Context, courses []model.Course) error
}

type courseRepo struct {
	store  storage.Store
	key    string
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(store storage.Store, prefix string, logger zerolog.Logger) CourseRepository {
	return &courseRepo{
		store:  store,
		key:    collectionKey(prefix, storage.KeyCourses),
		logger: logger,
	}
}

func (r *courseRepo) All(ctx context.Context) ([]model.Course, error) {
	return loadCollection[model.Course](ctx, r.store, r.key, r.logger)
}

func (r *courseRepo) ReplaceAll(ctx context.Context, courses []model.Course) error {
	return saveCollection(ctx, r.store, r.key, courses)
}
