package repository

import (
	"context"

	"lmsadmin/internal/model"
	"lmsadmin/internal/storage"

	"github.com/rs/zerolog"
)

// LessonRepository defines the interface for interacting with the lessons
// collection.
type LessonRepository interface {
	All(ctx context.Context) ([]model.Lesson, error)
	ReplaceAll(ctx context.Context, lessons []model.Lesson) error
}

type lessonRepo struct {
	store  storage.Store
	key    string
	logger zerolog.Logger
}

// NewLessonRepo creates a new LessonRepository
func NewLessonRepo(store storage.Store, prefix string, logger zerolog.Logger) LessonRepository {
	return &lessonRepo{
		store:  store,
		key:    collectionKey(prefix, storage.KeyLessons),
		logger: logger,
	}
}

func (r *lessonRepo) All(ctx context.Context) ([]model.Lesson, error) {
	return loadCollection[model.Lesson](ctx, r.store, r.key, r.logger)
}

func (r *lessonRepo) ReplaceAll(ctx context.Context, lessons []model.Lesson) error {
	return saveCollection(ctx, r.store, r.key, lessons)
}
