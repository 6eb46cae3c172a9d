package repository

import (
	"context"

	"lmsadmin/internal/model"
	"lmsadmin/internal/storage"

	"github.com/rs/zerolog"
)

// SectionRepository defines the interface for interacting with the sections
// collection.
type SectionRepository interface {
	All(ctx context.Context) ([]model.Section, error)
	ReplaceAll(ctx context.Context, sections []model.Section) error
}

type sectionRepo struct {
	store  storage.Store
	key    string
	logger zerolog.Logger
}

// NewSectionRepo creates a new SectionRepository
func NewSectionRepo(store storage.Store, prefix string, logger zerolog.Logger) SectionRepository {
	return &sectionRepo{
		store:  store,
		key:    collectionKey(prefix, storage.KeySections),
		logger: logger,
	}
}

func (r *sectionRepo) All(ctx context.Context) ([]model.Section, error) {
	return loadCollection[model.Section](ctx, r.store, r.key, r.logger)
}

func (r *sectionRepo) ReplaceAll(ctx context.Context, sections []model.Section) error {
	return saveCollection(ctx, r.store, r.key, sections)
}
