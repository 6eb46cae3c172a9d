// Package repository maps the three mock collections onto the byte-level
// key/value store. Every read returns the whole collection and every write
// replaces it wholesale; there is no per-record access and no locking
// across a load/save cycle, so concurrent writers to the same collection
// race with last-write-wins semantics.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"lmsadmin/internal/storage"

	"github.com/rs/zerolog"
)

// collectionKey namespaces a collection key with the application prefix.
func collectionKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "_" + key
}

// loadCollection reads and decodes one collection. An absent key yields an
// empty slice. Corrupted stored bytes are logged and swallowed, also
// yielding an empty slice: the mock favors availability over surfacing a
// parse failure to the caller. Store I/O errors do propagate.
func loadCollection[T any](ctx context.Context, store storage.Store, key string, logger zerolog.Logger) ([]T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading collection %s: %w", key, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Error().Err(err).Str("collection", key).Msg("Stored collection is corrupted, starting empty")
		return []T{}, nil
	}
	return records, nil
}

// saveCollection encodes and overwrites one collection.
func saveCollection[T any](ctx context.Context, store storage.Store, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("saving collection %s: %w", key, err)
	}
	return nil
}
