// Package storage provides the byte-level key/value store the mock data
// layer persists its collections in. Implementations must be safe for
// concurrent use, but callers performing read-modify-write cycles get no
// cross-call isolation: the last writer of a key wins wholesale.
package storage

import "context"

// Collection keys. Each holds one JSON array of records.
const (
	KeyCourses  = "courses"
	KeySections = "sections"
	KeyLessons  = "lessons"
)

// Store is a minimal byte-level key/value store.
type Store interface {
	// Get returns the raw bytes stored under key, or (nil, nil) when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the bytes stored under key.
	Set(ctx context.Context, key string, value []byte) error
}
