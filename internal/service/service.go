// Package service implements the mock data operations the admin console
// calls during local development: course CRUD with pagination, the
// section/lesson curriculum tree with cascading deletes, and lesson
// material handling. Each operation performs a full load-mutate-save cycle
// on its collection and waits a simulated network delay before returning.
package service

import (
	"context"
	"errors"
	"time"
)

// Not-found errors raised by the mutate operations. Reads and deletes on a
// missing id do not error (nil result / no-op success respectively).
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrLessonNotFound  = errors.New("lesson not found")
)

// simulateLatency emulates a network round-trip. A non-positive delay (the
// test configuration) returns immediately.
func simulateLatency(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
