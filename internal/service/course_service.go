package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lmsadmin/internal/model"
	"lmsadmin/internal/pubsub"
	"lmsadmin/internal/repository"
	"lmsadmin/internal/util"

	"github.com/rs/zerolog"
)

// CourseList is one page of courses plus the pre-pagination total.
type CourseList struct {
	Items []model.Course
	Total int
	Page  int
	Limit int
}

// CourseService defines course-related operations
type CourseService interface {
	// CreateCourse assigns an id and timestamps, defaults status to draft
	// and appends the course. It never fails validation.
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// ListCourses returns one page of courses, optionally filtered by
	// status (case-insensitive; empty or "All" means no filter).
	ListCourses(ctx context.Context, page, limit int, status string) (*CourseList, error)
	// GetCourseByID retrieves a course by its ID; (nil, nil) when missing.
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// UpdateCourse shallow-merges the update over an existing course.
	UpdateCourse(ctx context.Context, courseID string, upd model.CourseUpdate) (*model.Course, error)
	// DeleteCourse removes a course and cascades over its sections and
	// lessons. Deleting a missing id is a no-op success.
	DeleteCourse(ctx context.Context, courseID string) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo         repository.CourseRepository
	sectionRepo  repository.SectionRepository
	lessonRepo   repository.LessonRepository
	publisher    pubsub.Publisher
	eventsTopic  string
	latency      time.Duration
	courseLogger zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	repo repository.CourseRepository,
	sectionRepo repository.SectionRepository,
	lessonRepo repository.LessonRepository,
	publisher pubsub.Publisher,
	eventsTopic string,
	latency time.Duration,
	logger zerolog.Logger,
) CourseService {
	return &courseService{
		repo:         repo,
		sectionRepo:  sectionRepo,
		lessonRepo:   lessonRepo,
		publisher:    publisher,
		eventsTopic:  eventsTopic,
		latency:      latency,
		courseLogger: logger.With().Str("service", "CourseService").Logger(),
	}
}

// CreateCourse creates a new course record
func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	courses, err := s.repo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Msg("Failed to load courses")
		return nil, err
	}

	now := time.Now()
	c.ID = util.NewID("course")
	if c.Status == "" {
		c.Status = model.CourseStatusDraft
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	courses = append(courses, *c)
	if err := s.repo.ReplaceAll(ctx, courses); err != nil {
		s.courseLogger.Error().Err(err).Msg("Failed to save courses")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "course", "created", c.ID, s.courseLogger)
	return c, nil
}

// ListCourses returns one page of the courses collection
func (s *courseService) ListCourses(ctx context.Context, page, limit int, status string) (*CourseList, error) {
	courses, err := s.repo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Msg("Failed to load courses")
		return nil, err
	}

	if status != "" && !strings.EqualFold(status, "All") {
		filtered := courses[:0]
		for _, c := range courses {
			if strings.EqualFold(c.Status, status) {
				filtered = append(filtered, c)
			}
		}
		courses = filtered
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := len(courses)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	return &CourseList{
		Items: courses[start:end],
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// GetCourseByID retrieves a course by its ID
func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	courses, err := s.repo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load courses")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == courseID {
			return &courses[i], nil
		}
	}
	// Missing on read is not an error.
	return nil, nil
}

// UpdateCourse shallow-merges updates over an existing course
func (s *courseService) UpdateCourse(ctx context.Context, courseID string, upd model.CourseUpdate) (*model.Course, error) {
	courses, err := s.repo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load courses")
		return nil, err
	}

	idx := -1
	for i := range courses {
		if courses[i].ID == courseID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	upd.Apply(&courses[idx])
	courses[idx].UpdatedAt = time.Now()

	if err := s.repo.ReplaceAll(ctx, courses); err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to save courses")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "course", "updated", courseID, s.courseLogger)
	updated := courses[idx]
	return &updated, nil
}

// DeleteCourse removes a course and cascades over its sections and lessons.
// The three collections are rewritten independently; there is no
// transaction tying them together.
func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	courses, err := s.repo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load courses")
		return err
	}
	kept := courses[:0]
	for _, c := range courses {
		if c.ID != courseID {
			kept = append(kept, c)
		}
	}
	if err := s.repo.ReplaceAll(ctx, kept); err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to save courses")
		return err
	}

	sections, err := s.sectionRepo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load sections for cascade")
		return err
	}
	keptSections := sections[:0]
	for _, sec := range sections {
		if sec.CourseID != courseID {
			keptSections = append(keptSections, sec)
		}
	}
	if err := s.sectionRepo.ReplaceAll(ctx, keptSections); err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to save sections during cascade")
		return err
	}

	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load lessons for cascade")
		return err
	}
	keptLessons := lessons[:0]
	for _, l := range lessons {
		if l.CourseID != courseID {
			keptLessons = append(keptLessons, l)
		}
	}
	if err := s.lessonRepo.ReplaceAll(ctx, keptLessons); err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to save lessons during cascade")
		return err
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "course", "deleted", courseID, s.courseLogger)
	return nil
}
