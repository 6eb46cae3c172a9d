package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lmsadmin/internal/model"
	"lmsadmin/internal/pubsub"
	"lmsadmin/internal/repository"
	"lmsadmin/internal/util"

	"github.com/rs/zerolog"
)

// LessonInput is the caller-supplied part of a new lesson. Everything else
// (resource URL, preview flag, duration) starts empty and is set later via
// update.
type LessonInput struct {
	Title string
	Type  string
}

// CurriculumService defines section/lesson operations for one course's
// curriculum tree.
type CurriculumService interface {
	// FetchCurriculum composes the section/lesson tree for a course,
	// ordered by the 1-based order fields. Lessons whose section no longer
	// exists are dropped from the result.
	FetchCurriculum(ctx context.Context, courseID string) (*model.Curriculum, error)
	// CreateSection appends a section; order is the current sibling count
	// plus one.
	CreateSection(ctx context.Context, courseID, title string) (*model.Section, error)
	UpdateSection(ctx context.Context, sectionID string, upd model.SectionUpdate) (*model.Section, error)
	// DeleteSection removes a section and its lessons. Sibling order
	// values are left untouched.
	DeleteSection(ctx context.Context, sectionID string) error
	CreateLesson(ctx context.Context, courseID, sectionID string, in LessonInput) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID string, upd model.LessonUpdate) (*model.Lesson, error)
	// DeleteLesson removes a single lesson; lessons are leaves, no cascade.
	DeleteLesson(ctx context.Context, lessonID string) error
	// UpdateLessonMaterial attaches a resource URL to a lesson.
	UpdateLessonMaterial(ctx context.Context, lessonID, resourceURL string) (*model.Lesson, error)
}

type curriculumService struct {
	sectionRepo repository.SectionRepository
	lessonRepo  repository.LessonRepository
	publisher   pubsub.Publisher
	eventsTopic string
	latency     time.Duration
	logger      zerolog.Logger
}

// NewCurriculumService creates a new CurriculumService
func NewCurriculumService(
	sectionRepo repository.SectionRepository,
	lessonRepo repository.LessonRepository,
	publisher pubsub.Publisher,
	eventsTopic string,
	latency time.Duration,
	logger zerolog.Logger,
) CurriculumService {
	return &curriculumService{
		sectionRepo: sectionRepo,
		lessonRepo:  lessonRepo,
		publisher:   publisher,
		eventsTopic: eventsTopic,
		latency:     latency,
		logger:      logger.With().Str("service", "CurriculumService").Logger(),
	}
}

// FetchCurriculum composes the section/lesson tree for one course
func (s *curriculumService) FetchCurriculum(ctx context.Context, courseID string) (*model.Curriculum, error) {
	sections, err := s.sectionRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load sections")
		return nil, err
	}
	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load lessons")
		return nil, err
	}

	var courseSections []model.Section
	for _, sec := range sections {
		if sec.CourseID == courseID {
			courseSections = append(courseSections, sec)
		}
	}
	sort.SliceStable(courseSections, func(i, j int) bool {
		return courseSections[i].Order < courseSections[j].Order
	})

	bySection := make(map[string][]model.Lesson)
	for _, l := range lessons {
		if l.CourseID == courseID {
			bySection[l.SectionID] = append(bySection[l.SectionID], l)
		}
	}

	tree := &model.Curriculum{Sections: []model.SectionWithLessons{}}
	for _, sec := range courseSections {
		nested := bySection[sec.ID]
		if nested == nil {
			nested = []model.Lesson{}
		}
		sort.SliceStable(nested, func(i, j int) bool {
			return nested[i].Order < nested[j].Order
		})
		tree.Sections = append(tree.Sections, model.SectionWithLessons{
			Section: sec,
			Lessons: nested,
		})
	}
	// Lessons pointing at a section that no longer exists are silently
	// omitted from the tree; they stay in the collection.

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	return tree, nil
}

// CreateSection appends a section scoped to a course
func (s *curriculumService) CreateSection(ctx context.Context, courseID, title string) (*model.Section, error) {
	sections, err := s.sectionRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to load sections")
		return nil, err
	}

	siblings := 0
	for _, sec := range sections {
		if sec.CourseID == courseID {
			siblings++
		}
	}
	section := model.Section{
		ID:        util.NewID("section"),
		CourseID:  courseID,
		Title:     title,
		Order:     siblings + 1,
		CreatedAt: time.Now(),
	}

	sections = append(sections, section)
	if err := s.sectionRepo.ReplaceAll(ctx, sections); err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to save sections")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "section", "created", section.ID, s.logger)
	return &section, nil
}

// UpdateSection shallow-merges updates over an existing section
func (s *curriculumService) UpdateSection(ctx context.Context, sectionID string, upd model.SectionUpdate) (*model.Section, error) {
	sections, err := s.sectionRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to load sections")
		return nil, err
	}

	idx := -1
	for i := range sections {
		if sections[i].ID == sectionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
	}

	upd.Apply(&sections[idx])
	if err := s.sectionRepo.ReplaceAll(ctx, sections); err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to save sections")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "section", "updated", sectionID, s.logger)
	updated := sections[idx]
	return &updated, nil
}

// DeleteSection removes a section and cascades over its lessons
func (s *curriculumService) DeleteSection(ctx context.Context, sectionID string) error {
	sections, err := s.sectionRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to load sections")
		return err
	}
	kept := sections[:0]
	for _, sec := range sections {
		if sec.ID != sectionID {
			kept = append(kept, sec)
		}
	}
	if err := s.sectionRepo.ReplaceAll(ctx, kept); err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to save sections")
		return err
	}

	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to load lessons for cascade")
		return err
	}
	keptLessons := lessons[:0]
	for _, l := range lessons {
		if l.SectionID != sectionID {
			keptLessons = append(keptLessons, l)
		}
	}
	if err := s.lessonRepo.ReplaceAll(ctx, keptLessons); err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to save lessons during cascade")
		return err
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "section", "deleted", sectionID, s.logger)
	return nil
}

// CreateLesson appends a lesson scoped to a section
func (s *curriculumService) CreateLesson(ctx context.Context, courseID, sectionID string, in LessonInput) (*model.Lesson, error) {
	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to load lessons")
		return nil, err
	}

	siblings := 0
	for _, l := range lessons {
		if l.SectionID == sectionID {
			siblings++
		}
	}
	lessonType := in.Type
	if lessonType == "" {
		lessonType = model.LessonTypeVideo
	}
	lesson := model.Lesson{
		ID:        util.NewID("lesson"),
		CourseID:  courseID,
		SectionID: sectionID,
		Title:     in.Title,
		Type:      lessonType,
		Order:     siblings + 1,
		CreatedAt: time.Now(),
	}

	lessons = append(lessons, lesson)
	if err := s.lessonRepo.ReplaceAll(ctx, lessons); err != nil {
		s.logger.Error().Err(err).Str("section_id", sectionID).Msg("Failed to save lessons")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "lesson", "created", lesson.ID, s.logger)
	return &lesson, nil
}

// UpdateLesson shallow-merges updates over an existing lesson
func (s *curriculumService) UpdateLesson(ctx context.Context, lessonID string, upd model.LessonUpdate) (*model.Lesson, error) {
	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("lesson_id", lessonID).Msg("Failed to load lessons")
		return nil, err
	}

	idx := -1
	for i := range lessons {
		if lessons[i].ID == lessonID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}

	upd.Apply(&lessons[idx])
	if err := s.lessonRepo.ReplaceAll(ctx, lessons); err != nil {
		s.logger.Error().Err(err).Str("lesson_id", lessonID).Msg("Failed to save lessons")
		return nil, err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "lesson", "updated", lessonID, s.logger)
	updated := lessons[idx]
	return &updated, nil
}

// DeleteLesson removes a single lesson
func (s *curriculumService) DeleteLesson(ctx context.Context, lessonID string) error {
	lessons, err := s.lessonRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("lesson_id", lessonID).Msg("Failed to load lessons")
		return err
	}
	kept := lessons[:0]
	for _, l := range lessons {
		if l.ID != lessonID {
			kept = append(kept, l)
		}
	}
	if err := s.lessonRepo.ReplaceAll(ctx, kept); err != nil {
		s.logger.Error().Err(err).Str("lesson_id", lessonID).Msg("Failed to save lessons")
		return err
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}
	publishChange(ctx, s.publisher, s.eventsTopic, "lesson", "deleted", lessonID, s.logger)
	return nil
}

// UpdateLessonMaterial attaches a resource URL to a lesson
func (s *curriculumService) UpdateLessonMaterial(ctx context.Context, lessonID, resourceURL string) (*model.Lesson, error) {
	return s.UpdateLesson(ctx, lessonID, model.LessonUpdate{ResourceURL: &resourceURL})
}
