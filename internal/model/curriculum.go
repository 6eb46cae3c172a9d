package model

import "time"

// Lesson types supported by the console player.
const (
	LessonTypeVideo = "video"
	LessonTypePDF   = "pdf"
	LessonTypeText  = "text"
	LessonTypeQuiz  = "quiz"
)

// Section represents a curriculum section belonging to a course.
// Order is 1-based and assigned at creation time as the count of existing
// siblings plus one; it is not renumbered when a sibling is deleted.
type Section struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// Lesson represents a lesson belonging to a section.
type Lesson struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"course_id"`
	SectionID       string    `json:"section_id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	ResourceURL     *string   `json:"resource_url"`
	IsPreview       bool      `json:"is_preview"`
	DurationMinutes *int      `json:"duration_minutes"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

// SectionUpdate carries a partial section update; nil fields are untouched.
type SectionUpdate struct {
	Title *string `json:"title,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// Apply merges the update into the section in place.
func (u SectionUpdate) Apply(s *Section) {
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Order != nil {
		s.Order = *u.Order
	}
}

// LessonUpdate carries a partial lesson update; nil fields are untouched.
type LessonUpdate struct {
	SectionID       *string `json:"section_id,omitempty"`
	Title           *string `json:"title,omitempty"`
	Type            *string `json:"type,omitempty"`
	ResourceURL     *string `json:"resource_url,omitempty"`
	IsPreview       *bool   `json:"is_preview,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

// Apply merges the update into the lesson in place.
func (u LessonUpdate) Apply(l *Lesson) {
	if u.SectionID != nil {
		l.SectionID = *u.SectionID
	}
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Type != nil {
		l.Type = *u.Type
	}
	if u.ResourceURL != nil {
		l.ResourceURL = u.ResourceURL
	}
	if u.IsPreview != nil {
		l.IsPreview = *u.IsPreview
	}
	if u.DurationMinutes != nil {
		l.DurationMinutes = u.DurationMinutes
	}
	if u.Order != nil {
		l.Order = *u.Order
	}
}

// SectionWithLessons is a section with its lessons nested, as returned by
// the curriculum tree endpoint.
type SectionWithLessons struct {
	Section
	Lessons []Lesson `json:"lessons"`
}

// Curriculum is the composed section/lesson tree for one course.
type Curriculum struct {
	Sections []SectionWithLessons `json:"sections"`
}
