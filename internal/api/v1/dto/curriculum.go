package dto

import (
	"time"

	"lmsadmin/internal/model"
)

type SectionCreateDTO struct {
	Title string `json:"title" validate:"required"`
}

type SectionUpdateDTO struct {
	Title *string `json:"title,omitempty"`
	Order *int    `json:"order,omitempty"`
}

type SectionResponseDTO struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type LessonCreateDTO struct {
	Title string  `json:"title" validate:"required"`
	Type  *string `json:"type,omitempty" validate:"omitempty,oneof=video pdf text quiz"`
}

type LessonUpdateDTO struct {
	SectionID       *string `json:"section_id,omitempty"`
	Title           *string `json:"title,omitempty"`
	Type            *string `json:"type,omitempty" validate:"omitempty,oneof=video pdf text quiz"`
	ResourceURL     *string `json:"resource_url,omitempty"`
	IsPreview       *bool   `json:"is_preview,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

type LessonMaterialDTO struct {
	ResourceURL string `json:"resource_url" validate:"required"`
}

type LessonResponseDTO struct {
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

type SectionWithLessonsDTO struct {
	SectionResponseDTO
	Lessons []LessonResponseDTO `json:"lessons"`
}

type CurriculumResponseDTO struct {
	Sections []SectionWithLessonsDTO `json:"sections"`
}

type MaterialUploadRequestDTO struct {
	Filename string `json:"filename" validate:"required"`
}

type MaterialUploadResponseDTO struct {
	UploadURL   string `json:"upload_url"`
	ResourceURL string `json:"resource_url"`
	ObjectKey   string `json:"object_key"`
}

// NewSectionResponse maps a section record onto its response shape.
func NewSectionResponse(s *model.Section) SectionResponseDTO {
	return SectionResponseDTO{
		ID:        s.ID,
		CourseID:  s.CourseID,
		Title:     s.Title,
		Order:     s.Order,
		CreatedAt: s.CreatedAt,
	}
}

// NewLessonResponse maps a lesson record onto its response shape.
func NewLessonResponse(l *model.Lesson) LessonResponseDTO {
	return LessonResponseDTO{
		ID:              l.ID,
		CourseID:        l.CourseID,
		SectionID:       l.SectionID,
		Title:           l.Title,
		Type:            l.Type,
		ResourceURL:     l.ResourceURL,
		IsPreview:       l.IsPreview,
		DurationMinutes: l.DurationMinutes,
		Order:           l.Order,
		CreatedAt:       l.CreatedAt,
	}
}

// NewCurriculumResponse maps the composed tree onto its response shape.
func NewCurriculumResponse(c *model.Curriculum) CurriculumResponseDTO {
	out := CurriculumResponseDTO{Sections: []SectionWithLessonsDTO{}}
	for i := range c.Sections {
		sec := SectionWithLessonsDTO{
			SectionResponseDTO: NewSectionResponse(&c.Sections[i].Section),
			Lessons:            []LessonResponseDTO{},
		}
		for j := range c.Sections[i].Lessons {
			sec.Lessons = append(sec.Lessons, NewLessonResponse(&c.Sections[i].Lessons[j]))
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}
