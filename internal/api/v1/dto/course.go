package dto

import (
	"time"

	"lmsadmin/internal/model"
)

type CourseCreateDTO struct {
	Title    string                 `json:"title" validate:"required"`
	Status   *string                `json:"status,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type CourseUpdateDTO struct {
	Title    *string                `json:"title,omitempty"`
	Status   *string                `json:"status,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type CourseResponseDTO struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type CourseListResponseDTO struct {
	Items []CourseResponseDTO `json:"items"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// NewCourseResponse maps a course record onto its response shape.
func NewCourseResponse(c *model.Course) CourseResponseDTO {
	return CourseResponseDTO{
		ID:        c.ID,
		Title:     c.Title,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Metadata:  c.Metadata,
	}
}
