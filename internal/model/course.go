package model

import "time"

// Course statuses. The field is an open-ended string; these are the values
// the console UI knows about.
const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

// Course represents a course record in the mock store.
type Course struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Metadata holds caller-defined attributes (pricing, thumbnail, SEO
	// fields, ...) that are stored verbatim and round-tripped as-is.
	Metadata Metadata `json:"metadata,omitempty"`
}

// Metadata is an open-ended extension map for caller-supplied fields.
type Metadata map[string]interface{}

// CourseUpdate carries a partial course update. Nil fields are left
// untouched; Metadata keys are merged over the existing map key by key.
type CourseUpdate struct {
	Title    *string  `json:"title,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Apply merges the update into the course in place.
func (u CourseUpdate) Apply(c *Course) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if len(u.Metadata) > 0 {
		if c.Metadata == nil {
			c.Metadata = Metadata{}
		}
		for k, v := range u.Metadata {
			c.Metadata[k] = v
		}
	}
}
